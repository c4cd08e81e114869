package session

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/roach88/pocketcalc/internal/calc"
	"github.com/roach88/pocketcalc/internal/history"
	"github.com/roach88/pocketcalc/internal/keypad"
)

// Options configures a Session.
type Options struct {
	AngleMode calc.AngleMode

	// HistoryLimit caps the number of retained entries. Zero keeps all.
	HistoryLimit int

	// IDGenerator defaults to UUIDv7Generator.
	IDGenerator IDGenerator

	// Logger defaults to a logger that discards output.
	Logger *slog.Logger
}

// Step is the outcome of one key press.
type Step struct {
	Seq   int64
	Key   keypad.Key
	State calc.State

	// Entry is the history entry the press appended, or nil.
	Entry *history.Entry
}

// Session holds the current calculator state.
type Session struct {
	mu     sync.Mutex
	id     string
	state  calc.State
	angle  calc.AngleMode
	limit  int
	store  *history.Store
	clock  *Clock
	logger *slog.Logger
}

// New creates a session writing history to st.
func New(st *history.Store, opts Options) *Session {
	gen := opts.IDGenerator
	if gen == nil {
		gen = UUIDv7Generator{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{
		id:     gen.Generate(),
		state:  calc.Initial(),
		angle:  opts.AngleMode,
		limit:  opts.HistoryLimit,
		store:  st,
		clock:  NewClock(),
		logger: logger,
	}
}

// ID returns the session ID.
func (s *Session) ID() string {
	return s.id
}

// State returns the current state.
func (s *Session) State() calc.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// AngleMode returns the current angle mode.
func (s *Session) AngleMode() calc.AngleMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.angle
}

// Press applies one key. The state advances even when the history write
// fails; the error reports the lost entry.
func (s *Session) Press(ctx context.Context, k keypad.Key) (Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.clock.Next()
	prev := s.state

	if k.Kind == keypad.KindAngle {
		s.angle = k.Angle
	}
	proj, commits := keypad.Preview(prev, k, s.angle)
	s.state = keypad.Apply(prev, k, s.angle)

	step := Step{Seq: seq, Key: k, State: s.state}
	s.logger.Debug("key",
		"seq", seq,
		"key", k.String(),
		"display", s.state.Display,
		"mode", s.state.Mode().String(),
	)

	if !commits {
		return step, nil
	}

	entry := history.FromProjection(proj)
	entry.Seq = seq
	entry.SessionID = s.id
	step.Entry = &entry

	if err := s.store.Append(ctx, entry); err != nil {
		return step, fmt.Errorf("record history: %w", err)
	}
	if s.limit > 0 {
		if err := s.store.Trim(ctx, s.id, s.limit); err != nil {
			return step, fmt.Errorf("record history: %w", err)
		}
	}
	s.logger.Debug("history", "seq", seq, "entry", entry.Text())

	return step, nil
}

// PressLine parses and applies whitespace-separated tokens. Parsing happens
// before any key is applied, so a bad token leaves the state untouched.
func (s *Session) PressLine(ctx context.Context, line string) ([]Step, error) {
	keys, err := keypad.ParseLine(line)
	if err != nil {
		return nil, err
	}
	steps := make([]Step, 0, len(keys))
	for _, k := range keys {
		step, err := s.Press(ctx, k)
		steps = append(steps, step)
		if err != nil {
			return steps, err
		}
	}
	return steps, nil
}

// History returns this session's entries, oldest first.
func (s *Session) History(ctx context.Context) ([]history.Entry, error) {
	return s.store.List(ctx, s.id)
}

// ClearHistory deletes this session's entries. The calculator state is kept.
func (s *Session) ClearHistory(ctx context.Context) error {
	return s.store.Clear(ctx, s.id)
}
