package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/pocketcalc/internal/keypad"
	"github.com/roach88/pocketcalc/internal/session"
)

// Meta commands understood by the REPL.
const (
	metaHistory = ":history"
	metaClear   = ":clear"
	metaMode    = ":mode"
	metaQuit    = ":quit"
)

// ReplOptions holds flags for the repl command.
type ReplOptions struct {
	*RootOptions
	NoPrompt bool
}

// NewReplCommand creates the repl command.
func NewReplCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReplOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactive calculator",
		Long: `Read key sequences from standard input, one line at a time, and print
the screen after each line.

Meta commands:
  :history  print the history log
  :clear    clear the history log (the display is kept)
  :mode     print the calculator mode and angle mode
  :quit     exit

A line with an unknown key is rejected as a whole and the calculator is
left untouched.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(cmd.Context(), opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.NoPrompt, "no-prompt", false, "do not print the prompt")

	return cmd
}

func runRepl(ctx context.Context, opts *ReplOptions, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	set, err := loadSettings(opts.RootOptions)
	if err != nil {
		return err
	}

	logger := newLogger(opts.RootOptions, cmd.ErrOrStderr())
	sess, st, err := openSession(set, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			logger.Error("error closing history", "error", closeErr)
		}
	}()

	r := &repl{
		opts:      opts,
		settings:  set,
		session:   sess,
		w:         cmd.OutOrStdout(),
		formatter: &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose},
	}
	return r.loop(ctx, cmd.InOrStdin())
}

type repl struct {
	opts      *ReplOptions
	settings  *settings
	session   *session.Session
	w         io.Writer
	formatter *OutputFormatter
}

func (r *repl) prompt() {
	if r.opts.NoPrompt || r.opts.Format == "json" {
		return
	}
	fmt.Fprint(r.w, r.settings.Config.Prompt)
}

func (r *repl) loop(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	r.prompt()
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		quit, err := r.handle(ctx, line)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
		r.prompt()
	}
	if err := scanner.Err(); err != nil {
		return WrapExitError(ExitFailure, "failed to read input", err)
	}
	return nil
}

// handle processes one input line. It reports whether the REPL should stop.
func (r *repl) handle(ctx context.Context, line string) (bool, error) {
	switch line {
	case "":
		return false, nil
	case metaQuit, ":q":
		return true, nil
	case metaHistory:
		return false, r.printHistory(ctx)
	case metaClear:
		if err := r.session.ClearHistory(ctx); err != nil {
			return false, WrapExitError(ExitFailure, "failed to clear history", err)
		}
		return false, r.formatter.Success("history cleared")
	case metaMode:
		mode := map[string]string{
			"mode":       r.session.State().Mode().String(),
			"angle_mode": r.session.AngleMode().String(),
		}
		if r.opts.Format == "json" {
			return false, r.formatter.Success(mode)
		}
		fmt.Fprintf(r.w, "%s (%s)\n", mode["mode"], mode["angle_mode"])
		return false, nil
	}

	if strings.HasPrefix(line, ":") {
		return false, r.formatter.Error(CodeInvalidKey, fmt.Sprintf("unknown command %q", line), nil)
	}

	if _, err := r.session.PressLine(ctx, line); err != nil {
		if errors.Is(err, keypad.ErrUnknownKey) {
			return false, r.formatter.Error(CodeInvalidKey, err.Error(), nil)
		}
		return false, WrapExitError(ExitFailure, "failed to record history", err)
	}

	state := r.session.State()
	screen := r.settings.Renderer.Screen(state)
	if r.opts.Format == "json" {
		return false, r.formatter.Success(map[string]string{
			"display": state.Display,
			"screen":  screen,
			"mode":    state.Mode().String(),
		})
	}
	fmt.Fprintln(r.w, screen)
	return false, nil
}

func (r *repl) printHistory(ctx context.Context) error {
	entries, err := r.session.History(ctx)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to read history", err)
	}
	if r.opts.Format == "json" {
		return r.formatter.Success(entries)
	}
	if len(entries) == 0 {
		fmt.Fprintln(r.w, "(no history)")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintln(r.w, r.settings.Renderer.Text(e.Text()))
	}
	return nil
}
