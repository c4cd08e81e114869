package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/pocketcalc/internal/history"
	"github.com/roach88/pocketcalc/internal/keypad"
	"github.com/roach88/pocketcalc/internal/render"
	"github.com/roach88/pocketcalc/internal/session"
)

// EvalOptions holds flags for the eval command.
type EvalOptions struct {
	*RootOptions
	NoHistory bool // print only the final screen
}

// EvalResult is the JSON payload of the eval command.
type EvalResult struct {
	Display   string          `json:"display"`
	Screen    string          `json:"screen"`
	Mode      string          `json:"mode"`
	AngleMode string          `json:"angle_mode"`
	History   []history.Entry `json:"history"`
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvalOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "eval <keys...>",
		Short: "Press a key sequence and print the result",
		Long: `Press a sequence of keys on a fresh calculator and print what it shows.

Each argument may hold several whitespace-separated keys. Digits, ".",
operators (+ - * / ^ or × ÷ −), "=", "%", "neg", "bs", "c", the functions
sqr sqrt recip exp ln log sin cos tan, and the angle keys deg and rad are
understood.

Exit codes:
  0 - Keys applied
  1 - Runtime error
  2 - Unknown key or invalid settings

Examples:
  pocketcalc eval 2 + 3 '*' 4 =
  pocketcalc eval "200 + 10 % ="
  pocketcalc eval --angle rad 3.14159 sin
  pocketcalc eval --locale de 1 / 4 = --format json`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd.Context(), opts, args, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.NoHistory, "no-history", false, "print only the final display")

	return cmd
}

func runEval(ctx context.Context, opts *EvalOptions, args []string, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	formatter := &OutputFormatter{
		Format:  opts.Format,
		Writer:  cmd.OutOrStdout(),
		Verbose: opts.Verbose,
	}

	set, err := loadSettings(opts.RootOptions)
	if err != nil {
		if opts.Format == "json" {
			_ = formatter.Error(CodeInvalidConfig, err.Error(), nil)
		}
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

	line := strings.Join(args, " ")
	if _, err := sess.PressLine(ctx, line); err != nil {
		code, exit := CodeHistory, ExitFailure
		if errors.Is(err, keypad.ErrUnknownKey) {
			code, exit = CodeInvalidKey, ExitCommandError
		}
		if opts.Format == "json" {
			_ = formatter.Error(code, err.Error(), map[string]string{"keys": line})
		}
		return WrapExitError(exit, "failed to evaluate keys", err)
	}

	entries, err := sess.History(ctx)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to read history", err)
	}

	if opts.Format == "json" {
		return formatter.SuccessFor(sess.ID(), evalResult(sess, set.Renderer, entries))
	}

	w := cmd.OutOrStdout()
	if !opts.NoHistory {
		for _, e := range entries {
			fmt.Fprintln(w, set.Renderer.Text(e.Text()))
		}
	}
	fmt.Fprintln(w, set.Renderer.Screen(sess.State()))
	return nil
}

func evalResult(sess *session.Session, r *render.Renderer, entries []history.Entry) EvalResult {
	state := sess.State()
	return EvalResult{
		Display:   state.Display,
		Screen:    r.Screen(state),
		Mode:      state.Mode().String(),
		AngleMode: sess.AngleMode().String(),
		History:   entries,
	}
}
