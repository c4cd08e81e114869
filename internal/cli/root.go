package cli

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Config  string // path to a .yaml, .yml or .cue settings file
	Angle   string // overrides angle_mode
	Locale  string // overrides locale

	// Fs is where --config and scenario files are read from.
	Fs afero.Fs
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the pocketcalc CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{Fs: afero.NewOsFs()}

	cmd := &cobra.Command{
		Use:           "pocketcalc",
		Short:         "pocketcalc - a pocket calculator engine",
		Long:          "A pocket calculator driven by key presses, with chained operators, repeat-equals and percent keys.",
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "settings file (.yaml or .cue)")
	cmd.PersistentFlags().StringVar(&opts.Angle, "angle", "", "angle mode for trig keys (deg|rad)")
	cmd.PersistentFlags().StringVar(&opts.Locale, "locale", "", "BCP 47 locale for the decimal separator")

	// Add subcommands
	cmd.AddCommand(NewEvalCommand(opts))
	cmd.AddCommand(NewReplCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

func (o *RootOptions) fs() afero.Fs {
	if o.Fs == nil {
		return afero.NewOsFs()
	}
	return o.Fs
}
