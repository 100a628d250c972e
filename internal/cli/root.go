// Package cli implements the cobra-based command line for align.
//
// align has no subcommands: the root command reads standard input line by
// line, reformats every line to a fixed width and writes the result to
// standard output. Positional tokens choose the width and alignment mode
// (see args.go); flags cover the ambient concerns (profile file, error
// format, verbose diagnostics, version).
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/align/internal/align"
	"github.com/shinji-kodama/align/internal/config"
	"github.com/shinji-kodama/align/internal/model"
)

// Global flag variables. They are bound to cobra persistent flags on the
// root command and reset to their defaults every time NewRootCommand runs.
var (
	// jsonOutput renders errors as JSON on stderr instead of plain text.
	jsonOutput bool

	// verbose enables diagnostic logging on stderr.
	verbose bool

	// configPath names an optional profile file.
	configPath string
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "align [left|right|center|justify|WIDTH]...",
		Short: "Fold text to a fixed width with left, right, center or justified alignment",
		Long: `align reads standard input line by line and folds every line to a fixed
column width, like fold(1), then aligns the resulting lines.

Positional arguments may appear in any order:
  left | right | center | justify   alignment mode (default: justify)
  WIDTH                             column width, 1-255 (default: 72)
When a kind of argument is repeated, the last one wins.

Blank lines and lines starting with |, *, - or # are copied unchanged.

Examples:
  align 60 < notes.txt
  align right 40 < banner.txt
  align --config house.yaml left < README`,

		Args: cobra.ArbitraryArgs,

		// SilenceUsage prevents cobra from printing usage on every error.
		SilenceUsage: true,

		// SilenceErrors lets Execute format errors (text or JSON).
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlign(cmd, args)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output errors in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Load width and mode defaults from a YAML or JSONC profile")

	return rootCmd
}

// runAlign resolves the settings and streams stdin to stdout.
//
// Settings are layered: built-in defaults, then the profile (if any), then
// positional tokens. An invalid token aborts before any input is read.
func runAlign(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd.ErrOrStderr(), verbose)

	settings := config.Defaults()
	if configPath != "" {
		profile, err := config.Load(configPath)
		if err != nil {
			return err
		}
		settings = profile.Apply(settings)
		VerboseLog(logger, "Loaded profile %s", configPath)
	}

	settings, err := ParseArgs(args, settings)
	if err != nil {
		return err
	}
	VerboseLog(logger, "Aligning with mode=%s width=%d", settings.Mode, settings.Width)

	a := &align.Aligner{Width: settings.Width, Mode: settings.Mode, Logger: logger}
	if err := a.Stream(cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to align input", err)
	}
	return nil
}

// Execute runs the root command and exits the process with the mapped
// exit code on failure. CLIError values carry their own code; any other
// error (unknown flag, for instance) exits with ExitGeneralError.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(int(handleError(os.Stderr, err)))
	}
}

// handleError prints err to w and returns the exit code for it.
func handleError(w io.Writer, err error) model.ExitCode {
	if cliErr, ok := err.(*model.CLIError); ok {
		printError(w, cliErr.Message, cliErr.Err)
		return cliErr.Code
	}

	printError(w, err.Error(), nil)
	return model.ExitGeneralError
}

// printError outputs an error message in the format selected by --json.
func printError(w io.Writer, message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(w, string(data))
		return
	}

	if underlying != nil {
		fmt.Fprintf(w, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(w, "Error: %s\n", message)
	}
}

// newLogger returns a text logger on w at debug level when enabled, and a
// logger that drops everything otherwise.
func newLogger(w io.Writer, enabled bool) *slog.Logger {
	if !enabled {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// VerboseLog writes a formatted diagnostic line through logger.
// Nothing is printed unless --verbose is set.
func VerboseLog(logger *slog.Logger, format string, args ...interface{}) {
	if verbose {
		logger.Debug(fmt.Sprintf(format, args...))
	}
}
