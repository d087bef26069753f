package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/labwarego/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("labware", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
Labware - A catalog of labware descriptors.

Usage:
  labware [options] list
  labware [options] describe MODEL NAME
  labware [options] stack PLATE_X PLATE_Y PLATE_Z MODEL

Commands:
  list       Print every registered labware model.
  describe   Create an instance of MODEL named NAME and print its descriptor.
  stack      Put a lid of MODEL on a plate and print the stacked height in mm.

Options:
`)
		flagSet.PrintDefaults()
	}

	definitionsFlag := flagSet.String("definitions", "", "Path to a .hcl file or directory with additional labware definitions.")
	dFlag := flagSet.String("d", "", "Path to labware definitions (shorthand).")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	outputFlag := flagSet.String("output", "json", "Descriptor output format for 'describe'. Options: 'json' or 'hcl'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() == 0 {
		slog.Debug("No command provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	path := *definitionsFlag
	if path == "" {
		path = *dFlag
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		DefinitionsPath: path,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
		OutputFormat:    strings.ToLower(*outputFlag),
		Command:         flagSet.Arg(0),
		Args:            flagSet.Args()[1:],
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
