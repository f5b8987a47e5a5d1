package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/formulago/internal/config"
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

// Parse processes command-line arguments into settings. It returns the
// resolved settings, a boolean indicating the program should exit cleanly
// (help requested, nothing to do), or an ExitError. Precedence is package
// defaults, then the optional settings file, then explicitly set flags.
func Parse(args []string, output io.Writer) (*config.Settings, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("formulago", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
formulago - extracts package metadata from formula scripts without running them.

Usage:
  formulago [options] [FORMULA_PATH]

Arguments:
  FORMULA_PATH
    Path to a single formula file or a directory of formulas.

Options:
`)
		flagSet.PrintDefaults()
	}

	formulaFlag := flagSet.String("formula", "", "Path to the formula file or directory.")
	fFlag := flagSet.String("f", "", "Path to the formula file or directory (shorthand).")
	configFlag := flagSet.String("config", "", "Path to an optional HCL settings file.")
	outputFlag := flagSet.String("output", config.DefaultOutput, "Record output format. Options: 'json' or 'text'.")
	workersFlag := flagSet.Int("workers", config.DefaultWorkers, "Number of concurrent parse workers.")
	extensionFlag := flagSet.String("extension", config.DefaultExtension, "File extension formula discovery matches on.")
	logFormatFlag := flagSet.String("log-format", config.DefaultLogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", config.DefaultLogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	settings := config.NewSettings()

	if *configFlag != "" {
		if err := config.ApplyFile(&settings, *configFlag); err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		slog.Debug("Settings file applied.", "path", *configFlag)
	}

	// Only explicitly set flags override the settings file.
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "output":
			settings.Output = *outputFlag
		case "workers":
			settings.Workers = *workersFlag
		case "extension":
			settings.Extension = *extensionFlag
		case "log-format":
			settings.LogFormat = *logFormatFlag
		case "log-level":
			settings.LogLevel = *logLevelFlag
		}
	})

	path := ""
	if *formulaFlag != "" {
		path = *formulaFlag
	} else if *fFlag != "" {
		path = *fFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Formula path determined.", "path", path)

	if path == "" {
		slog.Debug("No formula path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	settings.FormulaPath = path

	logFormat := strings.ToLower(settings.LogFormat)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	settings.LogFormat = logFormat

	logLevel := strings.ToLower(settings.LogLevel)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	settings.LogLevel = logLevel

	if err := settings.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "settings", settings)
	return &settings, false, nil
}
