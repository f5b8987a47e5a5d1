package config

import "fmt"

// Defaults applied when neither a settings file nor a flag overrides them.
const (
	DefaultExtension = ".rb"
	DefaultWorkers   = 4
	DefaultOutput    = "json"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Settings is the resolved configuration for one extraction run.
type Settings struct {
	FormulaPath string // single formula file or a repository directory
	Extension   string // file extension formula discovery matches on
	Workers     int    // concurrent parse workers
	Output      string // record output format: "json" or "text"
	LogLevel    string
	LogFormat   string
}

// NewSettings returns a Settings populated with the package defaults.
// FormulaPath has no default and must be provided by the caller.
func NewSettings() Settings {
	return Settings{
		Extension: DefaultExtension,
		Workers:   DefaultWorkers,
		Output:    DefaultOutput,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// Validate checks that the settings describe a runnable extraction.
func (s *Settings) Validate() error {
	if s.FormulaPath == "" {
		return fmt.Errorf("FormulaPath is a required configuration field and cannot be empty")
	}
	if s.Extension == "" {
		return fmt.Errorf("Extension cannot be empty")
	}
	if s.Workers < 1 {
		return fmt.Errorf("Workers must be at least 1, got %d", s.Workers)
	}
	if s.Output != "json" && s.Output != "text" {
		return fmt.Errorf("Output must be 'json' or 'text', got %q", s.Output)
	}
	return nil
}
