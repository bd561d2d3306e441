package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ReportPath  string // -i single-file mode: report with embedded targets
	CurrentPath string // -c two-file mode: report with current counts
	TargetPath  string // -t two-file mode: delimiter-separated targets
	RulesPath   string // -r optional HCL rules file

	Style     string
	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config. At least one input path must be set; the
// no-arguments case is handled by the CLI layer before this point.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ReportPath == "" && cfg.CurrentPath == "" && cfg.TargetPath == "" {
		return nil, errors.New("at least one input file is required")
	}
	return &cfg, nil
}

// SingleFile reports whether the run uses one combined report (-i) rather
// than separate current and target files.
func (c *Config) SingleFile() bool {
	return c.ReportPath != ""
}
