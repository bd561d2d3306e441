package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/opswiki/bfstats/internal/app"
	"github.com/opswiki/bfstats/internal/render"
)

// ProgramName and Version identify the tool in usage and error output.
const (
	ProgramName = "bfstats"
	Version     = "1.0"
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

// valueFlags are the flags that consume the following argument.
var valueFlags = map[string]struct{}{
	"-i": {}, "-c": {}, "-t": {}, "-r": {}, "-s": {},
	"-log-level": {}, "-log-format": {},
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
//
// The argument contract is deliberately forgiving: -h wins over everything,
// no arguments prints usage, a value flag without a value is a usage error,
// and unknown flags are ignored silently. The standard flag package cannot
// express the last rule, so this is a plain scan over the argument list.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	if len(args) == 0 {
		Usage(output)
		return nil, true, nil
	}

	// -h anywhere trumps every other flag, so look for it before consuming
	// any flag values.
	for _, arg := range args {
		if arg == "-h" {
			Usage(output)
			return nil, true, nil
		}
	}

	values := map[string]string{}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if _, ok := valueFlags[arg]; !ok {
			continue // unknown flags are ignored, not rejected
		}
		if i+1 >= len(args) {
			Usage(output)
			return nil, false, &ExitError{
				Code:    1,
				Message: fmt.Sprintf("%s: option %s requires an argument", ProgramName, arg),
			}
		}
		i++
		values[arg] = args[i]
	}
	slog.Debug("Arguments parsed successfully.")

	if values["-i"] == "" && values["-c"] == "" && values["-t"] == "" {
		slog.Debug("No input files provided, printing usage and exiting.")
		Usage(output)
		return nil, true, nil
	}

	style := strings.ToLower(values["-s"])
	if style == "" {
		style = string(render.StyleAligned)
	}
	if !render.Style(style).Valid() {
		return nil, false, &ExitError{Code: 2, Message: "invalid style: must be 'aligned', 'minimal', or 'pretty'"}
	}

	logFormat := strings.ToLower(values["-log-format"])
	if logFormat == "" {
		logFormat = "text"
	}
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(values["-log-level"])
	if logLevel == "" {
		logLevel = "info"
	}
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ReportPath:  values["-i"],
		CurrentPath: values["-c"],
		TargetPath:  values["-t"],
		RulesPath:   values["-r"],
		Style:       style,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// Usage prints the program name, version, and option summary.
func Usage(output io.Writer) {
	fmt.Fprintf(output, "%s, version %s\n\n", ProgramName, Version)
	fmt.Fprintf(output, "usage: %s [-h] [-i report | -c current -t target] [options]\n", ProgramName)
	fmt.Fprint(output, `-h display usage
-i filename of a report embedding both current counts and targets
-c filename of the current computer group deployment statistics
-t filename of the comma-separated computer group targets
-r filename of an optional HCL rules file
-s output style: 'aligned', 'minimal', or 'pretty'
-log-level set the logging level: 'debug', 'info', 'warn', or 'error'
-log-format log output format: 'text' or 'json'
`)
}
