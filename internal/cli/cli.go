// Package cli parses command-line arguments for both entrypoints and turns
// bad input into exit codes.
package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
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

// Options are the parsed flags.
type Options struct {
	ConfigPath string
	Address    string
	LogLevel   string
	LogFormat  string
	Frontend   string
}

// Frontends selectable with -frontend.
const (
	FrontendTerm    = "term"
	FrontendDesktop = "desktop"
)

// Parse processes args for the program called name. It returns the options,
// whether the program should exit cleanly (help was requested), or an
// *ExitError. frontends lists the values -frontend accepts, the first one
// being the default. Without frontends the program is the server: -addr is
// offered and -frontend is not.
func Parse(name string, args []string, output io.Writer, frontends ...string) (*Options, bool, error) {
	slog.Debug("CLI parser started.", "program", name)
	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprintf(output, `
%s - the classic snake game.

Usage:
  %s [options]

Options:
`, name, name)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an HCL config file. Defaults are used when empty.")
	var addrFlag, frontendFlag *string
	if len(frontends) == 0 {
		addrFlag = flagSet.String("addr", "", "Address to listen on, overrides the config file.")
	} else {
		frontendFlag = flagSet.String("frontend", frontends[0], "Where to play. Options: "+strings.Join(frontends, ", ")+".")
	}
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", flagSet.Arg(0))}
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

	opts := &Options{
		ConfigPath: *configFlag,
		LogLevel:   logLevel,
		LogFormat:  logFormat,
	}
	if addrFlag != nil {
		opts.Address = *addrFlag
	}
	if frontendFlag != nil {
		opts.Frontend = strings.ToLower(*frontendFlag)
		valid := false
		for _, f := range frontends {
			valid = valid || f == opts.Frontend
		}
		if !valid {
			return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid frontend %q: must be one of %s", opts.Frontend, strings.Join(frontends, ", "))}
		}
	}

	slog.Debug("CLI parser finished successfully.", "options", opts)
	return opts, false, nil
}
