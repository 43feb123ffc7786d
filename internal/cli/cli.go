// Package cli parses the gridroute command line into a resolved configuration.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/gridroute/config"
)

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Exit codes.
const (
	CodeFailure = 1 // a solver failed, e.g. the goal is unreachable
	CodeUsage   = 2 // bad flags, config or input
)

// Invocation is a parsed command line.
type Invocation struct {
	Config *config.Config
	// InputPath is the file to solve; "-" means standard input.
	InputPath string
}

// Parse processes command-line arguments. It returns the invocation, a
// boolean reporting that the program should exit cleanly (help was shown),
// or an *ExitError.
func Parse(args []string, output io.Writer) (*Invocation, bool, error) {
	flagSet := flag.NewFlagSet("gridroute", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
gridroute - minimum-turn routes, shared optimal cells, shortcuts and falling bytes.

Usage:
  gridroute [options] [INPUT]

Arguments:
  INPUT
    Maze or coordinate file to solve; "-" reads standard input.
    Defaults to the config file's input attribute.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an HCL run configuration.")
	modeFlag := flagSet.String("mode", "", "Run mode: 'maze', 'shortcuts' or 'bytes'. Overrides the config file.")
	keyModeFlag := flagSet.String("key-mode", "", "Search keying: 'state' or 'position'. Overrides the config file.")
	workersFlag := flagSet.Int("workers", -1, "Concurrent workers for enumeration and shortcut scans. -1 keeps the config value.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "", "Logging level: 'debug', 'info', 'warn' or 'error'.")
	vars := make(map[string]string)
	flagSet.Func("var", "Set an HCL variable as name=value. Repeatable.", func(s string) error {
		name, value, ok := strings.Cut(s, "=")
		if !ok || name == "" {
			return errors.New("want name=value")
		}
		vars[name] = value
		return nil
	})

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: CodeUsage, Message: err.Error()}
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: CodeUsage, Message: fmt.Sprintf("expected at most one INPUT, got %d", flagSet.NArg())}
	}

	// 1) Config file, or defaults
	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag, vars)
		if err != nil {
			return nil, false, &ExitError{Code: CodeUsage, Message: err.Error()}
		}
		cfg = loaded
	}

	// 2) Flags override the file
	if *modeFlag != "" {
		cfg.Mode = strings.ToLower(*modeFlag)
	}
	if *keyModeFlag != "" {
		mode, err := config.ParseKeyMode(*keyModeFlag)
		if err != nil {
			return nil, false, &ExitError{Code: CodeUsage, Message: err.Error()}
		}
		cfg.KeyMode = mode
	}
	if *workersFlag >= 0 {
		cfg.Enumerate.Workers = *workersFlag
		cfg.Shortcuts.Workers = *workersFlag
	}
	if *logFormatFlag != "" {
		cfg.Logging.Format = strings.ToLower(*logFormatFlag)
	}
	if *logLevelFlag != "" {
		cfg.Logging.Level = strings.ToLower(*logLevelFlag)
	}
	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: CodeUsage, Message: err.Error()}
	}

	// 3) Input path
	input := cfg.Input
	if flagSet.NArg() == 1 {
		input = flagSet.Arg(0)
	}
	if input == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	return &Invocation{Config: cfg, InputPath: input}, false, nil
}
