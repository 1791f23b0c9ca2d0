// Command dyncon replays a TOML connectivity scenario against a dynamic
// spanning forest and prints the result of every step.
//
// Usage:
//
//	dyncon [options] SCENARIO.toml
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/dyntree/dyncon"
	"github.com/katalvlaran/dyntree/scenario"
)

// ExitError carries a process exit code with its message.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// config is the parsed command line.
type config struct {
	path      string
	logLevel  slog.Level
	logFormat string
	check     bool
	shallow   bool
}

func main() {
	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args, loads the scenario and replays it. Step output goes to
// outW, logs to errW.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	cfg, shouldExit, err := parse(args, errW)
	if err != nil || shouldExit {
		return err
	}

	logger := newLogger(errW, cfg)
	logger.Debug("configuration parsed", "path", cfg.path, "check", cfg.check, "shallow", cfg.shallow)

	s, err := scenario.Load(cfg.path)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	r := scenario.Runner{Out: outW, Logger: logger}
	if cfg.check {
		r.Options = append(r.Options, dyncon.WithConsistencyChecks())
	}
	if cfg.shallow {
		r.Options = append(r.Options, dyncon.WithShallowLinking())
	}

	rep, err := r.Run(ctx, s)
	if errors.Is(err, scenario.ErrExpectation) {
		for _, f := range rep.Failures {
			logger.Error("expectation failed", "step", f.Step, "op", f.Desc, "want", f.Want, "got", f.Got)
		}
		return &ExitError{Code: 3, Message: err.Error()}
	}

	return err
}

func parse(args []string, output io.Writer) (*config, bool, error) {
	fs := flag.NewFlagSet("dyncon", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
dyncon - replay dynamic connectivity scenarios.

Usage:
  dyncon [options] SCENARIO.toml

Options:
`)
		fs.PrintDefaults()
	}

	logLevel := fs.String("log-level", "info", "Logging level: 'debug', 'info', 'warn', 'error'.")
	logFormat := fs.String("log-format", "text", "Log output format: 'text' or 'json'.")
	check := fs.Bool("check", false, "Validate the forest after every mutation.")
	shallow := fs.Bool("shallow", false, "Re-root the shallower endpoint when merging trees.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return nil, false, &ExitError{Code: 2, Message: "exactly one scenario path is required"}
	}

	cfg := &config{
		path:      fs.Arg(0),
		logFormat: strings.ToLower(*logFormat),
		check:     *check,
		shallow:   *shallow,
	}
	if err := cfg.logLevel.UnmarshalText([]byte(*logLevel)); err != nil {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid -log-level %q", *logLevel)}
	}
	if cfg.logFormat != "text" && cfg.logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid -log-format %q", *logFormat)}
	}

	return cfg, false, nil
}

func newLogger(w io.Writer, cfg *config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.logLevel}
	if cfg.logFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
