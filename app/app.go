// Package app wires configuration, logging, the terminal and the calculator
// together.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"

	"calculator/calculator"
	"calculator/config"
	"calculator/internal/terminal"
)

// App is the central orchestrator for the calculator. It owns the process
// streams and builds a fresh engine for each session.
type App struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// New creates an App attached to the process standard streams.
func New() *App {
	return NewWithIO(os.Stdin, os.Stdout, os.Stderr)
}

// NewWithIO creates an App using the given streams. Log output goes to
// errOut.
func NewWithIO(in io.Reader, out, errOut io.Writer) *App {
	return &App{
		in:     in,
		out:    out,
		errOut: errOut,
	}
}

// Calculate runs an interactive session. An empty cfgPath uses the default
// configuration and a non-empty logLevel overrides the configured one.
func (a *App) Calculate(ctx context.Context, cfgPath, logLevel string, noHelp bool) error {
	cfg := config.Default()
	if cfgPath != "" {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
	}
	if logLevel != "" {
		if err := cfg.SetLogLevel(logLevel); err != nil {
			return err
		}
	}

	logger, err := newLogger(a.errOut, cfg.LogLevel)
	if err != nil {
		return err
	}

	settings := calculator.Settings{
		Prompt:    cfg.Prompt,
		MaxFaults: cfg.MaxFaults,
		ShowHelp:  cfg.HelpOnStart() && !noHelp,
	}
	logger.Debug("starting calculator", "prompt", settings.Prompt, "max_faults", settings.MaxFaults, "help", settings.ShowHelp)

	term := terminal.New(a.in, a.out)
	engine := calculator.NewEngine(term, logger)
	return calculator.NewDriver(engine, settings, logger).Run(ctx)
}

// newLogger returns a slog.Logger backed by a charmbracelet/log handler.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	handler := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          "calc",
		ReportTimestamp: true,
	})
	return slog.New(handler), nil
}
