package calculator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Settings tunes the interactive loop.
type Settings struct {
	Prompt    string
	MaxFaults int
	ShowHelp  bool
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Prompt:    "> ",
		MaxFaults: 10,
		ShowHelp:  true,
	}
}

// Driver runs the read-execute loop for an Engine. Every iteration runs
// inside a recovery boundary; faults and recovered panics are counted and
// the loop gives up once Settings.MaxFaults is reached.
type Driver struct {
	engine   *Engine
	settings Settings
	faults   int
	log      *slog.Logger
}

// NewDriver returns a Driver for engine. A non-positive MaxFaults is
// replaced by the default. A nil logger discards log output.
func NewDriver(engine *Engine, settings Settings, logger *slog.Logger) *Driver {
	if settings.MaxFaults <= 0 {
		settings.MaxFaults = DefaultSettings().MaxFaults
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Driver{
		engine:   engine,
		settings: settings,
		log:      logger,
	}
}

// Faults returns the number of faults counted so far.
func (d *Driver) Faults() int {
	return d.faults
}

// Run shows the help screen if configured, then loops until the engine
// stops. It returns ErrTooManyFaults when the fault limit is reached and the
// context error if ctx is cancelled between iterations.
func (d *Driver) Run(ctx context.Context) error {
	if d.settings.ShowHelp {
		d.iterate(func() error { return d.engine.ExecuteLine("help") })
	}

	for d.engine.Running() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.faults >= d.settings.MaxFaults {
			d.engine.con.Println("getting a ton of errors here, breaking out of the loop")
			d.log.Error("fault limit reached", "faults", d.faults)
			return ErrTooManyFaults
		}
		d.iterate(d.step)
	}
	d.log.Debug("calculator stopped", "value", logDecimal(d.engine.Value()))
	return nil
}

// step renders the accumulator, reads one line and executes it. End of
// input, or input that can no longer be read, stops the engine.
func (d *Driver) step() error {
	d.engine.Draw()
	line, err := d.engine.con.ReadLine(d.settings.Prompt)
	if err != nil {
		if !errors.Is(err, io.EOF) {
			d.log.Warn("input unusable, stopping", "err", err)
		}
		d.engine.Stop()
		return nil
	}
	if strings.TrimSpace(line) == "" {
		d.engine.con.Println("no input given")
		return nil
	}
	return d.engine.ExecuteLine(line)
}

// iterate runs fn, counting any returned error or recovered panic as a fault.
func (d *Driver) iterate(fn func() error) {
	err := recoverFault(fn)
	if err == nil {
		return
	}
	d.faults++
	d.engine.con.Printf("error running command: %v\n", err)
	d.log.Warn("command fault", "err", err, "faults", d.faults)
}

func recoverFault(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unexpected failure: %v", r)
		}
	}()
	return fn()
}
