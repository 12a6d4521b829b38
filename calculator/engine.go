// Package calculator holds the calculator Engine, which owns the accumulator
// and executes single command lines, and the Driver, which runs the
// interactive loop around it.
package calculator

import (
	"log/slog"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"calculator/command"
)

// Console is the terminal the calculator talks to.
type Console interface {
	ReadLine(prompt string) (string, error)
	Print(s string)
	Println(a ...any)
	Printf(format string, a ...any)
	Clear()
}

// logDecimal defers rendering a decimal until a log record is handled.
type logDecimal decimal.Decimal

// LogValue fulfills the slog.LogValuer interface for logDecimal.
func (d logDecimal) LogValue() slog.Value {
	return slog.StringValue(decimal.Decimal(d).String())
}

// Engine owns the accumulator and the running flag. An Engine is used from
// a single goroutine.
type Engine struct {
	value   decimal.Decimal
	running bool
	con     Console
	log     *slog.Logger
}

// NewEngine returns a running Engine with a zero accumulator. A nil logger
// discards log output.
func NewEngine(con Console, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{
		value:   decimal.Zero,
		running: true,
		con:     con,
		log:     logger,
	}
}

// Value returns the accumulator.
func (e *Engine) Value() decimal.Decimal {
	return e.value
}

// Running reports whether the engine accepts further commands.
func (e *Engine) Running() bool {
	return e.running
}

// Stop marks the engine as stopped.
func (e *Engine) Stop() {
	e.running = false
}

// Draw renders the accumulator.
func (e *Engine) Draw() {
	e.con.Printf("value: %s\n", e.value.String())
}

// ExecuteLine parses and runs one command line. Input errors such as an
// unknown command, a missing argument or a malformed number are reported on
// the console and nil is returned. Arithmetic failures are returned as a
// *FaultError. In both cases the accumulator is left unchanged.
func (e *Engine) ExecuteLine(line string) error {
	inv, ok := command.Parse(line)
	if !ok {
		e.con.Println("no input given")
		return nil
	}

	if need := command.RequiredArgs(inv.Type); inv.Argc() < need {
		e.con.Printf("failed to provide the necessary amount of arguments for command: %s\nrequired arguments: %d\n", inv.Type, need)
		return nil
	}

	if err := e.dispatch(inv); err != nil {
		e.log.Debug("command failed", "command", inv.Type.String(), "args", inv.Args, "err", err)
		return &FaultError{Command: inv.Type, Err: err}
	}
	e.value = normalize(e.value)
	e.log.Debug("command executed", "command", inv.Type.String(), "value", logDecimal(e.value))
	return nil
}

func (e *Engine) dispatch(inv command.Invocation) error {
	switch inv.Type {
	case command.Exit:
		e.Stop()
	case command.Clear:
		e.con.Clear()
	case command.Help:
		e.help()
	case command.Add:
		return e.apply(inv.Args[1], func(acc, v decimal.Decimal) (decimal.Decimal, error) {
			return acc.Add(v), nil
		})
	case command.Sub:
		return e.apply(inv.Args[1], func(acc, v decimal.Decimal) (decimal.Decimal, error) {
			return acc.Sub(v), nil
		})
	case command.Mult:
		return e.apply(inv.Args[1], func(acc, v decimal.Decimal) (decimal.Decimal, error) {
			return acc.Mul(v), nil
		})
	case command.Div:
		return e.apply(inv.Args[1], quoExact)
	case command.Pow:
		return e.apply(inv.Args[1], func(acc, v decimal.Decimal) (decimal.Decimal, error) {
			n, err := truncInt(v)
			if err != nil {
				return decimal.Zero, err
			}
			return powInt(acc, n)
		})
	case command.Round:
		if inv.Argc() == 0 {
			e.value = roundHalfUp(e.value)
			return nil
		}
		return e.apply(inv.Args[1], func(acc, v decimal.Decimal) (decimal.Decimal, error) {
			n, err := truncInt(v)
			if err != nil {
				return decimal.Zero, err
			}
			return roundSignificant(acc, n)
		})
	case command.Sqrt:
		return e.update(sqrtExact(e.value))
	case command.Set:
		return e.update(parseDecimal(inv.Args[1]))
	case command.Sin:
		return e.update(trig(math.Sin, e.value))
	case command.Cos:
		return e.update(trig(math.Cos, e.value))
	case command.Tan:
		return e.update(trig(math.Tan, e.value))
	default:
		e.con.Printf("unknown command: %s\ngot args: [%s]\n", inv.Args[0], strings.Join(inv.Args, ", "))
	}
	return nil
}

// apply validates arg as a plain decimal and replaces the accumulator with
// op(accumulator, arg). An invalid arg is reported and leaves the
// accumulator alone.
func (e *Engine) apply(arg string, op func(acc, v decimal.Decimal) (decimal.Decimal, error)) error {
	if !isNumeric(arg) {
		e.con.Printf("argument passed is not a valid numeric value: %q\n", arg)
		return nil
	}
	v, err := parseDecimal(arg)
	if err != nil {
		return err
	}
	return e.update(op(e.value, v))
}

// update stores v unless err is set.
func (e *Engine) update(v decimal.Decimal, err error) error {
	if err != nil {
		return err
	}
	e.value = v
	return nil
}

// help shows the command reference and waits for one line of input. If the
// input is exhausted while waiting the engine stops.
func (e *Engine) help() {
	e.con.Clear()
	e.con.Print(helpText())
	if _, err := e.con.ReadLine(""); err != nil {
		e.log.Debug("input closed during help", "err", err)
		e.Stop()
		return
	}
	e.con.Clear()
}
