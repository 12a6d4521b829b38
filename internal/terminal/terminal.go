// Package terminal provides the line-oriented console used by the
// calculator: a prompt, blocking line reads, plain output and an ANSI screen
// clear. Input and output are injected so the console can be driven from
// tests.
package terminal

import (
	"bufio"
	"fmt"
	"io"
	"math"
)

// ClearSequence moves the cursor home and erases the display.
const ClearSequence = "\033[H\033[2J"

// initialBufferSize is the starting line buffer; it grows without limit.
const initialBufferSize = 64 * 1024

// Terminal reads lines from an input stream and writes to an output stream.
type Terminal struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// New returns a Terminal reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Terminal {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, initialBufferSize), math.MaxInt)
	return &Terminal{
		scanner: scanner,
		out:     out,
	}
}

// ReadLine writes prompt, if any, and blocks for one line of input. The
// returned line has its line ending removed. io.EOF is returned once the
// input is exhausted; any other error means the input is unusable.
func (t *Terminal) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		t.Print(prompt)
	}
	if t.scanner.Scan() {
		return t.scanner.Text(), nil
	}
	if err := t.scanner.Err(); err != nil {
		return "", fmt.Errorf("read input error: %w", err)
	}
	return "", io.EOF
}

// Print writes s without a trailing newline.
func (t *Terminal) Print(s string) {
	_, _ = io.WriteString(t.out, s)
}

// Println writes the operands followed by a newline.
func (t *Terminal) Println(a ...any) {
	_, _ = fmt.Fprintln(t.out, a...)
}

// Printf writes formatted output.
func (t *Terminal) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(t.out, format, a...)
}

// Clear clears the screen.
func (t *Terminal) Clear() {
	t.Print(ClearSequence)
}
