package calculator

import (
	"fmt"
	"strings"

	"calculator/command"
)

// helpEntries describes each command in the order it appears in the
// reference.
var helpEntries = []struct {
	typ  command.Type
	text string
}{
	{command.Exit, "Exits the program."},
	{command.Clear, "Clears the screen."},
	{command.Help, "Displays this list of commands."},
	{command.Add, "Adds the given number to the current value."},
	{command.Sub, "Subtracts the given number from the current value."},
	{command.Mult, "Multiplies the current value by the given number."},
	{command.Div, "Divides the current value by the given number. The result must be an exact decimal."},
	{command.Pow, "Raises the current value to the integer part of the given number."},
	{command.Round, "Rounds to the nearest integer, or to the given number of significant digits."},
	{command.Sqrt, "Calculates the exact square root of the current value."},
	{command.Set, "Sets the current value to the given number."},
	{command.Sin, "Calculates the sine of the current value."},
	{command.Cos, "Calculates the cosine of the current value."},
	{command.Tan, "Calculates the tangent of the current value."},
}

const helpContinue = "Press enter to continue . . ."

// helpText renders the command reference.
func helpText() string {
	var b strings.Builder
	b.WriteString("## Commands\n")
	for _, e := range helpEntries {
		fmt.Fprintf(&b, "- %s (%s): %s\n", e.typ, strings.Join(command.Aliases(e.typ), ", "), e.text)
	}
	b.WriteString(helpContinue)
	return b.String()
}
