// Package command classifies calculator input lines. It maps the first
// token of a line to a command Type and reports how many arguments that
// command requires. Everything in the package is pure.
package command

import (
	"strings"
)

// Type is the symbolic identity of a calculator command.
type Type int

const (
	Unknown Type = iota
	Exit
	Clear
	Help
	Add
	Sub
	Mult
	Div
	Pow
	Round
	Sqrt
	Set
	Sin
	Cos
	Tan
)

var typeName = map[Type]string{
	Unknown: "Unknown",
	Exit:    "Exit",
	Clear:   "Clear",
	Help:    "Help",
	Add:     "Add",
	Sub:     "Sub",
	Mult:    "Mult",
	Div:     "Div",
	Pow:     "Pow",
	Round:   "Round",
	Sqrt:    "Sqrt",
	Set:     "Set",
	Sin:     "Sin",
	Cos:     "Cos",
	Tan:     "Tan",
}

// String returns the command name, or "Unexpected" for values outside the
// enumeration.
func (t Type) String() string {
	if n, ok := typeName[t]; ok {
		return n
	}
	return "Unexpected"
}

// alias pairs an input spelling with its command. The table order is the
// order aliases are listed in the help reference.
type alias struct {
	name string
	typ  Type
}

var aliasTable = []alias{
	{"exit", Exit},
	{"quit", Exit},
	{"clear", Clear},
	{"cls", Clear},
	{"help", Help},
	{"h", Help},
	{"?", Help},
	{"add", Add},
	{"+", Add},
	{"sub", Sub},
	{"-", Sub},
	{"mult", Mult},
	{"*", Mult},
	{"div", Div},
	{"/", Div},
	{`\`, Div},
	{"pow", Pow},
	{"exp", Pow},
	{"^", Pow},
	{"round", Round},
	{"sqrt", Sqrt},
	{"set", Set},
	{"sin", Sin},
	{"cos", Cos},
	{"tan", Tan},
}

var aliasIndex = func() map[string]Type {
	m := make(map[string]Type, len(aliasTable))
	for _, a := range aliasTable {
		m[a.name] = a.typ
	}
	return m
}()

// Resolve returns the command Type for token, matched case-insensitively
// against the alias table. Tokens that match nothing are Unknown.
func Resolve(token string) Type {
	if t, ok := aliasIndex[strings.ToLower(token)]; ok {
		return t
	}
	return Unknown
}

// RequiredArgs returns the number of arguments, beyond the command token
// itself, that t needs before it can run.
func RequiredArgs(t Type) int {
	switch t {
	case Add, Sub, Mult, Div, Pow, Set:
		return 1
	default:
		return 0
	}
}

// Aliases returns the spellings that resolve to t in alias table order.
func Aliases(t Type) []string {
	var out []string
	for _, a := range aliasTable {
		if a.typ == t {
			out = append(out, a.name)
		}
	}
	return out
}

// Invocation is a single parsed input line. Args holds every token of the
// line, including the command token at index 0.
type Invocation struct {
	Type Type
	Args []string
}

// Argc is the number of arguments given after the command token.
func (inv Invocation) Argc() int {
	if len(inv.Args) == 0 {
		return 0
	}
	return len(inv.Args) - 1
}

// Tokenize splits line on runs of whitespace. A blank line yields an empty
// slice.
func Tokenize(line string) []string {
	return strings.Fields(line)
}

// Parse tokenizes line and resolves its first token. It reports false if
// the line holds no tokens.
func Parse(line string) (Invocation, bool) {
	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return Invocation{}, false
	}
	return Invocation{
		Type: Resolve(tokens[0]),
		Args: tokens,
	}, true
}
