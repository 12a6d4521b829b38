package command

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolve(t *testing.T) {

	tests := []struct {
		token string
		want  Type
	}{
		{"exit", Exit},
		{"QUIT", Exit},
		{"clear", Clear},
		{"Cls", Clear},
		{"help", Help},
		{"h", Help},
		{"?", Help},
		{"+", Add},
		{"add", Add},
		{"-", Sub},
		{"SUB", Sub},
		{"*", Mult},
		{"mult", Mult},
		{"/", Div},
		{`\`, Div},
		{"div", Div},
		{"pow", Pow},
		{"exp", Pow},
		{"^", Pow},
		{"round", Round},
		{"sqrt", Sqrt},
		{"set", Set},
		{"sin", Sin},
		{"cos", Cos},
		{"tan", Tan},
		{"frobnicate", Unknown},
		{"", Unknown},
		{"add5", Unknown},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("token_%q", tt.token), func(t *testing.T) {
			if got, want := Resolve(tt.token), tt.want; got != want {
				t.Errorf("got %s want %s", got, want)
			}
		})
	}
}

func TestRequiredArgs(t *testing.T) {

	one := map[Type]bool{Add: true, Sub: true, Mult: true, Div: true, Pow: true, Set: true}
	for typ := range typeName {
		want := 0
		if one[typ] {
			want = 1
		}
		if got := RequiredArgs(typ); got != want {
			t.Errorf("%s: got %d want %d", typ, got, want)
		}
	}
}

func TestTypeString(t *testing.T) {
	if got, want := Div.String(), "Div"; got != want {
		t.Errorf("got %s want %s", got, want)
	}
	if got, want := Type(99).String(), "Unexpected"; got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestAliases(t *testing.T) {
	if diff := cmp.Diff([]string{"div", "/", `\`}, Aliases(Div)); diff != "" {
		t.Errorf("Div aliases mismatch (-want +got):\n%s", diff)
	}
	if got := Aliases(Unknown); got != nil {
		t.Errorf("expected no aliases for Unknown, got %v", got)
	}
	// every command other than Unknown is reachable
	for typ := range typeName {
		if typ == Unknown {
			continue
		}
		if len(Aliases(typ)) == 0 {
			t.Errorf("%s has no aliases", typ)
		}
	}
}

func TestTokenize(t *testing.T) {

	tests := []struct {
		input string
		want  []string
	}{
		{"add 5", []string{"add", "5"}},
		{"add\t\t5", []string{"add", "5"}},
		{"  sqrt  ", []string{"sqrt"}},
		{"set  1  2", []string{"set", "1", "2"}},
		{"", []string{}},
		{" \t ", []string{}},
	}

	for ii, tt := range tests {
		t.Run(fmt.Sprintf("test_%d", ii), func(t *testing.T) {
			got := Tokenize(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParse(t *testing.T) {

	inv, ok := Parse("MULT 2")
	if !ok {
		t.Fatal("expected a parsed invocation")
	}
	want := Invocation{Type: Mult, Args: []string{"MULT", "2"}}
	if diff := cmp.Diff(want, inv); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
	if got, want := inv.Argc(), 1; got != want {
		t.Errorf("argc got %d want %d", got, want)
	}

	if _, ok := Parse("   "); ok {
		t.Error("expected blank line to yield no invocation")
	}
}
