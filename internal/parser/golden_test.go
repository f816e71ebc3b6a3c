package parser

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// Golden AST dumps for representative programs, covering the grammar
// constructs a hand-written assertion would be most brittle against:
// operator precedence chains and if/elseif/else chaining.
func TestParse_GoldenPrograms(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"arithmetic_precedence", "let x = 1 + 2 * 3 - 4 / 2;"},
		{"conditional_chain", `
			if a == b {
				x = 1;
			} else if a < b {
				x = 2;
			} else {
				x = 3;
			}
		`},
		{"function_with_call", `
			fun add(a: Int32, b: Int32) -> Int32 {
				return a + b;
			}
			let total = add(1, add(2, 3));
		`},
		{"loop_and_array", `
			let xs = [1, 2, 3];
			let n = 0;
			while n < 10 {
				n = n + 1;
			}
		`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			prog, errs := Parse(c.src)
			if len(errs) > 0 {
				t.Fatalf("unexpected errors: %v", errs)
			}
			snaps.MatchSnapshot(t, prog.String())
		})
	}
}
