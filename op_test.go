package calc_test

import (
	"testing"

	"github.com/zephyrtronium/calc"
)

func TestParseOperator(t *testing.T) {
	cases := []struct {
		in   rune
		op   calc.Operator
		high bool
	}{
		{'+', calc.OpAdd, false},
		{'-', calc.OpSub, false},
		{'×', calc.OpMul, true},
		{'*', calc.OpMul, true},
		{'x', calc.OpMul, true},
		{'÷', calc.OpDiv, true},
		{'/', calc.OpDiv, true},
		{'X', calc.OpNone, false},
		{'^', calc.OpNone, false},
		{'=', calc.OpNone, false},
		{'1', calc.OpNone, false},
	}
	for _, c := range cases {
		op := calc.ParseOperator(c.in)
		if op != c.op {
			t.Errorf("%q: want %v, got %v", c.in, c.op, op)
		}
		if op.High() != c.high {
			t.Errorf("%q: want high precedence %t, got %t", c.in, c.high, op.High())
		}
	}
}

func TestOperatorGlyphs(t *testing.T) {
	// Every operator's glyph is in Operators and parses back to itself.
	seen := map[rune]bool{}
	for op := calc.OpAdd; op <= calc.OpDiv; op++ {
		g := op.Glyph()
		if g == 0 {
			t.Errorf("%d has no glyph", op)
			continue
		}
		if seen[g] {
			t.Errorf("glyph %q used twice", g)
		}
		seen[g] = true
		if calc.ParseOperator(g) != op {
			t.Errorf("%q parses to %v, not %v", g, calc.ParseOperator(g), op)
		}
		if op.String() != string(g) {
			t.Errorf("%v formats as %q, not %q", op, op.String(), string(g))
		}
	}
	for _, r := range calc.Operators {
		if !seen[r] {
			t.Errorf("%q in Operators is not an operator glyph", r)
		}
	}
	if g := calc.OpNone.Glyph(); g != 0 {
		t.Errorf("OpNone has glyph %q", g)
	}
}
