package calc_test

import (
	"testing"

	"github.com/zephyrtronium/calc"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		sym  string
		act  calc.Action
		text string
	}{
		{"0", calc.ActDigit, "0"},
		{"7", calc.ActDigit, "7"},
		{".", calc.ActDigit, "."},
		{"+", calc.ActOperator, "+"},
		{"-", calc.ActOperator, "-"},
		{"×", calc.ActOperator, "×"},
		{"÷", calc.ActOperator, "÷"},
		{"=", calc.ActEvaluate, ""},
		{"Enter", calc.ActEvaluate, ""},
		{"Backspace", calc.ActBackspace, ""},
		{"Escape", calc.ActClear, ""},
		{"", calc.ActNone, ""},
		{"12", calc.ActNone, ""},
		{"a", calc.ActNone, ""},
		{"(", calc.ActNone, ""},
		{"enter", calc.ActNone, ""},
		{"\xff", calc.ActNone, ""},
	}
	for _, c := range cases {
		act, text := calc.Classify(c.sym)
		if act != c.act || text != c.text {
			t.Errorf("%q: want %v %q, got %v %q", c.sym, c.act, c.text, act, text)
		}
	}
}

func TestClassifyAliases(t *testing.T) {
	// Each alias normalizes to exactly one canonical glyph.
	aliases := map[string]string{
		"*": "×",
		"x": "×",
		"/": "÷",
	}
	for alias, want := range aliases {
		act, text := calc.Classify(alias)
		if act != calc.ActOperator {
			t.Errorf("%q: want operator, got %v", alias, act)
		}
		if text != want {
			t.Errorf("%q: want %q, got %q", alias, want, text)
		}
	}
}

func TestActionText(t *testing.T) {
	for _, a := range []calc.Action{calc.ActNone, calc.ActEvaluate, calc.ActBackspace, calc.ActClear} {
		b, err := a.MarshalText()
		if err != nil {
			t.Errorf("marshaling %v: %v", a, err)
			continue
		}
		var u calc.Action
		if err := u.UnmarshalText(b); err != nil {
			t.Errorf("unmarshaling %q: %v", b, err)
		}
		if u != a {
			t.Errorf("%v round-tripped to %v", a, u)
		}
	}
	for _, s := range []string{"digit", "operator", "Evaluate", "quit", ""} {
		var u calc.Action
		err := u.UnmarshalText([]byte(s))
		if _, ok := err.(*calc.ActionError); !ok {
			t.Errorf("unmarshaling %q: want *ActionError, got %#v", s, err)
		}
	}
	if _, err := calc.Action(42).MarshalText(); err == nil {
		t.Errorf("marshaling an invalid action gave no error")
	}
}
