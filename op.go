package calc

import "strconv"

// Operator is one of the four arithmetic operators the calculator knows.
type Operator int8

const (
	OpNone Operator = iota

	OpAdd // +
	OpSub // -
	OpMul // ×
	OpDiv // ÷
)

// Operators contains the canonical operator glyphs in Operator order. The
// buffer only ever holds these.
const Operators = "+-×÷"

// aliases maps every accepted operator spelling to its operator. Canonical
// glyphs map to themselves.
var aliases = map[rune]Operator{
	'+': OpAdd,
	'-': OpSub,
	'×': OpMul,
	'*': OpMul,
	'x': OpMul,
	'÷': OpDiv,
	'/': OpDiv,
}

// ParseOperator returns the operator spelled by r, which may be a canonical
// glyph or an alias. The result is OpNone if r is not an operator.
func ParseOperator(r rune) Operator {
	return aliases[r]
}

// isOperator reports whether r is a canonical operator glyph.
func isOperator(r rune) bool {
	switch r {
	case '+', '-', '×', '÷':
		return true
	}
	return false
}

// Glyph returns the canonical glyph for op, or 0 for an invalid operator.
func (op Operator) Glyph() rune {
	switch op {
	case OpAdd:
		return '+'
	case OpSub:
		return '-'
	case OpMul:
		return '×'
	case OpDiv:
		return '÷'
	}
	return 0
}

// High reports whether op belongs to the high precedence tier, which is
// resolved before any low precedence operator.
func (op Operator) High() bool {
	return op == OpMul || op == OpDiv
}

func (op Operator) String() string {
	if g := op.Glyph(); g != 0 {
		return string(g)
	}
	return "Operator(" + strconv.Itoa(int(op)) + ")"
}
