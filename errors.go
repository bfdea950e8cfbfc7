package calc

import "strconv"

// InvalidExpressionError indicates an expression that does not tokenize:
// either it is empty or it contains a character or number that is not
// understood. It implements InputError.
type InvalidExpressionError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, plus the invalid rune. It is empty for an empty
	// expression.
	Text string
	// Kind is the type of token the lexer was scanning. This may be "number"
	// or the empty string if a token kind hadn't been decided.
	Kind string
	// Col is the position of the invalid rune.
	Col int
}

func (err *InvalidExpressionError) Error() string {
	if err.Text == "" {
		return errpos(err.Col, "no expression")
	}
	if err.Kind == "" {
		return errpos(err.Col, "invalid token "+strconv.Quote(err.Text))
	}
	return errpos(err.Col, "invalid "+err.Kind+" token "+strconv.Quote(err.Text))
}

func (err *InvalidExpressionError) Pos() int {
	return err.Col
}

// MalformedExpressionError indicates an operator without both of its
// operands, or operands left over with no operator joining them. It
// implements InputError.
type MalformedExpressionError struct {
	// Col is the position of the operator, or of the first leftover operand.
	Col int
	// Operator is the operator missing an operand. It is empty when the
	// error is leftover operands.
	Operator string
}

func (err *MalformedExpressionError) Error() string {
	if err.Operator == "" {
		return errpos(err.Col, "malformed expression: operands without operator")
	}
	return errpos(err.Col, "malformed expression: missing operand for "+strconv.Quote(err.Operator))
}

func (err *MalformedExpressionError) Pos() int {
	return err.Col
}

// OperatorError is an error indicating an operator token that is not
// understood by the evaluator. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "unknown operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// DivisionByZeroError indicates a division whose right operand is exactly
// zero. It implements InputError.
type DivisionByZeroError struct {
	// Col is the position of the division operator.
	Col int
	// Dividend is the left operand of the division.
	Dividend string
}

func (err *DivisionByZeroError) Error() string {
	return errpos(err.Col, "division by zero: "+err.Dividend+"÷0")
}

func (err *DivisionByZeroError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*InvalidExpressionError)(nil)
	_ InputError = (*MalformedExpressionError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*DivisionByZeroError)(nil)
)
