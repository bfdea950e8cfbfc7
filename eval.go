package calc

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// operand is a number awaiting reduction, with the column where it started.
type operand struct {
	v   decimal.Decimal
	pos int
}

// Eval evaluates a complete expression and returns its result. Operators
// are resolved in two tiers: while any × or ÷ remains, the leftmost of them
// is applied first; otherwise the leftmost + or -. Every result is rounded to
// the precision given by the Prec option. An expression may begin with a
// minus sign only with the SignedResult option.
//
// If the expression is invalid, the error implements InputError.
func Eval(src io.RuneScanner, opts ...Option) (decimal.Decimal, error) {
	cfg := configure(opts)
	toks, err := tokens(src, cfg.signed)
	if err != nil {
		return decimal.Zero, err
	}
	if len(toks) == 0 {
		return decimal.Zero, &InvalidExpressionError{Col: 1}
	}
	nums := make([]operand, 0, len(toks)/2+1)
	ops := make([]lexToken, 0, len(toks)/2)
	for _, tok := range toks {
		switch tok.kind {
		case tokenNum:
			v, err := decimal.NewFromString(numtext(tok.text))
			if err != nil {
				return decimal.Zero, &InvalidExpressionError{Text: tok.text, Kind: "number", Col: tok.pos}
			}
			nums = append(nums, operand{v: v, pos: tok.pos})
		case tokenOp:
			ops = append(ops, tok)
		default:
			return decimal.Zero, &InvalidExpressionError{Text: tok.text, Col: tok.pos}
		}
	}

	for len(ops) > 0 {
		k := nextop(ops)
		tok := ops[k]
		if k+1 >= len(nums) {
			return decimal.Zero, &MalformedExpressionError{Col: tok.pos, Operator: tok.text}
		}
		r, err := apply(tok, nums[k].v, nums[k+1].v, cfg.prec)
		if err != nil {
			return decimal.Zero, err
		}
		nums[k].v = r
		nums = append(nums[:k+1], nums[k+2:]...)
		ops = append(ops[:k], ops[k+1:]...)
	}
	if len(nums) != 1 {
		return decimal.Zero, &MalformedExpressionError{Col: nums[1].pos}
	}
	return round(nums[0].v, cfg.prec), nil
}

// EvalString is a shortcut to evaluate a string expression.
func EvalString(src string, opts ...Option) (decimal.Decimal, error) {
	return Eval(strings.NewReader(src), opts...)
}

// nextop returns the index of the operator to resolve next: the first
// high-precedence operator if there is one, otherwise the first operator.
func nextop(ops []lexToken) int {
	for i, tok := range ops {
		if op(tok).High() {
			return i
		}
	}
	return 0
}

func op(tok lexToken) Operator {
	r, _ := utf8.DecodeRuneInString(tok.text)
	if !isOperator(r) || len(tok.text) != utf8.RuneLen(r) {
		return OpNone
	}
	return ParseOperator(r)
}

// apply computes l op r.
func apply(tok lexToken, l, r decimal.Decimal, prec uint) (decimal.Decimal, error) {
	switch op(tok) {
	case OpAdd:
		return round(l.Add(r), prec), nil
	case OpSub:
		return round(l.Sub(r), prec), nil
	case OpMul:
		return round(l.Mul(r), prec), nil
	case OpDiv:
		if r.IsZero() {
			return decimal.Zero, &DivisionByZeroError{Col: tok.pos, Dividend: l.String()}
		}
		return quo(l, r, prec), nil
	default:
		return decimal.Zero, &OperatorError{Col: tok.pos, Operator: tok.text}
	}
}

// quo divides l by r, which must be nonzero, to prec significant digits.
func quo(l, r decimal.Decimal, prec uint) decimal.Decimal {
	if l.IsZero() {
		return decimal.Zero
	}
	// The quotient's leading digit is at magnitude(l)-magnitude(r) or one
	// below it. Carry a few guard digits past prec before the final round.
	places := int32(prec) - magnitude(l) + magnitude(r) + 3
	return round(l.DivRound(r, places), prec)
}

// round rounds d half away from zero to prec significant digits.
func round(d decimal.Decimal, prec uint) decimal.Decimal {
	if d.IsZero() {
		return decimal.Zero
	}
	return d.Round(int32(prec) - 1 - magnitude(d))
}

// magnitude returns the power of ten of the leading digit of d, which must be
// nonzero: 10^magnitude(d) <= |d| < 10^(magnitude(d)+1).
func magnitude(d decimal.Decimal) int32 {
	return int32(d.NumDigits()) + d.Exponent() - 1
}

// numtext rewrites a number token into a form that always has digits on both
// sides of any decimal point, e.g. ".5" to "0.5" and "5." to "5".
func numtext(s string) string {
	s = strings.TrimSuffix(s, ".")
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	return sign + s
}
