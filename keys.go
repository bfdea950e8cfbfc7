package calc

import (
	"strconv"
	"unicode/utf8"
)

// Action is the effect an input symbol has on the calculator.
type Action int8

const (
	ActNone Action = iota

	ActDigit     // append a digit or decimal point
	ActOperator  // append or replace an operator
	ActEvaluate  // replace the buffer with its value
	ActBackspace // remove the last character
	ActClear     // reset the buffer to 0
)

var actionNames = [...]string{
	ActNone:      "none",
	ActDigit:     "digit",
	ActOperator:  "operator",
	ActEvaluate:  "evaluate",
	ActBackspace: "backspace",
	ActClear:     "clear",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Action(" + strconv.Itoa(int(a)) + ")"
	}
	return actionNames[a]
}

// MarshalText implements encoding.TextMarshaler.
func (a Action) MarshalText() ([]byte, error) {
	if a < 0 || int(a) >= len(actionNames) {
		return nil, &ActionError{Name: a.String()}
	}
	return []byte(actionNames[a]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Only the control actions
// and "none" may be named; digits and operators are always classified by
// their own text.
func (a *Action) UnmarshalText(text []byte) error {
	switch string(text) {
	case "none":
		*a = ActNone
	case "evaluate":
		*a = ActEvaluate
	case "backspace":
		*a = ActBackspace
	case "clear":
		*a = ActClear
	default:
		return &ActionError{Name: string(text)}
	}
	return nil
}

// ActionError is an error from naming an action that cannot be bound to a
// key.
type ActionError struct {
	// Name is the unknown action name.
	Name string
}

func (err *ActionError) Error() string {
	return "unknown key action " + strconv.Quote(err.Name)
}

// defaultKeys are the named keys every calculator understands.
var defaultKeys = map[string]Action{
	"=":         ActEvaluate,
	"Enter":     ActEvaluate,
	"Backspace": ActBackspace,
	"Escape":    ActClear,
}

// Classify determines the action for an input symbol using the default key
// names. For digits and operators, text is the canonical text to insert into
// the buffer; any operator alias is normalized to its glyph. Unknown symbols
// give ActNone.
func Classify(sym string) (act Action, text string) {
	return classify(sym, nil)
}

// classify is Classify with extra key names that take priority over the
// defaults.
func classify(sym string, keys map[string]Action) (Action, string) {
	if a, ok := keys[sym]; ok && a != ActDigit && a != ActOperator {
		return a, ""
	}
	if a, ok := defaultKeys[sym]; ok {
		return a, ""
	}
	r, sz := utf8.DecodeRuneInString(sym)
	if sz == 0 || sz != len(sym) {
		return ActNone, ""
	}
	switch {
	case '0' <= r && r <= '9', r == '.':
		return ActDigit, sym
	}
	if op := ParseOperator(r); op != OpNone {
		return ActOperator, string(op.Glyph())
	}
	return ActNone, ""
}
