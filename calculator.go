package calc

import (
	"strings"
	"sync"
	"unicode/utf8"
)

// ErrorDisplay is the display after an expression fails to evaluate.
const ErrorDisplay = "Error"

// Calculator holds the expression typed so far and edits it one symbol at a
// time: operators are never typed first or twice in a row, and numbers never
// get a leading zero. A negative result leaves a leading minus that only
// evaluates with the SignedResult option.
//
// A Calculator is safe to use concurrently. Observers are called after each
// change, outside any lock, in the order they were registered.
type Calculator struct {
	mu       sync.Mutex
	buf      string
	cfg      config
	watchers []func(string)
}

// New creates a calculator showing 0.
func New(opts ...Option) *Calculator {
	cfg := configure(opts)
	return &Calculator{
		buf:      "0",
		cfg:      cfg,
		watchers: cfg.watchers,
	}
}

// Display returns the current buffer, or ErrorDisplay if the last evaluation
// failed.
func (c *Calculator) Display() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf
}

// Observe registers fn to receive the display after every change.
func (c *Calculator) Observe(fn func(display string)) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	c.watchers = append(c.watchers, fn)
	c.mu.Unlock()
}

// Submit applies one input symbol: a digit, a decimal point, an operator or
// operator alias, or a key name such as "=", "Enter", "Backspace", or
// "Escape". Unknown symbols are ignored. The returned error is non-nil only
// when sym triggered an evaluation that failed; the display then shows
// ErrorDisplay.
//
// While the display shows ErrorDisplay, every symbol except a clear is
// ignored.
func (c *Calculator) Submit(sym string) error {
	act, text := classify(sym, c.cfg.keys)
	switch act {
	case ActDigit:
		strict := c.cfg.strict
		return c.edit(false, func(b string) (string, error) {
			return digit(b, text, strict), nil
		})
	case ActOperator:
		signed := c.cfg.signed
		return c.edit(false, func(b string) (string, error) {
			return operator(b, text, signed), nil
		})
	case ActEvaluate:
		return c.Evaluate()
	case ActBackspace:
		c.Backspace()
	case ActClear:
		c.Clear()
	}
	return nil
}

// Type submits each rune of keys in order. It returns the first evaluation
// error, if any.
func (c *Calculator) Type(keys string) error {
	var err error
	for _, r := range keys {
		if e := c.Submit(string(r)); e != nil && err == nil {
			err = e
		}
	}
	return err
}

// Evaluate replaces the buffer with the value of the expression it holds. If
// the expression is invalid, the display becomes ErrorDisplay and the error
// is returned.
func (c *Calculator) Evaluate() error {
	opts := []Option{Prec(c.cfg.prec)}
	if c.cfg.signed {
		opts = append(opts, SignedResult())
	}
	return c.edit(false, func(b string) (string, error) {
		v, err := EvalString(b, opts...)
		if err != nil {
			return ErrorDisplay, err
		}
		return v.String(), nil
	})
}

// Backspace removes the last character of the buffer. It does nothing if the
// buffer is empty.
func (c *Calculator) Backspace() {
	c.edit(false, func(b string) (string, error) {
		return backspace(b), nil
	})
}

// Clear resets the display to 0.
func (c *Calculator) Clear() {
	c.edit(true, func(string) (string, error) {
		return "0", nil
	})
}

// edit replaces the buffer with the result of fn and notifies observers if
// the buffer changed. Unless clear is set, edits are ignored while the
// display shows ErrorDisplay.
func (c *Calculator) edit(clear bool, fn func(b string) (string, error)) error {
	c.mu.Lock()
	old := c.buf
	if old == ErrorDisplay && !clear {
		c.mu.Unlock()
		return nil
	}
	b, err := fn(old)
	c.buf = b
	var ws []func(string)
	if b != old {
		ws = c.watchers[:len(c.watchers):len(c.watchers)]
	}
	c.mu.Unlock()
	for _, w := range ws {
		w(b)
	}
	return err
}

// digit appends a digit or decimal point d to b.
func digit(b, d string, strict bool) string {
	switch {
	case b == "0" && d == "0":
		return b
	case b == "" && d == ".":
		return "0."
	case b == "0" && d != ".":
		return d
	case strict && d == "." && haspoint(b):
		return b
	}
	return b + d
}

// haspoint reports whether the number at the end of b already has a decimal
// point.
func haspoint(b string) bool {
	k := strings.LastIndexFunc(b, isOperator)
	return strings.ContainsRune(b[k+1:], '.')
}

// operator appends the operator glyph g to b, replacing a trailing operator.
// An empty buffer cannot start with an operator. With signed set, neither can
// a buffer that is only the minus sign of a negative result.
func operator(b, g string, signed bool) string {
	r, sz := utf8.DecodeLastRuneInString(b)
	switch {
	case b == "":
		return b
	case signed && r == '-' && len(b) == sz:
		return b
	case isOperator(r):
		return b[:len(b)-sz] + g
	}
	return b + g
}

// backspace removes the last rune of b.
func backspace(b string) string {
	_, sz := utf8.DecodeLastRuneInString(b)
	return b[:len(b)-sz]
}
