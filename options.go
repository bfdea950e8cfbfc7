package calc

// DefaultPrec is the number of significant digits kept in results when no
// precision is given.
const DefaultPrec = 20

// Option is an option used when creating a calculator or evaluating an
// expression. Options that have no meaning for evaluation are ignored there.
type Option interface {
	calcOption()
}

type (
	precopt     uint
	strictopt   struct{}
	signedopt   struct{}
	keysopt     map[string]Action
	observeropt func(display string)
)

func (precopt) calcOption()     {}
func (strictopt) calcOption()   {}
func (signedopt) calcOption()   {}
func (keysopt) calcOption()     {}
func (observeropt) calcOption() {}

// Prec sets the number of significant digits to which every intermediate and
// final result is rounded. Zero means DefaultPrec.
func Prec(digits uint) Option {
	return precopt(digits)
}

// StrictDecimal makes the calculator reject a second decimal point in one
// number while editing. Without it, such input is accepted into the buffer
// and fails when evaluated.
func StrictDecimal() Option {
	return strictopt{}
}

// SignedResult allows an expression to begin with a minus sign belonging to
// its first number, so that a negative result can be evaluated again or
// extended, e.g. "-2+3". Without it, a leading minus is a subtraction with no
// left operand and the expression is malformed. The editor also keeps a lone
// minus left by backspacing a negative result rather than replacing it with
// another operator.
func SignedResult() Option {
	return signedopt{}
}

// Keys adds named keys to the calculator's input vocabulary, or overrides the
// default names. Mapping a name to ActNone disables it. Names mapped to
// ActDigit or ActOperator are ignored.
func Keys(names map[string]Action) Option {
	return keysopt(names)
}

// OnChange registers a function to receive the display each time the buffer
// changes. It is equivalent to calling Observe on the new calculator.
func OnChange(fn func(display string)) Option {
	return observeropt(fn)
}

// config is the result of applying options.
type config struct {
	prec     uint
	strict   bool
	signed   bool
	keys     map[string]Action
	watchers []func(string)
}

func configure(opts []Option) config {
	cfg := config{prec: DefaultPrec}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case precopt:
			cfg.prec = uint(opt)
			if cfg.prec == 0 {
				cfg.prec = DefaultPrec
			}
		case strictopt:
			cfg.strict = true
		case signedopt:
			cfg.signed = true
		case keysopt:
			if cfg.keys == nil {
				cfg.keys = make(map[string]Action, len(opt))
			}
			for k, v := range opt {
				cfg.keys[k] = v
			}
		case observeropt:
			if opt != nil {
				cfg.watchers = append(cfg.watchers, opt)
			}
		default:
			panic("calc: unknown option type")
		}
	}
	return cfg
}
