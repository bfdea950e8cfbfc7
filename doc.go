// Package calc implements the input and evaluation engine of a pocket
// calculator.
//
// A Calculator receives one keystroke at a time (digits, a decimal point, the
// operators + - × ÷ or their aliases * x /, and keys to evaluate, delete, or
// clear) and keeps the expression typed so far as text. Evaluating applies ×
// and ÷ before + and -, working left to right, using decimal arithmetic so
// that "0.1+0.2" is exactly 0.3. A failed evaluation shows "Error" until the
// calculator is cleared.
//
// Eval and EvalString evaluate an expression directly, returning a typed
// error with position information when it is invalid.
//
package calc
