// Package callable holds Lox's native (Go-implemented) callables. User-
// defined functions live in package interpreter instead, since invoking one
// requires running the interpreter's unexported executeBlock over its body —
// putting Function there avoids a callable↔interpreter import cycle.
package callable

import (
	"time"

	"github.com/akashmaji946/loxgo/value"
)

// Clock is the builtin `clock()`: arity 0, returns wall-clock seconds since
// the Unix epoch. Grounded on the original source's loxClock.
type Clock struct{}

func (Clock) Type() string   { return "native function" }
func (Clock) String() string { return "<native fn clock>" }
func (Clock) Arity() int     { return 0 }

func (Clock) Call(_ interface{}, _ []value.Value) (value.Value, error) {
	return value.Number(float64(time.Now().UnixNano()) / 1e9), nil
}

// Str is the builtin `str(value)`: arity 1, returns the display-string
// conversion of its argument — the same conversion `print` performs.
// Grounded on the original source's loxString.
type Str struct{}

func (Str) Type() string   { return "native function" }
func (Str) String() string { return "<native fn str>" }
func (Str) Arity() int     { return 1 }

func (Str) Call(_ interface{}, args []value.Value) (value.Value, error) {
	return value.String(args[0].String()), nil
}
