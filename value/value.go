// Package value defines Lox's runtime value representation: the tagged
// union of nil, boolean, number, string, and callable described in the
// language's data model.
package value

import (
	"strconv"
	"strings"
)

// Value is the interface every runtime Lox value implements. It mirrors
// the shape of a tagged union: a type tag plus a display form.
type Value interface {
	// Type returns a short, stable name for the value's kind. The
	// interpreter's runtime diagnostics do not include it.
	Type() string
	// String returns the value's display form, exactly what `print`
	// writes to stdout.
	String() string
}

// Nil is Lox's nil value. There is exactly one Nil; Nil{} == Nil{} always
// holds, which is what gives Lox's "nil == nil" rule its natural encoding.
type Nil struct{}

func (Nil) Type() string   { return "nil" }
func (Nil) String() string { return "nil" }

// Bool wraps a Go bool as a Lox boolean value.
type Bool bool

func (Bool) Type() string     { return "boolean" }
func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

// Number is Lox's only numeric type: an IEEE-754 double.
type Number float64

func (Number) Type() string { return "number" }

// String renders a Number the way Lox's `print` does: integral values
// print without a trailing ".0", everything else uses Go's shortest
// round-tripping decimal form.
func (n Number) String() string {
	f := float64(n)
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// String is Lox's string type, printed verbatim with no surrounding quotes.
type String string

func (String) Type() string     { return "string" }
func (s String) String() string { return string(s) }

// Truthy implements Lox's truthiness rule: only false and nil are falsey,
// everything else — including 0 and "" — is truthy.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case Nil:
		return false
	case nil:
		return false
	case Bool:
		return bool(v)
	default:
		return true
	}
}

// Equal implements Lox's equality: value equality with no coercion between
// kinds, nil equal only to nil.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Bool:
		bb, ok := b.(Bool)
		return ok && a == bb
	case Number:
		bb, ok := b.(Number)
		return ok && a == bb
	case String:
		bb, ok := b.(String)
		return ok && a == bb
	case Callable:
		bb, ok := b.(Callable)
		return ok && a == bb
	default:
		return false
	}
}

// IsIntegral reports whether n has no fractional part, the precondition
// Lox's bitwise operators impose on both operands.
func IsIntegral(n Number) bool {
	return float64(n) == float64(int64(n))
}

// Quoted is a small helper astprint uses to show a string literal's
// source form rather than its display form.
func Quoted(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	b.WriteString(s)
	b.WriteByte('"')
	return b.String()
}
