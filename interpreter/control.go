package interpreter

import "github.com/akashmaji946/loxgo/value"

// breakSignal, continueSignal, and returnSignal implement Go's error
// interface purely to ride the existing error-return plumbing of
// evaluate/execute back up to the nearest loop or function-call frame that
// can catch them. This is the same "signal as a value threaded through
// statement execution" idiom the teacher uses in eval/eval_controls.go,
// and the same shape the Python original gives its ControlException
// classes.
type breakSignal struct{}

func (breakSignal) Error() string { return "break outside a loop" }

type continueSignal struct{}

func (continueSignal) Error() string { return "continue outside a loop" }

type returnSignal struct {
	value value.Value
}

func (returnSignal) Error() string { return "return outside a function" }

// runtimeError is a located runtime diagnostic, carrying the line of the
// token it should be reported at.
type runtimeError struct {
	line    int
	message string
}

func (e *runtimeError) Error() string { return e.message }
