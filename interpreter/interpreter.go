// Package interpreter walks the AST produced by the parser, driven by the
// resolver's side table, and implements arithmetic, comparisons, logical
// short-circuit, calls, and control flow exactly as spec.md §4.5 describes.
package interpreter

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/loxgo/ast"
	"github.com/akashmaji946/loxgo/callable"
	"github.com/akashmaji946/loxgo/environment"
	"github.com/akashmaji946/loxgo/report"
	"github.com/akashmaji946/loxgo/resolver"
	"github.com/akashmaji946/loxgo/token"
	"github.com/akashmaji946/loxgo/value"
)

// Interpreter holds the evaluator's running state: the fixed global frame,
// the current frame (which changes as blocks and calls are entered and
// left), the resolver's side table, and where `print` writes.
type Interpreter struct {
	Globals     *environment.Environment
	environment *environment.Environment
	locals      resolver.Table
	reporter    *report.Reporter
	stdout      io.Writer
}

// New creates an Interpreter with clock and str registered as globals.
func New(reporter *report.Reporter) *Interpreter {
	globals := environment.New(nil)
	globals.Define("clock", callable.Clock{})
	globals.Define("str", callable.Str{})
	return &Interpreter{
		Globals:     globals,
		environment: globals,
		locals:      resolver.Table{},
		reporter:    reporter,
		stdout:      os.Stdout,
	}
}

// SetStdout redirects where `print` writes; tests use this to capture
// output into a buffer.
func (in *Interpreter) SetStdout(w io.Writer) { in.stdout = w }

// SetLocals installs the resolver's side table for a freshly resolved
// program. The REPL calls this once per line since each line is resolved
// independently but shares the same Interpreter (and so the same Globals)
// across the session.
func (in *Interpreter) SetLocals(locals resolver.Table) { in.locals = locals }

// Interpret runs a list of statements to completion or until a runtime
// error is raised. A runtime error is reported and interpretation of the
// remaining top-level statements stops, matching spec.md §7's "the current
// top-level statement (or script) is aborted" rule.
func (in *Interpreter) Interpret(stmts []ast.Stmt) {
	for _, stmt := range stmts {
		if err := in.execute(stmt); err != nil {
			in.reportError(err)
			return
		}
	}
}

func (in *Interpreter) reportError(err error) {
	switch e := err.(type) {
	case *runtimeError:
		in.reporter.Runtime(token.Token{Line: e.line}, e.message)
	default:
		// breakSignal/continueSignal/returnSignal reaching here means one
		// escaped its static guard somehow (the resolver should have
		// caught it already); surface it as a generic runtime error.
		in.reporter.Runtime(token.Token{Line: 0}, err.Error())
	}
}

func (in *Interpreter) runtimeErr(tok token.Token, format string, args ...interface{}) error {
	return &runtimeError{line: tok.Line, message: fmt.Sprintf(format, args...)}
}

// toDisplayString is exactly the conversion `print` and the `str` builtin
// use: nil, booleans, and numbers have a fixed display form; strings print
// verbatim.
func toDisplayString(v value.Value) string {
	if v == nil {
		return "nil"
	}
	return v.String()
}
