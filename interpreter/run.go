package interpreter

import (
	"github.com/akashmaji946/loxgo/lexer"
	"github.com/akashmaji946/loxgo/parser"
	"github.com/akashmaji946/loxgo/report"
	"github.com/akashmaji946/loxgo/resolver"
)

// Run drives the full pipeline — lex, parse, resolve, evaluate — over one
// compilation unit (a whole script, or one REPL line) against an existing
// Interpreter. A phase that records an error prevents later phases from
// running, per spec.md §2's data-flow description.
func Run(source string, reporter *report.Reporter, interp *Interpreter) {
	toks := lexer.New(source, reporter).ScanTokens()
	if reporter.HadError {
		return
	}

	stmts := parser.New(toks, reporter).Parse()
	if reporter.HadError {
		return
	}

	locals := resolver.New(reporter).Resolve(stmts)
	if reporter.HadError {
		return
	}

	interp.SetLocals(locals)
	interp.Interpret(stmts)
}
