// Package resolver implements the static pass between parsing and
// evaluation: for every variable reference it computes the number of
// parent-hops from the evaluator's current frame to the frame that will
// own the name at runtime, and it diagnoses illegal return/break/continue
// and scope-declaration errors.
//
// This component has no teacher analogue (go-mix resolves names
// dynamically via a scope-chain walk at eval time, with no separate static
// pass) and is instead grounded directly on the original Python source's
// Resolver.py: the same scope-stack, same FunctionType/LoopType state
// machine, same declare/define split.
package resolver

import (
	"github.com/akashmaji946/loxgo/ast"
	"github.com/akashmaji946/loxgo/report"
	"github.com/akashmaji946/loxgo/token"
)

type functionType int

const (
	functionNone functionType = iota
	functionFunction
)

type loopType int

const (
	loopNone loopType = iota
	loopFor
	loopWhile
)

// Table maps the identity of a Variable/Assign expression node to its
// resolution distance. Absence means "resolve against globals."
type Table map[ast.Expr]int

// Resolver walks a parsed statement list and builds a Table.
type Resolver struct {
	reporter *report.Reporter
	scopes   []map[string]bool
	table    Table

	currentFunction functionType
	currentLoop     loopType
}

// New creates a Resolver that reports errors through reporter.
func New(reporter *report.Reporter) *Resolver {
	return &Resolver{reporter: reporter, table: Table{}}
}

// Resolve runs the pass over stmts and returns the completed side table.
func (r *Resolver) Resolve(stmts []ast.Stmt) Table {
	r.resolveStmts(stmts)
	return r.table
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) beginScope() { r.scopes = append(r.scopes, map[string]bool{}) }
func (r *Resolver) endScope()   { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.reporter.Token(name, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal walks scopes innermost-outward; at the first scope
// containing the name it records the hop distance in the side table.
func (r *Resolver) resolveLocal(expr ast.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.table[expr] = len(r.scopes) - 1 - i
			return
		}
	}
	// Not found in any scope: resolves against globals at runtime.
}

func (r *Resolver) resolveFunction(fn *ast.FunctionStmt, kind functionType) {
	enclosing := r.currentFunction
	enclosingLoop := r.currentLoop
	r.currentFunction = kind
	r.currentLoop = loopNone
	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()
	r.currentFunction = enclosing
	r.currentLoop = enclosingLoop
}
