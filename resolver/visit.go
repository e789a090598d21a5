package resolver

import "github.com/akashmaji946/loxgo/ast"

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStmts(s.Stmts)
		r.endScope()

	case *ast.VarStmt:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)

	case *ast.FunctionStmt:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, functionFunction)

	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expr)

	case *ast.PrintStmt:
		r.resolveExpr(s.Expr)

	case *ast.IfStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}

	case *ast.WhileStmt:
		enclosing := r.currentLoop
		r.currentLoop = loopWhile
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Body)
		r.currentLoop = enclosing

	case *ast.ForStmt:
		enclosing := r.currentLoop
		r.currentLoop = loopFor
		// The for-loop's own init/body form a scope so that a `var` in the
		// initializer is visible to cond/incr/body but not beyond the loop.
		r.beginScope()
		if s.Init != nil {
			r.resolveStmt(s.Init)
		}
		if s.Cond != nil {
			r.resolveExpr(s.Cond)
		}
		if s.Incr != nil {
			r.resolveExpr(s.Incr)
		}
		r.resolveStmt(s.Body)
		r.endScope()
		r.currentLoop = enclosing

	case *ast.ReturnStmt:
		if r.currentFunction == functionNone {
			r.reporter.Token(s.Keyword, "Can't return from top-level code.")
		}
		if s.Value != nil {
			r.resolveExpr(s.Value)
		}

	case *ast.BreakStmt:
		if r.currentLoop == loopNone {
			r.reporter.Token(s.Keyword, "Can't use 'break' outside of a loop.")
		}

	case *ast.ContinueStmt:
		if r.currentLoop == loopNone {
			r.reporter.Token(s.Keyword, "Can't use 'continue' outside of a loop.")
		}

	default:
		panic("resolver: unhandled statement node")
	}
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.VariableExpr:
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][e.Tok.Lexeme]; ok && !defined {
				r.reporter.Token(e.Tok, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e, e.Tok)

	case *ast.AssignExpr:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Tok)

	case *ast.BinaryExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.LogicalExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.UnaryExpr:
		r.resolveExpr(e.Right)

	case *ast.TernaryExpr:
		r.resolveExpr(e.Cond)
		r.resolveExpr(e.Then)
		r.resolveExpr(e.Else)

	case *ast.GroupingExpr:
		r.resolveExpr(e.Inner)

	case *ast.CallExpr:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Args {
			r.resolveExpr(arg)
		}

	case *ast.LiteralExpr:
		// No sub-expressions, no name resolved.

	default:
		panic("resolver: unhandled expression node")
	}
}
