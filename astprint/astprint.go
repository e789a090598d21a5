// Package astprint implements the debug AST-dumping printer spec.md's
// overview treats as an external collaborator (fed source, observed
// output) rather than a pipeline stage. It renders a parsed statement list
// as parenthesized Lisp-like text, grounded on the original Python
// source's AstPrinter.py.
package astprint

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/loxgo/ast"
	"github.com/akashmaji946/loxgo/value"
)

// Print renders stmts as one parenthesized form per line.
func Print(stmts []ast.Stmt) string {
	var b strings.Builder
	for _, s := range stmts {
		b.WriteString(stmt(s))
		b.WriteByte('\n')
	}
	return b.String()
}

func stmt(s ast.Stmt) string {
	switch s := s.(type) {
	case *ast.ExpressionStmt:
		return expr(s.Expr)
	case *ast.PrintStmt:
		return parenthesize("print", s.Expr)
	case *ast.VarStmt:
		if s.Initializer == nil {
			return fmt.Sprintf("(var %s)", s.Name.Lexeme)
		}
		return fmt.Sprintf("(var %s %s)", s.Name.Lexeme, expr(s.Initializer))
	case *ast.BlockStmt:
		var b strings.Builder
		b.WriteString("(block")
		for _, inner := range s.Stmts {
			b.WriteByte(' ')
			b.WriteString(stmt(inner))
		}
		b.WriteByte(')')
		return b.String()
	case *ast.IfStmt:
		if s.Else == nil {
			return fmt.Sprintf("(if %s %s)", expr(s.Cond), stmt(s.Then))
		}
		return fmt.Sprintf("(if %s %s %s)", expr(s.Cond), stmt(s.Then), stmt(s.Else))
	case *ast.WhileStmt:
		return fmt.Sprintf("(while %s %s)", expr(s.Cond), stmt(s.Body))
	case *ast.ForStmt:
		return fmt.Sprintf("(for %s %s)", forHeader(s), stmt(s.Body))
	case *ast.FunctionStmt:
		return fmt.Sprintf("(fun %s(%s) ...)", s.Name.Lexeme, paramList(s))
	case *ast.ReturnStmt:
		if s.Value == nil {
			return "(return)"
		}
		return parenthesize("return", s.Value)
	case *ast.BreakStmt:
		return "(break)"
	case *ast.ContinueStmt:
		return "(continue)"
	default:
		return "(?stmt)"
	}
}

func forHeader(s *ast.ForStmt) string {
	init := "nil"
	if s.Init != nil {
		init = stmt(s.Init)
	}
	cond := "true"
	if s.Cond != nil {
		cond = expr(s.Cond)
	}
	incr := "nil"
	if s.Incr != nil {
		incr = expr(s.Incr)
	}
	return fmt.Sprintf("%s %s %s", init, cond, incr)
}

func paramList(s *ast.FunctionStmt) string {
	names := make([]string, len(s.Params))
	for i, p := range s.Params {
		names[i] = p.Lexeme
	}
	return strings.Join(names, " ")
}

func expr(e ast.Expr) string {
	switch e := e.(type) {
	case *ast.LiteralExpr:
		return literal(e.Value)
	case *ast.VariableExpr:
		return e.Tok.Lexeme
	case *ast.AssignExpr:
		return fmt.Sprintf("(= %s %s)", e.Tok.Lexeme, expr(e.Value))
	case *ast.UnaryExpr:
		return parenthesize(e.Op.Lexeme, e.Right)
	case *ast.BinaryExpr:
		return parenthesize(e.Op.Lexeme, e.Left, e.Right)
	case *ast.LogicalExpr:
		return parenthesize(e.Op.Lexeme, e.Left, e.Right)
	case *ast.GroupingExpr:
		return parenthesize("group", e.Inner)
	case *ast.TernaryExpr:
		return fmt.Sprintf("(?: %s %s %s)", expr(e.Cond), expr(e.Then), expr(e.Else))
	case *ast.CallExpr:
		var b strings.Builder
		b.WriteString("(call ")
		b.WriteString(expr(e.Callee))
		for _, a := range e.Args {
			b.WriteByte(' ')
			b.WriteString(expr(a))
		}
		b.WriteByte(')')
		return b.String()
	default:
		return "(?expr)"
	}
}

func literal(v value.Value) string {
	if v == nil {
		return "nil"
	}
	if s, ok := v.(value.String); ok {
		return value.Quoted(string(s))
	}
	return v.String()
}

func parenthesize(name string, exprs ...ast.Expr) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		b.WriteString(expr(e))
	}
	b.WriteByte(')')
	return b.String()
}
