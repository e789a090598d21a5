package ast

import "github.com/akashmaji946/loxgo/token"

// Stmt is the marker interface every statement node implements.
type Stmt interface {
	stmtNode()
}

// ExpressionStmt evaluates Expr and discards the result.
type ExpressionStmt struct {
	Expr Expr
}

// PrintStmt evaluates Expr and writes its display form to stdout.
type PrintStmt struct {
	Expr Expr
}

// VarStmt declares a variable, optionally with an initializer. A nil
// Initializer defaults the variable to Lox nil.
type VarStmt struct {
	Name        token.Token
	Initializer Expr
}

// BlockStmt introduces a new lexical scope around Stmts.
type BlockStmt struct {
	Stmts []Stmt
}

// IfStmt executes Then when Cond is truthy, otherwise Else (which may be
// nil for a bare `if` with no `else`).
type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt
}

// WhileStmt repeats Body while Cond is truthy.
type WhileStmt struct {
	Cond Expr
	Body Stmt
}

// ForStmt is a dedicated loop node (rather than a desugared While) so that
// `continue` can run Incr before re-testing Cond. Init, Cond, and Incr may
// each be nil (an absent Cond defaults to true at evaluation time).
type ForStmt struct {
	Init Stmt
	Cond Expr
	Incr Expr
	Body Stmt
}

// FunctionStmt declares a named function. Params holds the declared
// parameter identifier tokens; Body is the function's block.
type FunctionStmt struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

// ReturnStmt raises a return signal carrying Value (nil means "no
// expression", which evaluates to Lox nil).
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr
}

// BreakStmt raises a break signal terminating the innermost loop.
type BreakStmt struct {
	Keyword token.Token
}

// ContinueStmt raises a continue signal resuming the innermost loop.
type ContinueStmt struct {
	Keyword token.Token
}

func (*ExpressionStmt) stmtNode() {}
func (*PrintStmt) stmtNode()      {}
func (*VarStmt) stmtNode()        {}
func (*BlockStmt) stmtNode()      {}
func (*IfStmt) stmtNode()         {}
func (*WhileStmt) stmtNode()      {}
func (*ForStmt) stmtNode()        {}
func (*FunctionStmt) stmtNode()   {}
func (*ReturnStmt) stmtNode()     {}
func (*BreakStmt) stmtNode()      {}
func (*ContinueStmt) stmtNode()   {}
