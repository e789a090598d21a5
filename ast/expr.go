// Package ast defines Lox's expression and statement nodes as a closed set
// of structs behind marker interfaces. There is no visitor: the resolver
// and interpreter dispatch on node type with a type switch, per the
// language's own design note that a tagged-sum-type target needs no
// visitor abstraction.
package ast

import (
	"github.com/akashmaji946/loxgo/token"
	"github.com/akashmaji946/loxgo/value"
)

// Expr is the marker interface every expression node implements.
type Expr interface {
	exprNode()
}

// LiteralExpr holds a constant value parsed directly from source: a
// number, string, boolean, or nil. Lox's original String-literal node is
// folded into this one, per the spec's own resolution of that ambiguity.
type LiteralExpr struct {
	Value value.Value
}

// VariableExpr reads a variable by name. Tok is the identifier token,
// carried for line-accurate runtime errors and for resolver side-table
// keying (the resolver keys on *VariableExpr identity, not on name).
type VariableExpr struct {
	Tok token.Token
}

// AssignExpr assigns Value to the variable named by Tok and evaluates to
// the assigned value.
type AssignExpr struct {
	Tok   token.Token
	Value Expr
}

// UnaryExpr applies a prefix operator (`!` or `-`) to Right.
type UnaryExpr struct {
	Op    token.Token
	Right Expr
}

// BinaryExpr applies an infix operator to Left and Right. Covers
// arithmetic, comparison, equality, and bitwise operators.
type BinaryExpr struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

// LogicalExpr is `and`/`or`, kept distinct from BinaryExpr because it
// short-circuits: Right is evaluated only when Left's truthiness doesn't
// already decide the result.
type LogicalExpr struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

// GroupingExpr is a parenthesized expression, kept as its own node (rather
// than collapsed away at parse time) so diagnostics and the debug printer
// can show the source grouping.
type GroupingExpr struct {
	Inner Expr
}

// CallExpr invokes Callee with Args. ClosingParen is the `)` token, used to
// report arity and non-callable errors at an accurate line.
type CallExpr struct {
	Callee       Expr
	ClosingParen token.Token
	Args         []Expr
}

// TernaryExpr is `cond ? then : else`, evaluating exactly one of Then/Else.
type TernaryExpr struct {
	Cond Expr
	Then Expr
	Else Expr
}

func (*LiteralExpr) exprNode()  {}
func (*VariableExpr) exprNode() {}
func (*AssignExpr) exprNode()   {}
func (*UnaryExpr) exprNode()    {}
func (*BinaryExpr) exprNode()   {}
func (*LogicalExpr) exprNode()  {}
func (*GroupingExpr) exprNode() {}
func (*CallExpr) exprNode()     {}
func (*TernaryExpr) exprNode()  {}
