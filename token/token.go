package token

import "github.com/akashmaji946/loxgo/value"

// Token is an immutable value type produced by the lexer and consumed by
// every later phase. Literal is populated only for Number and String kinds;
// Line is 1-based and used exclusively for diagnostics.
type Token struct {
	Kind    Kind
	Lexeme  string
	Literal value.Value
	Line    int
}

// New builds a Token with no literal payload, for punctuation, operators,
// keywords, identifiers, and EOF.
func New(kind Kind, lexeme string, line int) Token {
	return Token{Kind: kind, Lexeme: lexeme, Line: line}
}

// NewLiteral builds a Token carrying a literal value (NUMBER or STRING).
func NewLiteral(kind Kind, lexeme string, literal value.Value, line int) Token {
	return Token{Kind: kind, Lexeme: lexeme, Literal: literal, Line: line}
}

// String renders the token the way a debug dump or REPL trace would want
// to see it: kind, lexeme, and the literal value when there is one. The
// line is not included.
func (t Token) String() string {
	if t.Literal != nil {
		return string(t.Kind) + " " + t.Lexeme + " " + t.Literal.String()
	}
	return string(t.Kind) + " " + t.Lexeme
}
