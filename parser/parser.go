// Package parser implements a recursive-descent parser with panic-mode
// error recovery for Lox.
//
// The overall shape — a Parser holding a token slice and a cursor, with
// match/check/consume/synchronize primitives — follows the teacher's
// parser/parser.go. The grammar itself, and the precedence ladder climbed
// by the expression methods, is Lox's own (spec.md §4.2), not GoMix's.
package parser

import (
	"github.com/akashmaji946/loxgo/ast"
	"github.com/akashmaji946/loxgo/report"
	"github.com/akashmaji946/loxgo/token"
)

const maxArgs = 255

// parseError unwinds the recursive descent back to the nearest declaration
// boundary so synchronize can run. It carries no payload: the diagnostic
// has already been reported by the time it's raised.
type parseError struct{}

func (parseError) Error() string { return "parse error" }

// Parser converts a token stream into a list of statements.
type Parser struct {
	tokens   []token.Token
	current  int
	reporter *report.Reporter
}

// New creates a Parser over tokens that reports errors through reporter.
func New(tokens []token.Token, reporter *report.Reporter) *Parser {
	return &Parser{tokens: tokens, reporter: reporter}
}

// Parse runs the parser to completion, returning every statement it could
// recover a declaration boundary for. Once reporter.HadError is set the
// caller (CLI/REPL) must not run later phases over the result.
func (p *Parser) Parse() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.atEnd() {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

// --- token cursor primitives ---

func (p *Parser) peek() token.Token     { return p.tokens[p.current] }
func (p *Parser) previous() token.Token { return p.tokens[p.current-1] }
func (p *Parser) atEnd() bool           { return p.peek().Kind == token.EOF }

func (p *Parser) advance() token.Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kind token.Kind) bool {
	if p.atEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(kind token.Kind, message string) (token.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return token.Token{}, p.errorAt(p.peek(), message)
}

func (p *Parser) errorAt(tok token.Token, message string) error {
	p.reporter.Token(tok, message)
	return parseError{}
}

// synchronize discards tokens until it reaches a likely statement
// boundary: just past a semicolon, or just before a statement-starting
// keyword.
func (p *Parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.previous().Kind == token.Semicolon {
			return
		}
		switch p.peek().Kind {
		case token.Class, token.Fun, token.Var, token.For,
			token.If, token.While, token.Print, token.Return:
			return
		}
		p.advance()
	}
}
