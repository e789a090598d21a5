// Package lexer turns Lox source text into a flat token stream.
//
// The scanner tracks start/current/line exactly the way the teacher's
// character-at-a-time scanner does; differences from the teacher are the
// token vocabulary (Lox's, not GoMix's) and two Lox-specific rules: block
// comments nest, and string literals have no escape sequences.
package lexer

import (
	"strconv"
	"strings"

	"github.com/akashmaji946/loxgo/report"
	"github.com/akashmaji946/loxgo/token"
	"github.com/akashmaji946/loxgo/value"
)

// Lexer scans a single source string into tokens. It is not reusable once
// exhausted; construct a new one per compilation unit (script or REPL line).
type Lexer struct {
	src      string
	start    int
	current  int
	line     int
	reporter *report.Reporter
}

// New creates a Lexer over src that reports errors through reporter.
func New(src string, reporter *report.Reporter) *Lexer {
	return &Lexer{src: src, line: 1, reporter: reporter}
}

// ScanTokens runs the scanner to completion and returns every token found,
// terminated by a single EOF token. Lexing never stops early on error: bad
// characters and unterminated literals are reported and scanning continues,
// so a user sees every lex error in one pass.
func (l *Lexer) ScanTokens() []token.Token {
	var tokens []token.Token
	for !l.atEnd() {
		l.start = l.current
		if tok, ok := l.scanToken(); ok {
			tokens = append(tokens, tok)
		}
	}
	tokens = append(tokens, token.New(token.EOF, "", l.line))
	return tokens
}

func (l *Lexer) atEnd() bool {
	return l.current >= len(l.src)
}

func (l *Lexer) advance() byte {
	c := l.src[l.current]
	l.current++
	return c
}

func (l *Lexer) match(expected byte) bool {
	if l.atEnd() || l.src[l.current] != expected {
		return false
	}
	l.current++
	return true
}

func (l *Lexer) peek() byte {
	if l.atEnd() {
		return 0
	}
	return l.src[l.current]
}

func (l *Lexer) peekNext() byte {
	if l.current+1 >= len(l.src) {
		return 0
	}
	return l.src[l.current+1]
}

func (l *Lexer) lexeme() string {
	return l.src[l.start:l.current]
}

func (l *Lexer) make(kind token.Kind) token.Token {
	return token.New(kind, l.lexeme(), l.line)
}

// scanToken produces the next token, or (zero, false) when the character
// consumed was whitespace, a comment, or otherwise produced no token.
func (l *Lexer) scanToken() (token.Token, bool) {
	c := l.advance()
	switch c {
	case '(':
		return l.make(token.LeftParen), true
	case ')':
		return l.make(token.RightParen), true
	case '{':
		return l.make(token.LeftBrace), true
	case '}':
		return l.make(token.RightBrace), true
	case ',':
		return l.make(token.Comma), true
	case '.':
		return l.make(token.Dot), true
	case '-':
		return l.make(token.Minus), true
	case '+':
		return l.make(token.Plus), true
	case ';':
		return l.make(token.Semicolon), true
	case '&':
		return l.make(token.Amp), true
	case '|':
		return l.make(token.Pipe), true
	case '^':
		return l.make(token.Caret), true
	case '?':
		return l.make(token.Question), true
	case ':':
		return l.make(token.Colon), true
	case '*':
		if l.match('*') {
			return l.make(token.StarStar), true
		}
		return l.make(token.Star), true
	case '!':
		if l.match('=') {
			return l.make(token.BangEqual), true
		}
		return l.make(token.Bang), true
	case '=':
		if l.match('=') {
			return l.make(token.EqualEqual), true
		}
		return l.make(token.Equal), true
	case '<':
		if l.match('=') {
			return l.make(token.LessEqual), true
		}
		if l.match('<') {
			return l.make(token.LessLess), true
		}
		return l.make(token.Less), true
	case '>':
		if l.match('=') {
			return l.make(token.GreaterEqual), true
		}
		if l.match('>') {
			return l.make(token.GreaterGreat), true
		}
		return l.make(token.Greater), true
	case '/':
		if l.match('/') {
			l.lineComment()
			return token.Token{}, false
		}
		if l.match('*') {
			l.blockComment()
			return token.Token{}, false
		}
		return l.make(token.Slash), true
	case ' ', '\r', '\t':
		return token.Token{}, false
	case '\n':
		l.line++
		return token.Token{}, false
	case '"':
		return l.string()
	default:
		switch {
		case isDigit(c):
			return l.number(), true
		case isAlpha(c):
			return l.identifier(), true
		default:
			l.reporter.Line(l.line, "Unexpected character: '"+string(c)+"'")
			return token.Token{}, false
		}
	}
}

func (l *Lexer) lineComment() {
	for l.peek() != '\n' && !l.atEnd() {
		l.advance()
	}
}

// blockComment consumes a /* ... */ comment, tracking nesting depth so that
// "/* outer /* inner */ still outer */" closes only at the matching "*/".
func (l *Lexer) blockComment() {
	depth := 1
	for depth > 0 {
		if l.atEnd() {
			l.reporter.Line(l.line, "Unterminated block comment")
			return
		}
		c := l.advance()
		switch {
		case c == '\n':
			l.line++
		case c == '/' && l.peek() == '*':
			l.advance()
			depth++
		case c == '*' && l.peek() == '/':
			l.advance()
			depth--
		}
	}
}

func (l *Lexer) string() (token.Token, bool) {
	var sb strings.Builder
	for l.peek() != '"' && !l.atEnd() {
		if l.peek() == '\n' {
			l.line++
		}
		sb.WriteByte(l.advance())
	}
	if l.atEnd() {
		l.reporter.Line(l.line, "Unterminated string")
		return token.Token{}, false
	}
	l.advance() // closing quote
	return token.NewLiteral(token.String, l.lexeme(), value.String(sb.String()), l.line), true
}

func (l *Lexer) number() token.Token {
	for isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	n, _ := strconv.ParseFloat(l.lexeme(), 64)
	return token.NewLiteral(token.Number, l.lexeme(), value.Number(n), l.line)
}

func (l *Lexer) identifier() token.Token {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}
	text := l.lexeme()
	if kind, ok := token.Keywords[text]; ok {
		return l.make(kind)
	}
	return l.make(token.Identifier)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
