package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/loxgo/report"
	"github.com/akashmaji946/loxgo/token"
)

func scan(t *testing.T, src string) ([]token.Token, *report.Reporter) {
	t.Helper()
	r := report.New()
	toks := New(src, r).ScanTokens()
	return toks, r
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestScanTokens_Punctuation(t *testing.T) {
	toks, r := scan(t, `(){},.-+;* !`)
	assert.False(t, r.HadError)
	assert.Equal(t, []token.Kind{
		token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace,
		token.Comma, token.Dot, token.Minus, token.Plus, token.Semicolon,
		token.Star, token.Bang, token.EOF,
	}, kinds(toks))
}

func TestScanTokens_TwoCharOperators(t *testing.T) {
	toks, r := scan(t, `!= == <= >= << >> **`)
	assert.False(t, r.HadError)
	assert.Equal(t, []token.Kind{
		token.BangEqual, token.EqualEqual, token.LessEqual, token.GreaterEqual,
		token.LessLess, token.GreaterGreat, token.StarStar, token.EOF,
	}, kinds(toks))
}

func TestScanTokens_Numbers(t *testing.T) {
	toks, r := scan(t, `123 45.67`)
	assert.False(t, r.HadError)
	assert.Len(t, toks, 3)
	assert.Equal(t, "123", toks[0].Lexeme)
	assert.Equal(t, "45.67", toks[1].Lexeme)
}

func TestScanTokens_Strings(t *testing.T) {
	toks, r := scan(t, `"hello world"`)
	assert.False(t, r.HadError)
	assert.Equal(t, token.String, toks[0].Kind)
	assert.Equal(t, "hello world", toks[0].Literal.String())
}

func TestScanTokens_UnterminatedString(t *testing.T) {
	_, r := scan(t, `"never closes`)
	assert.True(t, r.HadError)
}

func TestScanTokens_Keywords(t *testing.T) {
	toks, r := scan(t, `var fun if else while for print true false nil and or return break continue`)
	assert.False(t, r.HadError)
	assert.Equal(t, []token.Kind{
		token.Var, token.Fun, token.If, token.Else, token.While, token.For,
		token.Print, token.True, token.False, token.Nil, token.And, token.Or,
		token.Return, token.Break, token.Continue, token.EOF,
	}, kinds(toks))
}

func TestScanTokens_LineComment(t *testing.T) {
	toks, r := scan(t, "1 // this is ignored\n2")
	assert.False(t, r.HadError)
	assert.Equal(t, []token.Kind{token.Number, token.Number, token.EOF}, kinds(toks))
}

func TestScanTokens_NestedBlockComment(t *testing.T) {
	toks, r := scan(t, "1 /* outer /* inner */ still outer */ 2")
	assert.False(t, r.HadError)
	assert.Equal(t, []token.Kind{token.Number, token.Number, token.EOF}, kinds(toks))
}

func TestScanTokens_UnterminatedBlockComment(t *testing.T) {
	_, r := scan(t, "/* never closes")
	assert.True(t, r.HadError)
}

func TestScanTokens_LineNumbersAdvanceOnNewline(t *testing.T) {
	toks, r := scan(t, "1\n2\n3")
	assert.False(t, r.HadError)
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 2, toks[1].Line)
	assert.Equal(t, 3, toks[2].Line)
}

func TestScanTokens_UnexpectedCharacter(t *testing.T) {
	_, r := scan(t, `@`)
	assert.True(t, r.HadError)
}
