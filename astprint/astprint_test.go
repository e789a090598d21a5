package astprint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/loxgo/lexer"
	"github.com/akashmaji946/loxgo/parser"
	"github.com/akashmaji946/loxgo/report"
)

func printSrc(t *testing.T, src string) string {
	t.Helper()
	r := report.New()
	toks := lexer.New(src, r).ScanTokens()
	stmts := parser.New(toks, r).Parse()
	assert.False(t, r.HadError)
	return Print(stmts)
}

func TestPrint_Literal(t *testing.T) {
	assert.Equal(t, "1\n", printSrc(t, "1;"))
}

func TestPrint_StringLiteralIsQuoted(t *testing.T) {
	assert.Equal(t, "\"hi\"\n", printSrc(t, `"hi";`))
}

func TestPrint_NestedBinary(t *testing.T) {
	assert.Equal(t, "(+ 1 (* 2 3))\n", printSrc(t, "1 + 2 * 3;"))
}

func TestPrint_IfWithElse(t *testing.T) {
	assert.Equal(t, "(if true (print 1) (print 2))\n", printSrc(t, "if (true) print 1; else print 2;"))
}

func TestPrint_Block(t *testing.T) {
	assert.Equal(t, "(block (print 1) (print 2))\n", printSrc(t, "{ print 1; print 2; }"))
}

func TestPrint_Call(t *testing.T) {
	assert.Equal(t, "(call f 1 2)\n", printSrc(t, "f(1, 2);"))
}
