package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/loxgo/astprint"
	"github.com/akashmaji946/loxgo/lexer"
	"github.com/akashmaji946/loxgo/report"
)

func parse(t *testing.T, src string) (string, *report.Reporter) {
	t.Helper()
	r := report.New()
	toks := lexer.New(src, r).ScanTokens()
	stmts := New(toks, r).Parse()
	return astprint.Print(stmts), r
}

func TestParse_ArithmeticPrecedence(t *testing.T) {
	out, r := parse(t, "1 + 2 * 3;")
	assert.False(t, r.HadError)
	assert.Equal(t, "(+ 1 (* 2 3))\n", out)
}

func TestParse_ExponentRightAssociative(t *testing.T) {
	out, r := parse(t, "2 ** 3 ** 2;")
	assert.False(t, r.HadError)
	assert.Equal(t, "(** 2 (** 3 2))\n", out)
}

func TestParse_TernaryRightAssociative(t *testing.T) {
	out, r := parse(t, "true ? 1 : false ? 2 : 3;")
	assert.False(t, r.HadError)
	assert.Equal(t, "(?: true 1 (?: false 2 3))\n", out)
}

func TestParse_GroupingOverridesPrecedence(t *testing.T) {
	out, r := parse(t, "(1 + 2) * 3;")
	assert.False(t, r.HadError)
	assert.Equal(t, "(* (group (+ 1 2)) 3)\n", out)
}

func TestParse_VarDeclarationWithInitializer(t *testing.T) {
	out, r := parse(t, "var x = 1 + 2;")
	assert.False(t, r.HadError)
	assert.Equal(t, "(var x (+ 1 2))\n", out)
}

func TestParse_AssignmentIsRightAssociative(t *testing.T) {
	out, r := parse(t, "a = b = 3;")
	assert.False(t, r.HadError)
	assert.Equal(t, "(= a (= b 3))\n", out)
}

func TestParse_InvalidAssignmentTargetReportsButRecovers(t *testing.T) {
	out, r := parse(t, "1 + 2 = 3; print 1;")
	assert.True(t, r.HadError)
	assert.Contains(t, out, "(print 1)")
}

func TestParse_ForLoopHeader(t *testing.T) {
	out, r := parse(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	assert.False(t, r.HadError)
	assert.Equal(t, "(for (var i 0) (< i 3) (= i (+ i 1)) (print i))\n", out)
}

func TestParse_FunctionDeclaration(t *testing.T) {
	out, r := parse(t, "fun add(a, b) { return a + b; }")
	assert.False(t, r.HadError)
	assert.Equal(t, "(fun add(a b) ...)\n", out)
}

func TestParse_MissingClosingParenReportsError(t *testing.T) {
	_, r := parse(t, "print (1 + 2;")
	assert.True(t, r.HadError)
}

func TestParse_TooManyArgumentsReportsError(t *testing.T) {
	args := "1"
	for i := 0; i < 255; i++ {
		args += ", 1"
	}
	_, r := parse(t, "f("+args+");")
	assert.True(t, r.HadError)
}

func TestParse_BreakOutsideLoopParsesButResolverRejects(t *testing.T) {
	out, r := parse(t, "break;")
	assert.False(t, r.HadError)
	assert.Equal(t, "(break)\n", out)
}

func TestParse_SynchronizeSkipsToNextStatement(t *testing.T) {
	out, r := parse(t, "var = ; print 1;")
	assert.True(t, r.HadError)
	assert.Contains(t, out, "(print 1)")
}
