package interpreter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/loxgo/lexer"
	"github.com/akashmaji946/loxgo/parser"
	"github.com/akashmaji946/loxgo/report"
	"github.com/akashmaji946/loxgo/resolver"
)

func runSrc(t *testing.T, src string) (string, *report.Reporter) {
	t.Helper()
	r := report.New()
	var out bytes.Buffer
	r.Out = &out

	toks := lexer.New(src, r).ScanTokens()
	if r.HadError {
		return out.String(), r
	}
	stmts := parser.New(toks, r).Parse()
	if r.HadError {
		return out.String(), r
	}
	locals := resolver.New(r).Resolve(stmts)
	if r.HadError {
		return out.String(), r
	}

	in := New(r)
	in.SetStdout(&out)
	in.SetLocals(locals)
	in.Interpret(stmts)
	return out.String(), r
}

func TestInterpret_ArithmeticPrecedence(t *testing.T) {
	out, r := runSrc(t, `print 1 + 2 * 3;`)
	assert.False(t, r.HadRuntimeError)
	assert.Equal(t, "7\n", out)
}

func TestInterpret_StringConcatenation(t *testing.T) {
	out, r := runSrc(t, `print "foo" + "bar";`)
	assert.False(t, r.HadRuntimeError)
	assert.Equal(t, "foobar\n", out)
}

func TestInterpret_MixedPlusOperandsIsARuntimeError(t *testing.T) {
	_, r := runSrc(t, `print 1 + "bar";`)
	assert.True(t, r.HadRuntimeError)
}

func TestInterpret_DivisionByZeroIsARuntimeError(t *testing.T) {
	_, r := runSrc(t, `print 1 / 0;`)
	assert.True(t, r.HadRuntimeError)
}

func TestInterpret_BlockShadowing(t *testing.T) {
	out, r := runSrc(t, `
		var a = "outer";
		{
			var a = "inner";
			print a;
		}
		print a;
	`)
	assert.False(t, r.HadRuntimeError)
	assert.Equal(t, "inner\nouter\n", out)
}

func TestInterpret_ClosureCapturesByReference(t *testing.T) {
	out, r := runSrc(t, `
		fun makeCounter() {
			var count = 0;
			fun increment() {
				count = count + 1;
				print count;
			}
			return increment;
		}
		var counter = makeCounter();
		counter();
		counter();
		counter();
	`)
	assert.False(t, r.HadRuntimeError)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestInterpret_ShortCircuitOr(t *testing.T) {
	out, r := runSrc(t, `
		fun sideEffect() { print "called"; return true; }
		print true or sideEffect();
	`)
	assert.False(t, r.HadRuntimeError)
	assert.Equal(t, "true\n", out)
}

func TestInterpret_ShortCircuitAnd(t *testing.T) {
	out, r := runSrc(t, `
		fun sideEffect() { print "called"; return true; }
		print false and sideEffect();
	`)
	assert.False(t, r.HadRuntimeError)
	assert.Equal(t, "false\n", out)
}

func TestInterpret_ForLoopContinueStillRunsIncrement(t *testing.T) {
	out, r := runSrc(t, `
		for (var i = 0; i < 5; i = i + 1) {
			if (i == 2) continue;
			print i;
		}
	`)
	assert.False(t, r.HadRuntimeError)
	assert.Equal(t, "0\n1\n3\n4\n", out)
}

func TestInterpret_ForLoopBreakStopsIncrement(t *testing.T) {
	out, r := runSrc(t, `
		for (var i = 0; i < 5; i = i + 1) {
			if (i == 2) break;
			print i;
		}
	`)
	assert.False(t, r.HadRuntimeError)
	assert.Equal(t, "0\n1\n", out)
}

func TestInterpret_WhileLoopBreakAndContinue(t *testing.T) {
	out, r := runSrc(t, `
		var i = 0;
		while (i < 5) {
			i = i + 1;
			if (i == 2) continue;
			if (i == 4) break;
			print i;
		}
	`)
	assert.False(t, r.HadRuntimeError)
	assert.Equal(t, "1\n3\n", out)
}

func TestInterpret_RecursiveFunction(t *testing.T) {
	out, r := runSrc(t, `
		fun fib(n) {
			if (n < 2) return n;
			return fib(n - 1) + fib(n - 2);
		}
		print fib(10);
	`)
	assert.False(t, r.HadRuntimeError)
	assert.Equal(t, "55\n", out)
}

func TestInterpret_FunctionArityMismatchIsARuntimeError(t *testing.T) {
	_, r := runSrc(t, `
		fun add(a, b) { return a + b; }
		add(1);
	`)
	assert.True(t, r.HadRuntimeError)
}

func TestInterpret_CallingNonCallableIsARuntimeError(t *testing.T) {
	_, r := runSrc(t, `
		var x = 1;
		x();
	`)
	assert.True(t, r.HadRuntimeError)
}

func TestInterpret_TernaryExpression(t *testing.T) {
	out, r := runSrc(t, `print 1 < 2 ? "yes" : "no";`)
	assert.False(t, r.HadRuntimeError)
	assert.Equal(t, "yes\n", out)
}

func TestInterpret_BitwiseOperatorsRequireIntegralOperands(t *testing.T) {
	_, r := runSrc(t, `print 1.5 & 1;`)
	assert.True(t, r.HadRuntimeError)
}

func TestInterpret_BitwiseOperators(t *testing.T) {
	out, r := runSrc(t, `print 6 & 3; print 6 | 1; print 5 ^ 1; print 1 << 4; print 16 >> 2;`)
	assert.False(t, r.HadRuntimeError)
	assert.Equal(t, "2\n7\n4\n16\n4\n", out)
}

func TestInterpret_ExponentOperator(t *testing.T) {
	out, r := runSrc(t, `print 2 ** 10;`)
	assert.False(t, r.HadRuntimeError)
	assert.Equal(t, "1024\n", out)
}

func TestInterpret_ClockBuiltinReturnsNumber(t *testing.T) {
	out, r := runSrc(t, `print str(clock() >= 0);`)
	assert.False(t, r.HadRuntimeError)
	assert.Equal(t, "true\n", out)
}

func TestInterpret_ReplLikeStatePersistsAcrossRuns(t *testing.T) {
	r := report.New()
	var out bytes.Buffer
	r.Out = &out
	in := New(r)
	in.SetStdout(&out)

	Run(`var a = 1;`, r, in)
	assert.False(t, r.HadError)

	r.Reset()
	Run(`print a + 1;`, r, in)
	assert.False(t, r.HadRuntimeError)
	assert.Equal(t, "2\n", out.String())
}
