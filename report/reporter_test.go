package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/loxgo/token"
)

func TestLine_SetsHadErrorAndFormatsMessage(t *testing.T) {
	var buf bytes.Buffer
	r := New()
	r.Out = &buf

	r.Line(3, "Unexpected character.")

	assert.True(t, r.HadError)
	assert.Contains(t, buf.String(), "[line 3] Error: Unexpected character.")
}

func TestToken_EOFReportsAtEnd(t *testing.T) {
	var buf bytes.Buffer
	r := New()
	r.Out = &buf

	r.Token(token.New(token.EOF, "", 1), "Expect expression.")

	assert.True(t, r.HadError)
	assert.Contains(t, buf.String(), "at end")
}

func TestToken_NonEOFReportsLexeme(t *testing.T) {
	var buf bytes.Buffer
	r := New()
	r.Out = &buf

	r.Token(token.New(token.Identifier, "foo", 2), "Expect ';'.")

	assert.Contains(t, buf.String(), "at 'foo'")
}

func TestRuntime_SetsHadRuntimeErrorWithNoWhereClause(t *testing.T) {
	var buf bytes.Buffer
	r := New()
	r.Out = &buf

	r.Runtime(token.New(token.Identifier, "x", 5), "Undefined variable 'x'.")

	assert.True(t, r.HadRuntimeError)
	assert.Contains(t, buf.String(), "[line 5] Undefined variable 'x'.")
	assert.NotContains(t, buf.String(), "Error")
}

func TestReset_ClearsBothFlags(t *testing.T) {
	r := New()
	r.HadError = true
	r.HadRuntimeError = true

	r.Reset()

	assert.False(t, r.HadError)
	assert.False(t, r.HadRuntimeError)
}
