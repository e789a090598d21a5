package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/loxgo/token"
	"github.com/akashmaji946/loxgo/value"
)

func nameTok(lexeme string) token.Token {
	return token.New(token.Identifier, lexeme, 1)
}

func TestDefineAndGet(t *testing.T) {
	env := New(nil)
	env.Define("a", value.Number(1))

	v, err := env.Get(nameTok("a"))
	assert.NoError(t, err)
	assert.Equal(t, value.Number(1), v)
}

func TestGetUndefinedVariableIsAnError(t *testing.T) {
	env := New(nil)
	_, err := env.Get(nameTok("missing"))
	assert.Error(t, err)
}

func TestGetAscendsToParent(t *testing.T) {
	parent := New(nil)
	parent.Define("a", value.Number(1))
	child := New(parent)

	v, err := child.Get(nameTok("a"))
	assert.NoError(t, err)
	assert.Equal(t, value.Number(1), v)
}

func TestDefineShadowsParentWithoutMutatingIt(t *testing.T) {
	parent := New(nil)
	parent.Define("a", value.Number(1))
	child := New(parent)
	child.Define("a", value.Number(2))

	childVal, _ := child.Get(nameTok("a"))
	parentVal, _ := parent.Get(nameTok("a"))
	assert.Equal(t, value.Number(2), childVal)
	assert.Equal(t, value.Number(1), parentVal)
}

func TestAssignRebindsInOwningFrame(t *testing.T) {
	parent := New(nil)
	parent.Define("a", value.Number(1))
	child := New(parent)

	err := child.Assign(nameTok("a"), value.Number(9))
	assert.NoError(t, err)

	v, _ := parent.Get(nameTok("a"))
	assert.Equal(t, value.Number(9), v)
}

func TestAssignToUndeclaredNameIsAnError(t *testing.T) {
	env := New(nil)
	err := env.Assign(nameTok("missing"), value.Number(1))
	assert.Error(t, err)
}

func TestGetAtAndAssignAtUseDistanceDirectly(t *testing.T) {
	grandparent := New(nil)
	parent := New(grandparent)
	child := New(parent)
	grandparent.Define("a", value.Number(1))

	assert.Equal(t, value.Number(1), child.GetAt(2, "a"))

	child.AssignAt(2, "a", value.Number(5))
	v, _ := grandparent.Get(nameTok("a"))
	assert.Equal(t, value.Number(5), v)
}
