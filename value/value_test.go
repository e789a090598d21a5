package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberString_IntegralHasNoTrailingZero(t *testing.T) {
	assert.Equal(t, "3", Number(3).String())
	assert.Equal(t, "-12", Number(-12).String())
}

func TestNumberString_FractionalKeepsDecimal(t *testing.T) {
	assert.Equal(t, "3.5", Number(3.5).String())
}

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(Nil{}))
	assert.False(t, Truthy(Bool(false)))
	assert.True(t, Truthy(Bool(true)))
	assert.True(t, Truthy(Number(0)))
	assert.True(t, Truthy(String("")))
}

func TestEqual_NoCoercionBetweenKinds(t *testing.T) {
	assert.False(t, Equal(Number(0), String("0")))
	assert.False(t, Equal(Nil{}, Bool(false)))
	assert.True(t, Equal(Nil{}, Nil{}))
	assert.True(t, Equal(Number(1), Number(1)))
	assert.True(t, Equal(String("a"), String("a")))
}

func TestIsIntegral(t *testing.T) {
	assert.True(t, IsIntegral(Number(4)))
	assert.False(t, IsIntegral(Number(4.5)))
}

func TestQuoted(t *testing.T) {
	assert.Equal(t, `"hello"`, Quoted("hello"))
}
