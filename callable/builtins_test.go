package callable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/loxgo/value"
)

func TestClock_ArityIsZero(t *testing.T) {
	assert.Equal(t, 0, Clock{}.Arity())
}

func TestClock_ReturnsNumber(t *testing.T) {
	v, err := Clock{}.Call(nil, nil)
	assert.NoError(t, err)
	_, ok := v.(value.Number)
	assert.True(t, ok)
}

func TestStr_ConvertsNumberToDisplayString(t *testing.T) {
	v, err := Str{}.Call(nil, []value.Value{value.Number(42)})
	assert.NoError(t, err)
	assert.Equal(t, value.String("42"), v)
}

func TestStr_ArityIsOne(t *testing.T) {
	assert.Equal(t, 1, Str{}.Arity())
}
