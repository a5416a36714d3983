package ring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPushAndValues(t *testing.T) {
	b := New[int](3)
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 3, b.Cap())

	b.Push(1)
	b.Push(2)
	assert.Equal(t, []int{1, 2}, b.Values())

	b.Push(3)
	b.Push(4) // evicts 1
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, []int{2, 3, 4}, b.Values())
}

func TestAtAndSet(t *testing.T) {
	b := New[string](2)
	b.Push("a")
	b.Push("b")
	b.Push("c") // evicts "a"

	assert.Equal(t, "b", b.At(0))
	assert.Equal(t, "c", b.At(1))
	assert.Panics(t, func() { b.At(2) })
	assert.Panics(t, func() { b.At(-1) })

	b.Set(0, "z")
	assert.Equal(t, []string{"z", "c"}, b.Values())
	assert.Panics(t, func() { b.Set(5, "x") })
}

func TestLast(t *testing.T) {
	b := New[int](4)
	for i := 1; i <= 6; i++ {
		b.Push(i)
	}
	assert.Equal(t, []int{5, 6}, b.Last(2))
	assert.Equal(t, []int{3, 4, 5, 6}, b.Last(10))
	assert.Empty(t, b.Last(0))
}

func TestNewPanicsOnBadCapacity(t *testing.T) {
	assert.Panics(t, func() { New[int](0) })
	assert.Panics(t, func() { New[int](-1) })
}
