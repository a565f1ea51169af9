package set

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBits(t *testing.T) {
	var s Bits[int]

	assert.False(t, s.IsSet(3))
	assert.Equal(t, 0, s.Size())

	s.Set(3)
	s.Set(64)
	s.Set(200)

	assert.True(t, s.IsSet(3))
	assert.True(t, s.IsSet(64))
	assert.True(t, s.IsSet(200))
	assert.False(t, s.IsSet(4))
	assert.False(t, s.IsSet(1000))
	assert.Equal(t, 3, s.Size())

	var got []int
	s.Range(func(k int) bool {
		got = append(got, k)
		return true
	})
	assert.Equal(t, []int{3, 64, 200}, got)

	s.Clear(64)
	s.Clear(5000)
	assert.False(t, s.IsSet(64))
	assert.Equal(t, 2, s.Size())

	got = got[:0]
	s.Range(func(k int) bool {
		got = append(got, k)
		return false
	})
	assert.Equal(t, []int{3}, got)
}

func TestMakeBits(t *testing.T) {
	s := MakeBits[int](300)
	assert.GreaterOrEqual(t, len(s.b), 5)

	s.Set(299)
	assert.True(t, s.IsSet(299))

	s = MakeBits[int](0)
	s.Set(0)
	assert.True(t, s.IsSet(0))
}
