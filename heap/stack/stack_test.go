package stack_test

import (
	"owned_list/heap/stack"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestStackBasics(t *testing.T) {
	assert := assert.New(t)

	s := stack.New()
	_, ok := s.Pop()
	assert.False(ok)

	s.Push(1)
	s.Push(2)
	s.Push(3)

	v, _ := s.Pop()
	assert.Equal(uint64(3), v)
	v, _ = s.Pop()
	assert.Equal(uint64(2), v)

	s.Push(4)
	s.Push(5)
	v, _ = s.Pop()
	assert.Equal(uint64(5), v)
	v, _ = s.Pop()
	assert.Equal(uint64(4), v)

	v, ok = s.Pop()
	assert.True(ok)
	assert.Equal(uint64(1), v)
	_, ok = s.Pop()
	assert.False(ok)
}

func TestStackContains(t *testing.T) {
	assert := assert.New(t)

	var s stack.Stack
	assert.False(s.Contains(1))
	s.Push(1)
	assert.True(s.Contains(1))
	assert.False(s.Contains(2))

	s.Push(3)
	s.Push(1)
	assert.True(s.Contains(1), "re-inserted element")
	assert.True(s.Contains(3))
}

func TestStackDrop(t *testing.T) {
	assert := assert.New(t)

	s := stack.New()
	for i := range uint64(500_000) {
		s.Push(i)
	}
	assert.True(s.Contains(0))
	s.Drop()
	_, ok := s.Pop()
	assert.False(ok)

	s.Push(7)
	v, _ := s.Pop()
	assert.Equal(uint64(7), v)
}

func TestStackLIFO(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		xs := rapid.SliceOf(rapid.Uint64()).Draw(t, "xs")
		s := stack.New()
		for _, x := range xs {
			s.Push(x)
		}
		got := []uint64{}
		for v, ok := s.Pop(); ok; v, ok = s.Pop() {
			got = append(got, v)
		}
		want := append([]uint64{}, xs...)
		slices.Reverse(want)
		assert.Equal(t, want, got)
	})
}
