package heap

import (
	"owned_list/heap/linked_list"

	"github.com/goose-lang/std"
)

// Queue is a FIFO queue built from two owned lists. Push goes onto back and
// Pop takes from front, which is refilled from back when it runs out.
type Queue[T any] struct {
	front linked_list.List[T]
	back  linked_list.List[T]
}

func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

func (q *Queue[T]) Len() int {
	return q.front.Len() + q.back.Len()
}

func (q *Queue[T]) Push(v T) {
	q.back.Push(v)
}

// emptyBack moves every element of back onto front. The newest element
// ends up deepest, so once front was empty it pops oldest first.
func (q *Queue[T]) emptyBack() {
	n := q.Len()
	for v := range q.back.Drain() {
		q.front.Push(v)
	}
	std.Assert(q.back.IsEmpty())
	std.Assert(q.front.Len() == n)
}

func (q *Queue[T]) Pop() (T, bool) {
	if q.front.IsEmpty() {
		q.emptyBack()
	}
	return q.front.Pop()
}

func (q *Queue[T]) Peek() (T, bool) {
	if q.front.IsEmpty() {
		q.emptyBack()
	}
	return q.front.Peek()
}

// Drop releases both lists.
func (q *Queue[T]) Drop() {
	q.front.Drop()
	q.back.Drop()
}
