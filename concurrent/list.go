// Package concurrent wraps the owned list with the external locking it
// needs to be shared between goroutines.
package concurrent

import (
	"sync"

	"owned_list/heap/linked_list"
)

// List is a linked_list.List guarded by a mutex. Borrows of the inner list
// never outlive a method call, so callers cannot trip its borrow checks.
type List[T any] struct {
	mu   sync.Mutex
	list linked_list.List[T]
}

func NewList[T any]() *List[T] {
	return &List[T]{}
}

func (l *List[T]) Push(v T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.list.Push(v)
}

func (l *List[T]) Pop() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.list.Pop()
}

func (l *List[T]) Peek() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.list.Peek()
}

func (l *List[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.list.Len()
}

// Update applies f to the head element while holding the lock. f must not
// call back into l.
func (l *List[T]) Update(f func(elem *T)) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.list.UpdateHead(f)
}

// Snapshot copies the elements, head first.
func (l *List[T]) Snapshot() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]T, 0, l.list.Len())
	for v := range l.list.All() {
		out = append(out, v)
	}
	return out
}

// Drain removes every element and returns them head first.
func (l *List[T]) Drain() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]T, 0, l.list.Len())
	for v := range l.list.Drain() {
		out = append(out, v)
	}
	return out
}
