// Package linked_list is a singly-linked list where every node has exactly
// one owner: the list head or the node before it.
//
// Read-only views (Peek, Iter, All) may coexist with each other; an
// exclusive view (PeekMut, IterMut, AllMut) excludes every other view, and
// structural changes (Push, Pop, Drop, IntoIter) require that no view is
// live. Violations panic with a *BorrowError. The list is not safe for use
// from multiple goroutines.
package linked_list

import "github.com/goose-lang/std"

type node[T any] struct {
	elem T
	next link[T]
}

// link owns the node it points to, if any.
type link[T any] struct {
	node *node[T]
}

// take moves ownership out of l and leaves l empty.
func (l *link[T]) take() link[T] {
	out := *l
	l.node = nil
	return out
}

func (l *link[T]) isEmpty() bool {
	return l.node == nil
}

// List is a LIFO chain of nodes. The zero value is an empty list.
type List[T any] struct {
	head   link[T]
	len    int
	borrow borrowState
}

func New[T any]() *List[T] {
	return &List[T]{}
}

func (l *List[T]) Len() int {
	return l.len
}

func (l *List[T]) IsEmpty() bool {
	return l.head.isEmpty()
}

// Push makes elem the new head.
func (l *List[T]) Push(elem T) {
	l.borrow.checkWrite("Push")
	n := &node[T]{elem: elem, next: l.head.take()}
	l.head = link[T]{node: n}
	l.len++
}

// Pop removes the head and returns its element. It returns false if the
// list is empty.
func (l *List[T]) Pop() (T, bool) {
	l.borrow.checkWrite("Pop")
	return l.pop()
}

func (l *List[T]) pop() (T, bool) {
	head := l.head.take()
	if head.isEmpty() {
		std.Assert(l.len == 0)
		var zero T
		return zero, false
	}
	l.head = head.node.next.take()
	l.len--
	return head.node.elem, true
}

// Peek returns a copy of the head element.
func (l *List[T]) Peek() (T, bool) {
	l.borrow.checkRead("Peek")
	if l.head.isEmpty() {
		var zero T
		return zero, false
	}
	return l.head.node.elem, true
}

// RefMut is an exclusive reference to the head element. The list refuses
// every other operation until Release is called.
type RefMut[T any] struct {
	list *List[T]
	elem *T
}

// PeekMut borrows the head element exclusively.
func (l *List[T]) PeekMut() (*RefMut[T], bool) {
	l.borrow.checkWrite("PeekMut")
	if l.head.isEmpty() {
		return nil, false
	}
	l.borrow.lock("PeekMut")
	return &RefMut[T]{list: l, elem: &l.head.node.elem}, true
}

// Get returns the borrowed element. The pointer must not be used after
// Release.
func (r *RefMut[T]) Get() *T {
	if r.list == nil {
		panic(ErrReleased)
	}
	return r.elem
}

func (r *RefMut[T]) Set(v T) {
	*r.Get() = v
}

// Release ends the borrow. Releasing twice is a no-op.
func (r *RefMut[T]) Release() {
	if r.list == nil {
		return
	}
	r.list.borrow.unlock()
	r.list = nil
	r.elem = nil
}

// UpdateHead calls f with the head element under an exclusive borrow that
// ends when f returns. It reports whether the list had a head.
func (l *List[T]) UpdateHead(f func(elem *T)) bool {
	r, ok := l.PeekMut()
	if !ok {
		return false
	}
	defer r.Release()
	f(r.Get())
	return true
}

// Drop releases every node. The chain is unlinked one node at a time so
// teardown never recurses, whatever the length. The list is empty and
// reusable afterwards.
func (l *List[T]) Drop() {
	l.borrow.checkWrite("Drop")
	l.drop()
}

func (l *List[T]) drop() {
	var zero T
	cur := l.head.take()
	for !cur.isEmpty() {
		n := cur.node
		cur = n.next.take()
		n.elem = zero
	}
	l.len = 0
}
