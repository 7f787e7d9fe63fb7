package linked_list

import "iter"

// IntoIter owns a list's chain and yields its elements by value, head
// first.
type IntoIter[T any] struct {
	list List[T]
}

// IntoIter moves the whole chain into a consuming iterator and leaves l
// empty.
func (l *List[T]) IntoIter() *IntoIter[T] {
	l.borrow.checkWrite("IntoIter")
	it := &IntoIter[T]{}
	it.list.head = l.head.take()
	it.list.len = l.len
	l.len = 0
	return it
}

func (it *IntoIter[T]) Next() (T, bool) {
	return it.list.pop()
}

// Len is the number of elements not yet yielded.
func (it *IntoIter[T]) Len() int {
	return it.list.len
}

// Close drops the elements not yet yielded.
func (it *IntoIter[T]) Close() {
	it.list.drop()
}

// Drain returns a sequence that moves the chain out of l when iteration
// starts and yields every element by value. Elements left when the loop
// breaks are dropped.
func (l *List[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := l.IntoIter()
		defer it.Close()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Iter is a read-only traversal. It holds a shared borrow of the list until
// Next reports false or Close is called.
type Iter[T any] struct {
	list *List[T]
	next *node[T]
}

func (l *List[T]) Iter() *Iter[T] {
	l.borrow.share("Iter")
	return &Iter[T]{list: l, next: l.head.node}
}

// Next returns a copy of the next element.
func (it *Iter[T]) Next() (T, bool) {
	n := it.next
	if n == nil {
		it.Close()
		var zero T
		return zero, false
	}
	it.next = n.next.node
	return n.elem, true
}

func (it *Iter[T]) Close() {
	if it.list == nil {
		return
	}
	it.list.borrow.unshare()
	it.list = nil
	it.next = nil
}

// All returns a read-only sequence over the elements, head first.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := l.Iter()
		defer it.Close()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// IterMut is a mutating traversal. It holds the exclusive borrow of the list
// until Next reports false or Close is called. Elements may be written
// through the returned pointers; the links cannot be reached.
type IterMut[T any] struct {
	list *List[T]
	next *node[T]
}

func (l *List[T]) IterMut() *IterMut[T] {
	l.borrow.lock("IterMut")
	return &IterMut[T]{list: l, next: l.head.node}
}

// Next takes the cursor, advances it to the successor and returns the taken
// node's element.
func (it *IterMut[T]) Next() (*T, bool) {
	n := it.next
	it.next = nil
	if n == nil {
		it.Close()
		return nil, false
	}
	it.next = n.next.node
	return &n.elem, true
}

func (it *IterMut[T]) Close() {
	if it.list == nil {
		return
	}
	it.list.borrow.unlock()
	it.list = nil
	it.next = nil
}

// AllMut returns a sequence of pointers to the elements, head first. The
// exclusive borrow ends with the loop.
func (l *List[T]) AllMut() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		it := l.IterMut()
		defer it.Close()
		for p, ok := it.Next(); ok; p, ok = it.Next() {
			if !yield(p) {
				return
			}
		}
	}
}
