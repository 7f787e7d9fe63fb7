// Package stack is the minimal owned list: push, pop and drop over uint64
// elements. There is no peek or iterator API.
package stack

type node struct {
	elem uint64
	next link
}

// link is either empty or more. A nil link is treated as empty so the zero
// Stack is usable.
type link interface {
	isLink()
}

type empty struct{}

// more owns the next node.
type more struct {
	node *node
}

func (empty) isLink() {}
func (more) isLink()  {}

// replace stores with in *slot and returns what was there.
func replace(slot *link, with link) link {
	old := *slot
	*slot = with
	return old
}

type Stack struct {
	head link
}

func New() *Stack {
	return &Stack{head: empty{}}
}

func (s *Stack) Push(elem uint64) {
	n := &node{elem: elem, next: replace(&s.head, empty{})}
	s.head = more{node: n}
}

func (s *Stack) Pop() (uint64, bool) {
	m, ok := replace(&s.head, empty{}).(more)
	if !ok {
		return 0, false
	}
	s.head = replace(&m.node.next, empty{})
	return m.node.elem, true
}

func (s *Stack) Contains(elem uint64) bool {
	cur := s.head
	for {
		m, ok := cur.(more)
		if !ok {
			return false
		}
		if m.node.elem == elem {
			return true
		}
		cur = m.node.next
	}
}

// Drop unlinks the nodes one at a time, so dropping a long stack does not
// recurse.
func (s *Stack) Drop() {
	cur := replace(&s.head, empty{})
	for {
		m, ok := cur.(more)
		if !ok {
			return
		}
		cur = replace(&m.node.next, empty{})
	}
}
