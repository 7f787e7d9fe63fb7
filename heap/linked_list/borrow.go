package linked_list

import (
	"errors"
	"fmt"

	"github.com/goose-lang/std"
)

// Ownership is the kind of borrow held on a list.
type Ownership uint8

const (
	// OwnershipNone means no view of the list is live.
	OwnershipNone Ownership = iota
	// OwnershipRef is one or more read-only views (Iter, All).
	OwnershipRef
	// OwnershipRefMut is the single exclusive view (PeekMut, IterMut, AllMut).
	OwnershipRefMut
)

func (o Ownership) String() string {
	switch o {
	case OwnershipNone:
		return "no"
	case OwnershipRef:
		return "&"
	case OwnershipRefMut:
		return "&mut"
	default:
		return "?"
	}
}

// BorrowError is the panic value for an operation that conflicts with a
// live borrow of the list.
type BorrowError struct {
	Op   string
	Held Ownership
}

func (e *BorrowError) Error() string {
	return fmt.Sprintf("linked_list: %s while %s borrow is live", e.Op, e.Held)
}

// ErrReleased is the panic value for using a RefMut after Release.
var ErrReleased = errors.New("linked_list: use of released borrow")

// borrowState is a single-writer/multi-reader flag. It is not a lock: the
// list is single-threaded, and a conflicting request fails instead of
// waiting.
type borrowState struct {
	shared    int
	exclusive bool
}

func (b *borrowState) held() Ownership {
	if b.exclusive {
		return OwnershipRefMut
	}
	if b.shared > 0 {
		return OwnershipRef
	}
	return OwnershipNone
}

// checkRead fails if an exclusive borrow is live.
func (b *borrowState) checkRead(op string) {
	if b.exclusive {
		panic(&BorrowError{Op: op, Held: OwnershipRefMut})
	}
}

// checkWrite fails if any borrow is live.
func (b *borrowState) checkWrite(op string) {
	if h := b.held(); h != OwnershipNone {
		panic(&BorrowError{Op: op, Held: h})
	}
}

func (b *borrowState) share(op string) {
	b.checkRead(op)
	b.shared++
}

func (b *borrowState) unshare() {
	std.Assert(b.shared > 0)
	b.shared--
}

func (b *borrowState) lock(op string) {
	b.checkWrite(op)
	b.exclusive = true
}

func (b *borrowState) unlock() {
	std.Assert(b.exclusive)
	b.exclusive = false
}
