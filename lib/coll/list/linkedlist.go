package list

import "github.com/ValentinKolb/dColl/lib/coll"

// --------------------------------------------------------------------------
// Linked Storage
// --------------------------------------------------------------------------

type llElem[T coll.Scalar] struct {
	data T
	prev *llElem[T]
	next *llElem[T]
}

// linkedStore only implements the single element primitives; ranges fall back
// to the derived implementations of Base.
type linkedStore[T coll.Scalar] struct {
	head   *llElem[T]
	tail   *llElem[T]
	length int
}

// node walks from the nearer end to index i
func (s *linkedStore[T]) node(i int) *llElem[T] {
	if i < s.length/2 {
		n := s.head
		for ; i > 0; i-- {
			n = n.next
		}
		return n
	}
	n := s.tail
	for j := s.length - 1; j > i; j-- {
		n = n.prev
	}
	return n
}

func (s *linkedStore[T]) Len() int {
	return s.length
}

func (s *linkedStore[T]) At(i int) (T, error) {
	return s.node(i).data, nil
}

func (s *linkedStore[T]) SetAt(i int, v T) (T, error) {
	n := s.node(i)
	old := n.data
	n.data = v
	return old, nil
}

func (s *linkedStore[T]) InsertAt(i int, v T) error {
	newNode := &llElem[T]{data: v}
	switch {
	case s.length == 0:
		s.head, s.tail = newNode, newNode
	case i == s.length:
		newNode.prev = s.tail
		s.tail.next = newNode
		s.tail = newNode
	default:
		succ := s.node(i)
		newNode.next = succ
		newNode.prev = succ.prev
		if succ.prev == nil {
			s.head = newNode
		} else {
			succ.prev.next = newNode
		}
		succ.prev = newNode
	}
	s.length++
	return nil
}

func (s *linkedStore[T]) RemoveAt(i int) (T, error) {
	n := s.node(i)
	if n.prev == nil {
		s.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		s.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	n.prev, n.next = nil, nil
	s.length--
	return n.data, nil
}

// --------------------------------------------------------------------------
// LinkedList
// --------------------------------------------------------------------------

// LinkedList is a doubly linked list. Positional access walks from the nearer
// end, so Get is O(min(i, Len()-i)).
//
// Thread-safety: LinkedList is not thread-safe.
type LinkedList[T coll.Scalar] struct {
	*Base[T]
	s *linkedStore[T]
}

// compile time check
var _ coll.List[uint16] = (*LinkedList[uint16])(nil)

// NewLinkedList creates a LinkedList holding vs
func NewLinkedList[T coll.Scalar](vs ...T) *LinkedList[T] {
	s := &linkedStore[T]{}
	for _, v := range vs {
		s.InsertAt(s.length, v)
	}
	return &LinkedList[T]{Base: New[T](s), s: s}
}

// First returns the head element. Fails with coll.ErrNoSuchElement when empty.
func (l *LinkedList[T]) First() (T, error) {
	if l.s.head == nil {
		var zero T
		return zero, coll.NoSuchElement("First on an empty list")
	}
	return l.s.head.data, nil
}

// Last returns the tail element. Fails with coll.ErrNoSuchElement when empty.
func (l *LinkedList[T]) Last() (T, error) {
	if l.s.tail == nil {
		var zero T
		return zero, coll.NoSuchElement("Last on an empty list")
	}
	return l.s.tail.data, nil
}

// Prepend inserts v at the head.
func (l *LinkedList[T]) Prepend(v T) {
	l.s.InsertAt(0, v)
}
