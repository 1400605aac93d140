package xlist

import "fmt"

// LinkedList is a singly-linked list that also contains a reference to
// the last node for constant time inserts at both the head and the
// tail. A zero value LinkedList is empty and ready to use.
//
// Each node is owned by exactly one predecessor, or by the list itself
// for the head, so nodes are never shared between lists. A LinkedList
// must not be copied by value after first use. Use [LinkedList.Clone]
// or [LinkedList.Assign] to copy one.
type LinkedList[T any] struct {
	_ noCopy

	head *node[T]
	tail *node[T] // not owned; tail.next is always nil
	size int
}

// New returns an empty list. It is equivalent to new(LinkedList[T]).
func New[T any]() *LinkedList[T] {
	return new(LinkedList[T])
}

// FromSlice returns a new list holding the elements of vs in the same
// order.
func FromSlice[T any](vs []T) *LinkedList[T] {
	l := New[T]()
	for _, v := range vs {
		l.AppendBack(v)
	}
	return l
}

// Len returns the number of elements in the list.
func (l *LinkedList[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.size
}

// Empty returns true if the list has no elements.
func (l *LinkedList[T]) Empty() bool {
	return l.Len() == 0
}

// AppendFront inserts v as a new node before the current head.
func (l *LinkedList[T]) AppendFront(v T) {
	n := &node[T]{val: v, next: l.head}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.size++
}

// AppendBack inserts v as a new node after the current tail.
func (l *LinkedList[T]) AppendBack(v T) {
	n := l.tail.insert()
	n.val = v
	l.tail = n

	if l.head == nil {
		l.head = n
	}
	l.size++
}

// At returns a copy of the element at index i. If i does not identify
// an element, it returns the zero value of T and an error matching
// [ErrOutOfRange].
func (l *LinkedList[T]) At(i int) (v T, err error) {
	n, err := l.nodeAt("at", i)
	if err != nil {
		return v, err
	}
	return n.val, nil
}

// Ref returns a pointer to the element at index i, through which the
// element can be modified in place. The pointer refers to the list's
// own storage only until that element is removed or the list is
// cleared or assigned to.
func (l *LinkedList[T]) Ref(i int) (*T, error) {
	n, err := l.nodeAt("ref", i)
	if err != nil {
		return nil, err
	}
	return &n.val, nil
}

// Set replaces the element at index i with v.
func (l *LinkedList[T]) Set(i int, v T) error {
	n, err := l.nodeAt("set", i)
	if err != nil {
		return err
	}
	n.val = v
	return nil
}

// Remove removes the element at index i, shifting every later element
// down by one. If i does not identify an element, the list is left
// unchanged and an error matching [ErrOutOfRange] is returned.
func (l *LinkedList[T]) Remove(i int) error {
	if err := l.check("remove", i); err != nil {
		return err
	}

	if i == 0 {
		n := l.head
		l.head = n.next
		n.next = nil
		if l.head == nil {
			l.tail = nil
		}
		l.size--
		return nil
	}

	prev := l.walk(i - 1)
	n := prev.next
	prev.next = n.next
	n.next = nil
	if n == l.tail {
		l.tail = prev
	}
	l.size--
	return nil
}

// Clear releases every node, leaving the list empty.
func (l *LinkedList[T]) Clear() {
	n := l.head
	for n != nil {
		next := n.next
		n.next = nil
		n = next
	}

	l.head = nil
	l.tail = nil
	l.size = 0
}

// Clone returns a new list with the same elements as l, in the same
// order, that shares no nodes with l. Elements are copied by
// assignment. A nil l yields an empty list.
func (l *LinkedList[T]) Clone() *LinkedList[T] {
	return l.CloneFunc(keep[T])
}

// CloneFunc is like [LinkedList.Clone] but stores clone(v) for each
// element v instead of v itself. It can be used to deep copy elements
// that hold references, such as slices or pointers.
func (l *LinkedList[T]) CloneFunc(clone func(T) T) *LinkedList[T] {
	c := New[T]()
	c.copyFrom(l, clone)
	return c
}

// Assign replaces the contents of l with a copy of the elements of
// other. Assigning a list to itself does nothing.
func (l *LinkedList[T]) Assign(other *LinkedList[T]) {
	l.copyFrom(other, keep[T])
}

// AssignFunc is like [LinkedList.Assign] but stores clone(v) for each
// element v of other.
func (l *LinkedList[T]) AssignFunc(other *LinkedList[T], clone func(T) T) {
	l.copyFrom(other, clone)
}

// Slice returns the elements of the list, from head to tail, in a
// newly allocated slice.
func (l *LinkedList[T]) Slice() []T {
	s := make([]T, 0, l.Len())
	for n := l.front(); n != nil; n = n.next {
		s = append(s, n.val)
	}
	return s
}

func (l *LinkedList[T]) String() string {
	return fmt.Sprint(l.Slice())
}

// copyFrom builds a fresh chain from src and only then releases l's
// current nodes, so that l is untouched if clone panics.
func (l *LinkedList[T]) copyFrom(src *LinkedList[T], clone func(T) T) {
	if l == src {
		return
	}

	var head, tail *node[T]
	for n := src.front(); n != nil; n = n.next {
		tail = tail.insert()
		tail.val = clone(n.val)
		if head == nil {
			head = tail
		}
	}

	l.Clear()
	l.head = head
	l.tail = tail
	l.size = src.Len()
}

// take moves the nodes of src into l, leaving src empty.
func (l *LinkedList[T]) take(src *LinkedList[T]) {
	if l == src {
		return
	}

	l.Clear()
	l.head, l.tail, l.size = src.head, src.tail, src.size
	src.head, src.tail, src.size = nil, nil, 0
}

func (l *LinkedList[T]) front() *node[T] {
	if l == nil {
		return nil
	}
	return l.head
}

func (l *LinkedList[T]) check(op string, i int) error {
	if i < 0 || i >= l.Len() {
		return &IndexError{Op: op, Index: i, Len: l.Len()}
	}
	return nil
}

func (l *LinkedList[T]) nodeAt(op string, i int) (*node[T], error) {
	if err := l.check(op, i); err != nil {
		return nil, err
	}
	return l.walk(i), nil
}

// walk follows i links from the head. i must be in range.
func (l *LinkedList[T]) walk(i int) *node[T] {
	n := l.head
	for range i {
		n = n.next
	}
	return n
}

func keep[T any](v T) T { return v }

type node[T any] struct {
	val  T
	next *node[T]
}

// insert links a new node directly after n and returns it. A nil n
// yields a new unlinked node.
func (n *node[T]) insert() *node[T] {
	if n == nil {
		return new(node[T])
	}

	n.next = &node[T]{next: n.next}
	return n.next
}
