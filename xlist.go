// Package xlist provides a generic singly-linked list with value
// semantics.
//
// A [LinkedList] owns its nodes. Copies are made explicitly with
// [LinkedList.Clone] or [LinkedList.Assign] and never share nodes with
// their source, so mutating one list can never be observed through
// another.
//
// Lists are not safe for concurrent use. Callers that share a list
// between goroutines must synchronize access themselves, or confine
// the list to a single goroutine the way the [deedles.dev/xlist/cq]
// package does.
package xlist

// noCopy makes go vet's copylocks check report LinkedList values that
// are copied, as a shallow copy would share the original's nodes.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
