package xlist

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is matched by errors returned when an index does not
// identify an element of a list.
var ErrOutOfRange = errors.New("index out of range")

// IndexError describes an access to an index that was not in the range
// [0, Len).
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	if e.Len == 0 {
		return fmt.Sprintf("xlist: %v: index %v out of range: list is empty", e.Op, e.Index)
	}
	return fmt.Sprintf("xlist: %v: index %v out of range [0:%v)", e.Op, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrOutOfRange
}
