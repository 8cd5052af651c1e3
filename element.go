package queue

import "fmt"

// Element is a single entry in a queue: a string value and a link to
// the following entry. Elements are created by the queue's insert
// operations and detached by its remove operations; an element
// belongs to at most one queue at a time.
type Element struct {
	value string
	next  *Element
	ok    bool
}

// Value returns the element's stored string. Empty-sentinel and nil
// elements return the empty string; use Ok to distinguish a stored
// empty string from a missing element.
func (e *Element) Value() string {
	if e == nil {
		return ""
	}
	return e.value
}

// Ok reports whether the element holds a value: accessors on an empty
// queue return elements that report false. Returns false when the
// element is nil.
func (e *Element) Ok() bool { return e != nil && e.ok }

// Next returns the following element in the queue, or nil at the end
// of the queue.
func (e *Element) Next() *Element {
	if e == nil {
		return nil
	}
	return e.next
}

// String implements fmt.Stringer, and returns the string value of the
// element's value.
func (e *Element) String() string { return fmt.Sprint(e.Value()) }
