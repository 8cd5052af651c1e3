// Package queue provides a singly linked FIFO queue of strings with
// head/tail insertion, head removal, in-place reversal, and an
// in-place merge sort that relinks the existing elements rather than
// allocating new ones.
//
// The zero value of Queue is a valid empty queue. Queues are not safe
// for access from multiple concurrent go routines; callers are
// responsible for their own concurrency control, as with a slice.
package queue

import (
	"fmt"
	"iter"

	"github.com/tychoish/fun/irt"
)

// Queue is a singly linked list of string values with O(1) access to
// both ends and a tracked length.
type Queue struct {
	head   *Element
	tail   *Element
	length int
}

// New constructs an empty queue. The zero value is equivalent.
func New() *Queue { return &Queue{} }

// Len reports the number of elements in the queue. Len is safe to
// call on a nil queue, and because queues track their own size this
// is an O(1) operation.
func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	return q.length
}

// PushFront inserts a value at the head of the queue, reporting false
// (leaving the queue unmodified) if the queue is nil.
func (q *Queue) PushFront(value string) bool {
	if q == nil {
		return false
	}

	elem := &Element{value: value, ok: true, next: q.head}
	if q.length == 0 {
		q.tail = elem
	}
	q.head = elem
	q.length++
	return true
}

// PushBack inserts a value at the tail of the queue, reporting false
// (leaving the queue unmodified) if the queue is nil. Pushing onto an
// empty queue is identical to PushFront.
func (q *Queue) PushBack(value string) bool {
	if q == nil {
		return false
	}
	if q.length == 0 {
		return q.PushFront(value)
	}

	elem := &Element{value: value, ok: true}
	q.tail.next = elem
	q.tail = elem
	q.length++
	return true
}

// PopFront detaches and returns the element at the head of the
// queue. When the queue is nil or empty the returned element is
// non-nil but reports a false Ok() value.
func (q *Queue) PopFront() *Element {
	if q.Len() == 0 {
		return &Element{}
	}

	out := q.head
	q.head = out.next
	q.length--
	// removing down to one element (or none) can leave the tail
	// pointing at the detached node.
	if q.length <= 1 {
		q.tail = q.head
	}
	out.next = nil
	return out
}

// PopFrontInto removes the head element and copies its value into
// dst, writing at most len(dst)-1 bytes followed by a 0 byte. Values
// longer than the buffer are truncated; truncation is not an
// error. PopFrontInto returns the number of value bytes copied and
// reports false only when the queue is nil or empty, in which case
// dst is untouched.
func (q *Queue) PopFrontInto(dst []byte) (int, bool) {
	if q.Len() == 0 {
		return 0, false
	}

	elem := q.PopFront()

	n := 0
	if len(dst) > 0 {
		n = copy(dst[:len(dst)-1], elem.value)
		dst[n] = 0
	}
	return n, true
}

// Front returns the element at the head of the queue without
// modifying the queue. On a nil or empty queue the returned element
// reports a false Ok() value.
func (q *Queue) Front() *Element {
	if q.Len() == 0 {
		return &Element{}
	}
	return q.head
}

// Back returns the element at the tail of the queue without modifying
// the queue. On a nil or empty queue the returned element reports a
// false Ok() value.
func (q *Queue) Back() *Element {
	if q.Len() == 0 {
		return &Element{}
	}
	return q.tail
}

// Clear drops every element from the queue. Clear is idempotent and
// safe to call on a nil queue.
func (q *Queue) Clear() {
	if q == nil {
		return
	}
	q.head, q.tail, q.length = nil, nil, 0
}

// Reverse inverts the order of the queue in a single pass, relinking
// the existing elements without allocating or releasing any. Queues
// with fewer than two elements are unchanged.
func (q *Queue) Reverse() {
	if q.Len() <= 1 {
		return
	}

	var prev *Element
	for cur := q.head; cur != nil; {
		next := cur.next
		cur.next = prev
		prev = cur
		cur = next
	}
	q.tail = q.head
	q.head = prev
}

// Append adds a variadic sequence of values to the back of the queue.
func (q *Queue) Append(items ...string) *Queue { return q.Extend(irt.Slice(items)) }

// Extend adds every value produced by the input sequence to the back
// of the queue.
func (q *Queue) Extend(seq iter.Seq[string]) *Queue {
	irt.Apply(seq, func(in string) { q.PushBack(in) })
	return q
}

// Iterator returns a native go iterator over the values in the queue,
// from head to tail. The queue is not modified.
func (q *Queue) Iterator() iter.Seq[string] {
	return func(yield func(string) bool) {
		for elem := q.Front(); elem.Ok(); elem = elem.Next() {
			if !yield(elem.value) {
				return
			}
		}
	}
}

// IteratorPop returns a destructive iterator that removes and yields
// values from the head of the queue until the queue is empty.
func (q *Queue) IteratorPop() iter.Seq[string] {
	return func(yield func(string) bool) {
		for elem := q.PopFront(); elem.Ok(); elem = q.PopFront() {
			if !yield(elem.value) {
				return
			}
		}
	}
}

// String renders the queue's values from head to tail.
func (q *Queue) String() string { return fmt.Sprint(irt.Collect(q.Iterator(), 0, q.Len())) }
