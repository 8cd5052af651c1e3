package queue

// LessThan describes a less than operation over string values,
// typically provided by LessThanNative, used for ordering the queue.
type LessThan func(a, b string) bool

// LessThanNative provides a wrapper around the < operator on strings,
// which compares byte-wise.
func LessThanNative(a, b string) bool { return a < b }

// Reverse wraps an existing LessThan operator and reverses its
// direction.
func Reverse(fn LessThan) LessThan { return func(a, b string) bool { return !fn(a, b) } }

// Sort rearranges the queue into ascending order under byte-wise
// string comparison. Sorting relinks the queue's existing elements in
// place: no elements are allocated or released, the value multiset is
// unchanged, and equal values keep their relative order. Queues with
// fewer than two elements are unchanged.
//
// The implementation is a merge sort over the linked elements, with
// O(n log n) comparisons, O(log n) stack depth, and no auxiliary heap
// allocation.
func (q *Queue) Sort() { q.SortWith(LessThanNative) }

// SortWith sorts the queue using the provided comparison function,
// with the same in-place and stability properties as Sort.
func (q *Queue) SortWith(lt LessThan) {
	if q.Len() <= 1 {
		return
	}

	sorted := mergeSort(span{head: q.head, tail: q.tail}, lt)
	q.head, q.tail = sorted.head, sorted.tail
}

// IsSorted reports if the queue is ordered from low to high under
// byte-wise string comparison.
func (q *Queue) IsSorted() bool { return q.IsSortedWith(LessThanNative) }

// IsSortedWith reports if the queue is ordered from low to high
// according to the comparison function. Queues with fewer than two
// elements are always sorted.
func (q *Queue) IsSortedWith(lt LessThan) bool {
	if q.Len() <= 1 {
		return true
	}

	for elem := q.head; elem.next != nil; elem = elem.next {
		if lt(elem.next.value, elem.value) {
			return false
		}
	}
	return true
}

// span is a closed, contiguous run of linked elements, from head to
// tail inclusive. A span's tail link is forced to nil before the span
// is processed, so operations on one span can never walk into a
// sibling span or past the queue's tail. Spans are views of the
// queue's own elements and only exist for the duration of a sort.
type span struct {
	head *Element
	tail *Element
}

// mergeSort sorts a terminated span (r.tail.next == nil) by splitting
// it, sorting both halves, and merging them. Runs of one element are
// returned unchanged, and runs of exactly two are resolved with a
// single comparison instead of recursing.
func mergeSort(r span, lt LessThan) span {
	if r.head == r.tail {
		return r
	}

	if r.head.next == r.tail {
		if lt(r.tail.value, r.head.value) {
			r.head, r.tail = r.tail, r.head
			r.head.next = r.tail
			r.tail.next = nil
		}
		return r
	}

	left, right := split(r)
	return merge(mergeSort(left, lt), mergeSort(right, lt), lt)
}

// split partitions a run into two terminated, non-overlapping halves
// of ⌈n/2⌉ and ⌊n/2⌋ elements, walking a fast pointer two links for
// every one the slow pointer takes.
func split(r span) (span, span) {
	slow := r.head
	for fast := r.head.next; fast != r.tail && fast != r.tail.next; {
		fast = fast.next.next
		slow = slow.next
	}

	left := span{head: r.head, tail: slow}
	right := span{head: slow.next, tail: r.tail}
	left.tail.next = nil
	right.tail.next = nil
	return left, right
}

// merge combines two sorted, terminated runs into one, relinking the
// existing elements. Ties are taken from the left run, which keeps
// the sort stable. When one run is exhausted the other's remainder is
// spliced in with a single link write rather than element by element;
// the merged tail is the surviving run's tail.
func merge(a, b span, lt LessThan) span {
	var head *Element
	next := &head

	for a.head != nil && b.head != nil {
		source := &a.head
		if lt(b.head.value, a.head.value) {
			source = &b.head
		}
		*next = *source
		*source = (*source).next
		next = &(*next).next
	}

	rest := &a
	if a.head == nil {
		rest = &b
	}
	*next = rest.head
	return span{head: head, tail: rest.tail}
}
