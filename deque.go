package deque

import (
	"errors"
	"fmt"
	"io"
	"iter"
)

// Deque is a double-ended queue backed by a single contiguous buffer treated
// as circular. Elements are pushed at the back and popped from either end,
// so it serves both as a FIFO work-list (PushBack/PopFront) and as a stack
// (PushBack/PopBack).
//
// The live elements occupy the index range [begin, end) read modulo the
// buffer length, which means they may span the physical end of the buffer
// and continue at slot 0. begin == end holds both when no element is live
// and when every slot is; the empty flag tells the two states apart, never
// the cursor comparison alone.
//
// To create a Deque, use New or call Init on an existing instance. A
// zero-valued Deque has no buffer and must be initialized before use:
//
//	var d Deque[int] // wrong, call d.Init(n) first
//
// Pushing to a full Deque reallocates to 2*Cap()+1 slots, so a capacity
// hint to New avoids reallocation for workloads with a known bound. The
// buffer never shrinks. Methods are not safe for concurrent use.
type Deque[T any] struct {
	buf        []T
	begin, end int
	empty      bool
}

/*****************************************************************************
 * CONSTRUCTORS & LIFECYCLE
 *****************************************************************************/

// New allocates a Deque with room for max(capacity, 1) elements, holding no
// live elements.
func New[T any](capacity int) *Deque[T] {
	d := &Deque[T]{}
	d.Init(capacity)
	return d
}

// Init (re-)initializes d with a fresh buffer of max(capacity, 1) slots and
// no live elements. Any previous buffer is released. Init is the only valid
// call on a destroyed Deque.
func (d *Deque[T]) Init(capacity int) {
	d.buf = make([]T, max(capacity, 1))
	d.begin, d.end = 0, 0
	d.empty = true
}

// Destroy releases the backing buffer. After Destroy the only valid call is
// Init; destroying an already destroyed Deque is a no-op.
func (d *Deque[T]) Destroy() {
	d.buf = nil
	d.begin, d.end = 0, 0
	d.empty = true
}

// Clear drops every live element in O(1) without releasing or shrinking the
// buffer. Dropped slots are not zeroed, so elements holding references keep
// them alive until the slots are overwritten; pop each element instead if
// that matters.
func (d *Deque[T]) Clear() {
	d.begin, d.end = 0, 0
	d.empty = true
}

/*****************************************************************************
 * QUERIES
 *****************************************************************************/

// Len returns the number of live elements.
func (d *Deque[T]) Len() int {
	switch {
	case d.empty:
		return 0
	case d.begin < d.end:
		return d.end - d.begin
	default: // live range wraps past the physical end
		return len(d.buf) - d.begin + d.end
	}
}

// Cap returns the current number of slots in the buffer.
func (d *Deque[T]) Cap() int { return len(d.buf) }

// Empty returns whether the Deque holds no live elements.
func (d *Deque[T]) Empty() bool { return d.empty }

// Full returns whether every slot holds a live element. Pushing to a full
// Deque reallocates.
func (d *Deque[T]) Full() bool { return !d.empty && d.begin == d.end }

/*****************************************************************************
 * DEQUE API
 *****************************************************************************/

// Front returns the element at the head of the queue without removing it.
// Returns ErrEmpty if no element is live.
func (d *Deque[T]) Front() (T, error) {
	if d.empty {
		var zero T
		return zero, ErrEmpty
	}
	return d.buf[d.begin], nil
}

// Back returns the most recently pushed element without removing it.
// Returns ErrEmpty if no element is live.
func (d *Deque[T]) Back() (T, error) {
	if d.empty {
		var zero T
		return zero, ErrEmpty
	}
	i := d.end - 1
	if i < 0 {
		i = len(d.buf) - 1
	}
	return d.buf[i], nil
}

// PopFront removes and returns the element at the head of the queue. The
// vacated slot is zeroed so references held by the element do not keep its
// memory alive. Returns ErrEmpty if no element is live.
func (d *Deque[T]) PopFront() (T, error) {
	if d.empty {
		var zero T
		return zero, ErrEmpty
	}
	t := d.buf[d.begin]
	var zero T
	d.buf[d.begin] = zero
	d.begin++
	if d.begin == len(d.buf) {
		d.begin = 0
	}
	if d.begin == d.end {
		d.empty = true
	}
	return t, nil
}

// PopBack removes and returns the most recently pushed element. The vacated
// slot is zeroed so references held by the element do not keep its memory
// alive. Returns ErrEmpty if no element is live.
func (d *Deque[T]) PopBack() (T, error) {
	if d.empty {
		var zero T
		return zero, ErrEmpty
	}
	d.end--
	if d.end < 0 {
		d.end = len(d.buf) - 1
	}
	t := d.buf[d.end]
	var zero T
	d.buf[d.end] = zero
	if d.begin == d.end {
		d.empty = true
	}
	return t, nil
}

// PushBack appends t after the current back of the queue, reallocating first
// when every slot is already live. Reallocation invalidates the previous
// buffer, so callers must not hold on to element addresses across pushes.
func (d *Deque[T]) PushBack(t T) {
	if d.Full() {
		d.grow()
	}
	if d.empty {
		d.end = d.begin
		d.empty = false
	}
	d.buf[d.end] = t
	d.end++
	if d.end == len(d.buf) {
		d.end = 0
	}
}

// At returns the element at logical position i, where 0 addresses the
// current head, without mutating the queue. Returns ErrIndexOutOfRange
// unless 0 <= i < Len().
func (d *Deque[T]) At(i int) (T, error) {
	if i < 0 || i >= d.Len() {
		var zero T
		return zero, fmt.Errorf("%w: index %d with length %d", ErrIndexOutOfRange, i, d.Len())
	}
	return d.buf[(d.begin+i)%len(d.buf)], nil
}

/*****************************************************************************
 * ITERATION & RENDERING
 *****************************************************************************/

// Iter returns an iterator over the live elements in logical order, head
// first. Iteration does not consume elements. Mutating the Deque during
// iteration is not detected; the iterator keeps walking the buffer it
// started with.
func (d *Deque[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		a, b := d.segments()
		for _, t := range a {
			if !yield(t) {
				return
			}
		}
		for _, t := range b {
			if !yield(t) {
				return
			}
		}
	}
}

// Fprint writes the live elements to w in logical order with the %v verb,
// space-separated and newline-terminated. An empty Deque writes only the
// newline.
func (d *Deque[T]) Fprint(w io.Writer) error {
	format := "%v"
	for t := range d.Iter() {
		if _, err := fmt.Fprintf(w, format, t); err != nil {
			return err
		}
		format = " %v"
	}
	_, err := fmt.Fprintln(w)
	return err
}

/*****************************************************************************
 * SENTINEL ERRORS
 *****************************************************************************/

// ErrEmpty is returned by Front, Back, PopFront and PopBack when the Deque
// holds no live elements.
var ErrEmpty = errors.New("no live elements")

// ErrIndexOutOfRange is returned by At when the index does not address a
// live element.
var ErrIndexOutOfRange = errors.New("index out of range")

/*****************************************************************************
 * HELPERS
 *****************************************************************************/

// segments returns the live range as its up to two contiguous pieces, in
// logical order. Both are nil when the Deque is empty; the second is nil
// when the range does not wrap.
func (d *Deque[T]) segments() (a, b []T) {
	if d.empty {
		return nil, nil
	}
	if d.begin < d.end {
		return d.buf[d.begin:d.end], nil
	}
	return d.buf[d.begin:], d.buf[:d.end]
}

// grow moves the live range into a fresh buffer of 2*len(buf)+1 slots, head
// segment first, and rebases the cursors to the physical start. Only called
// on a full Deque, so the element count equals the old capacity. The old
// buffer is untouched until the new one is fully built.
func (d *Deque[T]) grow() {
	newBuf := make([]T, 2*len(d.buf)+1)
	oldLen := d.Len()
	a, b := d.segments()
	n := copy(newBuf, a)
	copy(newBuf[n:], b)
	d.buf = newBuf
	d.begin = 0
	d.end = oldLen
}
