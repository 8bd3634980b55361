// File: cursor/cursor.go
package cursor

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when an operation targets a position outside
// the cursor's element sequence.
var ErrOutOfRange = errors.New("position out of range")

// Cursor steps through a fixed sequence of elements. The position is
// 1-based: the current element is the one at position-1, and position 0
// means the cursor has not advanced onto the first element yet.
type Cursor[T any] struct {
	elems []T
	pos   int
}

// New creates a cursor over elems, positioned before the first element.
func New[T any](elems []T) *Cursor[T] {
	return &Cursor[T]{elems: elems}
}

// Len returns the number of elements in the sequence.
func (c *Cursor[T]) Len() int {
	return len(c.elems)
}

// Position returns the current 1-based position.
func (c *Cursor[T]) Position() int {
	return c.pos
}

// Advance moves the cursor onto the next element. It returns false when
// no next element exists, leaving the position unchanged.
func (c *Cursor[T]) Advance() bool {
	if c.pos >= len(c.elems) {
		return false
	}
	c.pos++
	return true
}

// AdvanceWithCurrent advances and returns the new current element. On
// failure it returns the zero value and false.
func (c *Cursor[T]) AdvanceWithCurrent() (T, bool) {
	if !c.Advance() {
		var zero T
		return zero, false
	}
	return c.elems[c.pos-1], true
}

// GoTo repositions the cursor. The target is validated, not the current
// position: any pos outside [0, Len()] is rejected with ErrOutOfRange.
func (c *Cursor[T]) GoTo(pos int) error {
	if pos < 0 || pos > len(c.elems) {
		return fmt.Errorf("go to %d with %d elements: %w", pos, len(c.elems), ErrOutOfRange)
	}
	c.pos = pos
	return nil
}

// Peek returns the element offset steps away from the current one without
// moving the cursor. The effective index must fall inside the sequence.
func (c *Cursor[T]) Peek(offset int) (T, error) {
	idx := c.pos - 1 + offset
	if idx < 0 || idx >= len(c.elems) {
		var zero T
		return zero, fmt.Errorf("peek %d from position %d: %w", offset, c.pos, ErrOutOfRange)
	}
	return c.elems[idx], nil
}

// Current returns the element at the current position. It fails with
// ErrOutOfRange when the cursor has not advanced onto an element yet.
func (c *Cursor[T]) Current() (T, error) {
	if c.pos == 0 || c.pos > len(c.elems) {
		var zero T
		return zero, fmt.Errorf("current at position %d: %w", c.pos, ErrOutOfRange)
	}
	return c.elems[c.pos-1], nil
}

// AdvanceWhile captures the current element, then keeps advancing and
// capturing as long as the next element satisfies pred. The first element
// that fails pred is not consumed. It returns nil when the cursor has no
// current element.
func (c *Cursor[T]) AdvanceWhile(pred func(T) bool) []T {
	cur, err := c.Current()
	if err != nil {
		return nil
	}
	run := []T{cur}
	for {
		next, err := c.Peek(1)
		if err != nil || !pred(next) {
			return run
		}
		c.Advance()
		run = append(run, next)
	}
}

// AdvanceUntil is AdvanceWhile with the predicate negated: it advances
// while the next element does NOT satisfy pred.
func (c *Cursor[T]) AdvanceUntil(pred func(T) bool) []T {
	return c.AdvanceWhile(func(v T) bool { return !pred(v) })
}

// AdvanceToEnd consumes every remaining element, including the current
// one if the cursor has advanced onto one.
func (c *Cursor[T]) AdvanceToEnd() []T {
	var run []T
	if cur, err := c.Current(); err == nil {
		run = append(run, cur)
	}
	for {
		el, ok := c.AdvanceWithCurrent()
		if !ok {
			return run
		}
		run = append(run, el)
	}
}
