// Package deque implements a generic double-ended queue over a doubly
// linked list bounded by two sentinel nodes.
//
// Lookups and removals report absence with the comma-ok form instead of a
// zero value alone. A Deque is not safe for concurrent use; guard the whole
// value with a single mutex when sharing it between goroutines.
package deque

import (
	"fmt"
	"strings"
)

type node[T any] struct {
	item T
	prev *node[T]
	next *node[T]
}

// Deque is a double-ended queue. The zero value is an empty deque ready to
// use. A Deque must not be copied by value after first use, use NewFrom.
type Deque[T any] struct {
	head node[T]
	tail node[T]
	len  int
}

func New[T any]() *Deque[T] {
	return new(Deque[T]).init()
}

// NewFrom returns a deque holding the items of other in the same order.
// The two deques share no nodes.
func NewFrom[T any](other *Deque[T]) *Deque[T] {
	d := New[T]()
	if other == nil || other.len == 0 {
		return d
	}
	for n := other.head.next; n != &other.tail; n = n.next {
		d.AddLast(n.item)
	}
	return d
}

func (d *Deque[T]) init() *Deque[T] {
	d.head.prev = nil
	d.head.next = &d.tail
	d.tail.prev = &d.head
	d.tail.next = nil
	d.len = 0
	return d
}

func (d *Deque[T]) lazyInit() {
	if d.head.next == nil {
		d.init()
	}
}

// insertAfter links a new node carrying item right after at.
func (d *Deque[T]) insertAfter(item T, at *node[T]) {
	n := &node[T]{item: item, prev: at, next: at.next}
	at.next.prev = n
	at.next = n
	d.len++
}

func (d *Deque[T]) remove(n *node[T]) T {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev = nil
	n.next = nil
	d.len--
	return n.item
}

func (d *Deque[T]) AddFirst(item T) {
	d.lazyInit()
	d.insertAfter(item, &d.head)
}

func (d *Deque[T]) AddLast(item T) {
	d.lazyInit()
	d.insertAfter(item, d.tail.prev)
}

// RemoveFirst unlinks the front item and returns it. ok is false when the
// deque is empty.
func (d *Deque[T]) RemoveFirst() (item T, ok bool) {
	if d.len == 0 {
		return
	}
	return d.remove(d.head.next), true
}

// RemoveLast unlinks the back item and returns it. ok is false when the
// deque is empty.
func (d *Deque[T]) RemoveLast() (item T, ok bool) {
	if d.len == 0 {
		return
	}
	return d.remove(d.tail.prev), true
}

func (d *Deque[T]) Front() (item T, ok bool) {
	if d.len == 0 {
		return
	}
	return d.head.next.item, true
}

func (d *Deque[T]) Back() (item T, ok bool) {
	if d.len == 0 {
		return
	}
	return d.tail.prev.item, true
}

func (d *Deque[T]) IsEmpty() bool {
	return d.len == 0
}

func (d *Deque[T]) Size() int {
	return d.len
}

// Array returns the items from front to back, or nil if the deque is empty.
func (d *Deque[T]) Array() []T {
	if d.len == 0 {
		return nil
	}
	array := make([]T, 0, d.len)
	for n := d.head.next; n != &d.tail; n = n.next {
		array = append(array, n.item)
	}
	return array
}

// String renders the items front to back separated by single spaces.
func (d *Deque[T]) String() string {
	var builder strings.Builder
	for n := d.first(); n != nil; n = d.nextNode(n) {
		if builder.Len() > 0 {
			builder.WriteByte(' ')
		}
		fmt.Fprint(&builder, n.item)
	}
	return builder.String()
}
