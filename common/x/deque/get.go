package deque

func (d *Deque[T]) inRange(index int) bool {
	return d.len > 0 && index >= 0 && index < d.len
}

// Get returns the item at index counting from the front.
func (d *Deque[T]) Get(index int) (item T, ok bool) {
	if !d.inRange(index) {
		return
	}
	n := d.head.next
	for i := 0; i < index; i++ {
		n = n.next
	}
	return n.item, true
}

// GetRecursive is Get by recursive descent. The call depth grows with
// index; goroutine stacks grow on demand, but prefer Get for very deep
// lookups.
func (d *Deque[T]) GetRecursive(index int) (item T, ok bool) {
	if !d.inRange(index) {
		return
	}
	return getRecursive(d.head.next, index), true
}

func getRecursive[T any](n *node[T], index int) T {
	if index == 0 {
		return n.item
	}
	return getRecursive(n.next, index-1)
}

// first returns the front node, or nil when empty.
func (d *Deque[T]) first() *node[T] {
	if d.len == 0 {
		return nil
	}
	return d.head.next
}

// nextNode returns the successor of n, or nil if n is nil or the last
// item. Sentinels are never returned.
func (d *Deque[T]) nextNode(n *node[T]) *node[T] {
	if n == nil || n.next == &d.tail {
		return nil
	}
	return n.next
}

// prevNode returns the predecessor of n, or nil if n is nil or the first
// item.
func (d *Deque[T]) prevNode(n *node[T]) *node[T] {
	if n == nil || n.prev == &d.head {
		return nil
	}
	return n.prev
}
