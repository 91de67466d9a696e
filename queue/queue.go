package queue

// nilHandle marks the absence of an entry (end of chain, empty free list).
const nilHandle = -1

// entry is one arena slot: a payload plus the handle of the next entry.
type entry[T any] struct {
	value T
	next  int
}

// Queue is a FIFO queue of values of type T.
//
// head and tail are handles into arena; free is the head of the chain of
// released slots. size counts live entries only.
type Queue[T any] struct {
	arena []entry[T]
	head  int
	tail  int
	free  int
	size  int
}

// New creates an empty Queue configured by opts.
// Returns ErrBadCapacity if a negative capacity was requested.
func New[T any](opts ...Option) (*Queue[T], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Queue[T]{
		arena: make([]entry[T], 0, o.Capacity),
		head:  nilHandle,
		tail:  nilHandle,
		free:  nilHandle,
	}, nil
}

// Enqueue appends v at the tail of the queue.
// Complexity: O(1) amortised.
func (q *Queue[T]) Enqueue(v T) {
	h := q.alloc(v)
	if q.tail == nilHandle {
		q.head = h
	} else {
		q.arena[q.tail].next = h
	}
	q.tail = h
	q.size++
}

// Dequeue removes and returns the value at the head of the queue.
// On an empty queue it returns the zero value and false; the size is unchanged.
// Complexity: O(1).
func (q *Queue[T]) Dequeue() (T, bool) {
	if q.head == nilHandle {
		var zero T
		return zero, false
	}

	h := q.head
	v := q.arena[h].value
	q.head = q.arena[h].next
	if q.head == nilHandle {
		q.tail = nilHandle
	}
	q.release(h)
	q.size--

	return v, true
}

// IsEmpty reports whether the queue holds no values.
func (q *Queue[T]) IsEmpty() bool { return q.head == nilHandle }

// Len returns the number of queued values.
func (q *Queue[T]) Len() int { return q.size }

// Snapshot returns a copy of the queued values in dequeue order.
// The queue is not modified.
func (q *Queue[T]) Snapshot() []T {
	out := make([]T, 0, q.size)
	for h := q.head; h != nilHandle; h = q.arena[h].next {
		out = append(out, q.arena[h].value)
	}

	return out
}

// Clear drops every queued value and releases the arena.
func (q *Queue[T]) Clear() {
	q.arena = nil
	q.head, q.tail, q.free = nilHandle, nilHandle, nilHandle
	q.size = 0
}

// alloc stores v in a free slot (reusing released ones first) and returns its handle.
func (q *Queue[T]) alloc(v T) int {
	if q.free != nilHandle {
		h := q.free
		q.free = q.arena[h].next
		q.arena[h] = entry[T]{value: v, next: nilHandle}
		return h
	}
	q.arena = append(q.arena, entry[T]{value: v, next: nilHandle})

	return len(q.arena) - 1
}

// release zeroes slot h so its payload can be collected and pushes it onto the free list.
func (q *Queue[T]) release(h int) {
	q.arena[h] = entry[T]{next: q.free}
	q.free = h
}
