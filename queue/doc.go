// Package queue provides a generic first-in-first-out work queue.
//
// Overview:
//
//   - Enqueue appends at the tail, Dequeue removes from the head; both O(1).
//   - Dequeue order is exactly Enqueue order. There is no reordering and no
//     random access into the middle of the queue.
//   - An empty queue is an ordinary state: Dequeue reports it through its
//     second return value and never panics or returns an error.
//
// Storage:
//
//	Entries live in a single arena slice owned by the Queue and are linked
//	through integer handles (the index of the next entry, or nilHandle).
//	Released slots are zeroed and threaded onto a free list, so a queue that
//	cycles through many items keeps a bounded footprint and never hands out
//	references to its internal entries.
//
//	  arena: [ e0 ]─▶[ e2 ]─▶[ e1 ]─▶ nil
//	          head            tail
//
// Complexity:
//
//   - Enqueue: O(1) amortised (arena growth is slice append).
//   - Dequeue, Len, IsEmpty: O(1).
//   - Snapshot: O(n).
//
// Thread safety:
//
//	A Queue is not safe for concurrent use. Callers that share a Queue across
//	goroutines must synchronize externally.
//
// Example:
//
//	q, _ := queue.New[string]()
//	q.Enqueue("Box A")
//	q.Enqueue("Box B")
//	v, ok := q.Dequeue() // "Box A", true
package queue
