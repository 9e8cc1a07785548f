package upqueue

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"strings"
)

// ErrEmptyQueue is returned by Poll and Peek when the queue holds no keys.
var ErrEmptyQueue = errors.New("upqueue: queue is empty")

// none marks an absent link or an empty head/tail.
const none = -1

// node is one arena slot. prev and next are slot indices or none.
type node[K comparable, V cmp.Ordered] struct {
	key        K
	value      V
	prev, next int
}

// Queue is an ascending priority queue of unique keys.
// The zero value is not usable; construct with New.
type Queue[K comparable, V cmp.Ordered] struct {
	nodes      []node[K, V]
	free       []int
	head, tail int
	slots      map[K]int
}

// New returns an empty queue.
func New[K comparable, V cmp.Ordered]() *Queue[K, V] {
	return &Queue[K, V]{
		head:  none,
		tail:  none,
		slots: make(map[K]int),
	}
}

// Len returns the number of queued keys.
func (q *Queue[K, V]) Len() int { return len(q.slots) }

// Contains reports whether k is queued.
func (q *Queue[K, V]) Contains(k K) bool {
	_, ok := q.slots[k]
	return ok
}

// Value returns the current value of k, if queued.
func (q *Queue[K, V]) Value(k K) (V, bool) {
	s, ok := q.slots[k]
	if !ok {
		var zero V
		return zero, false
	}
	return q.nodes[s].value, true
}

// Insert queues k with value v and reports whether the queue changed.
//
//   - k absent: inserted at its sorted position.
//   - k present with a value <= v: no-op.
//   - k present with a value > v: moved to the position of v.
func (q *Queue[K, V]) Insert(k K, v V) bool {
	if s, ok := q.slots[k]; ok {
		if cmp.Compare(q.nodes[s].value, v) <= 0 {
			return false
		}
		q.unlink(s)
		q.release(s)
	}

	s := q.alloc(k, v)
	q.slots[k] = s

	// first slot whose value is not smaller than v
	at := q.head
	for at != none && cmp.Compare(v, q.nodes[at].value) > 0 {
		at = q.nodes[at].next
	}
	q.linkBefore(s, at)

	return true
}

// Remove drops k from the queue and reports whether it was present.
func (q *Queue[K, V]) Remove(k K) bool {
	s, ok := q.slots[k]
	if !ok {
		return false
	}
	q.unlink(s)
	q.release(s)
	delete(q.slots, k)

	return true
}

// Poll removes and returns the key with the smallest value.
// Returns ErrEmptyQueue if the queue is empty.
func (q *Queue[K, V]) Poll() (K, V, error) {
	k, v, err := q.Peek()
	if err != nil {
		return k, v, err
	}
	q.Remove(k)

	return k, v, nil
}

// Peek returns the key with the smallest value without removing it.
// Returns ErrEmptyQueue if the queue is empty.
func (q *Queue[K, V]) Peek() (K, V, error) {
	if q.head == none {
		var (
			k K
			v V
		)
		return k, v, ErrEmptyQueue
	}
	n := q.nodes[q.head]
	return n.key, n.value, nil
}

// All yields queued keys and values in ascending order. The queue must not
// be modified during iteration.
func (q *Queue[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for at := q.head; at != none; at = q.nodes[at].next {
			if !yield(q.nodes[at].key, q.nodes[at].value) {
				return
			}
		}
	}
}

// Clear removes every key and releases the arena.
func (q *Queue[K, V]) Clear() {
	q.nodes, q.free = nil, nil
	q.head, q.tail = none, none
	clear(q.slots)
}

// String formats the queue as "k=v,k=v" in ascending order, or "(empty)".
func (q *Queue[K, V]) String() string {
	if q.head == none {
		return "(empty)"
	}
	var sb strings.Builder
	for k, v := range q.All() {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%v=%v", k, v)
	}
	return sb.String()
}

// alloc places a detached node in a free slot, growing the arena if needed.
func (q *Queue[K, V]) alloc(k K, v V) int {
	n := node[K, V]{key: k, value: v, prev: none, next: none}
	if last := len(q.free) - 1; last >= 0 {
		s := q.free[last]
		q.free = q.free[:last]
		q.nodes[s] = n
		return s
	}
	q.nodes = append(q.nodes, n)
	return len(q.nodes) - 1
}

// release returns a detached slot to the free list.
func (q *Queue[K, V]) release(s int) {
	q.nodes[s] = node[K, V]{prev: none, next: none}
	q.free = append(q.free, s)
}

// linkBefore splices detached slot s in front of slot at, or at the tail
// when at is none.
func (q *Queue[K, V]) linkBefore(s, at int) {
	if at == none {
		q.nodes[s].prev = q.tail
		if q.tail == none {
			q.head = s
		} else {
			q.nodes[q.tail].next = s
		}
		q.tail = s
		return
	}

	p := q.nodes[at].prev
	q.nodes[s].prev, q.nodes[s].next = p, at
	q.nodes[at].prev = s
	if p == none {
		q.head = s
	} else {
		q.nodes[p].next = s
	}
}

// unlink detaches slot s, repairing its neighbours and head/tail.
func (q *Queue[K, V]) unlink(s int) {
	p, n := q.nodes[s].prev, q.nodes[s].next
	if p == none {
		q.head = n
	} else {
		q.nodes[p].next = n
	}
	if n == none {
		q.tail = p
	} else {
		q.nodes[n].prev = p
	}
	q.nodes[s].prev, q.nodes[s].next = none, none
}
