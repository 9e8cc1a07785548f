package upqueue

import "fmt"

// CheckLinks walks the chain both ways and verifies it agrees with the
// mirror map, the free list and the sort order.
func (q *Queue[K, V]) CheckLinks() error {
	seen := 0
	prev := none
	for at := q.head; at != none; at = q.nodes[at].next {
		n := q.nodes[at]
		if n.prev != prev {
			return fmt.Errorf("slot %d: prev=%d, want %d", at, n.prev, prev)
		}
		if s, ok := q.slots[n.key]; !ok || s != at {
			return fmt.Errorf("slot %d: key %v maps to %d (present=%v)", at, n.key, s, ok)
		}
		if prev != none && q.nodes[prev].value > n.value {
			return fmt.Errorf("slot %d: value %v after %v", at, n.value, q.nodes[prev].value)
		}
		prev = at
		seen++
		if seen > len(q.nodes) {
			return fmt.Errorf("cycle detected after %d nodes", seen)
		}
	}
	if prev != q.tail {
		return fmt.Errorf("tail=%d, last walked=%d", q.tail, prev)
	}
	if seen != len(q.slots) {
		return fmt.Errorf("walked %d nodes, map holds %d", seen, len(q.slots))
	}
	if seen+len(q.free) != len(q.nodes) {
		return fmt.Errorf("live %d + free %d != arena %d", seen, len(q.free), len(q.nodes))
	}
	return nil
}

// ArenaLen exposes the arena size so tests can observe slot reuse.
func (q *Queue[K, V]) ArenaLen() int { return len(q.nodes) }
