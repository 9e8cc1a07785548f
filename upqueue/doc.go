// Package upqueue provides Queue, an ascending priority queue in which every
// key appears at most once.
//
// What:
//
//   - Insert adds a key at its sorted position. Re-inserting a present key
//     only ever improves it: a smaller value relocates the key
//     (decrease-key), an equal or larger value is ignored.
//   - Poll removes and returns the minimum; Remove drops any key in O(1).
//   - A mirror map from key to arena slot answers Contains, Value and Len
//     without walking the chain.
//
// Why:
//
//   - Weighted frontier exploration (Dijkstra-style relaxation) needs exactly
//     "is this state queued, and is my new cost better?" in O(1).
//
// Layout:
//
//	Nodes live in an arena slice and link to each other by slot index.
//	Freed slots go on a free list and are reused by later inserts, so no
//	node is ever aliased outside the queue and removing the last element
//	simply resets head and tail to the empty marker.
//
// Ties:
//
//	A new entry is placed before existing entries of equal value.
//
// Complexity:
//
//   - Insert: O(n) scan from head for the sorted position.
//   - Remove, Poll, Peek, Contains, Value, Len: O(1).
//   - Memory: O(n) for the arena, free list and mirror map.
//
// Errors:
//
//   - ErrEmptyQueue: Poll or Peek on an empty queue.
package upqueue
