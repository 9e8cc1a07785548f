package frontier

import (
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/statespace/upqueue"
)

// weighted runs Dijkstra relaxation from initial over a unique-key priority
// queue. Each state sits in the queue at most once; a cheaper path found
// later moves it forward (decrease-key) instead of pushing a duplicate.
// The run ends early once stop reports true for a finalized state.
func weighted[S comparable, W Weight](initial S, next WeightedSuccessor[S, W], o Options, stop func(S) bool) (map[S]W, map[S]S, error) {
	var zero W
	dist := map[S]W{initial: zero}
	prev := make(map[S]S)
	hops := map[S]int{initial: 0}
	done := mapset.New[S]()

	q := upqueue.New[S, W]()
	q.Insert(initial, zero)

	for q.Len() > 0 {
		u, du, err := q.Poll()
		if err != nil {
			return nil, nil, err
		}
		done.Put(u)
		if stop != nil && stop(u) {
			break
		}
		o.OnExpand(hops[u])

		for _, st := range next(u) {
			if st.Cost < zero {
				return nil, nil, fmt.Errorf("%w: %v -> %v costs %v", ErrNegativeCost, u, st.To, st.Cost)
			}
			if done.Has(st.To) {
				continue
			}
			nd := du + st.Cost
			if old, ok := dist[st.To]; ok && old <= nd {
				continue
			}
			dist[st.To] = nd
			prev[st.To] = u
			hops[st.To] = hops[u] + 1
			q.Insert(st.To, nd)
		}
	}

	return dist, prev, nil
}

// WeightedDistances returns the minimal total cost from initial to every
// state it can reach, and the predecessor of each state on one such path.
// prev has no entry for initial.
//
// Fails with ErrNegativeCost if any explored step has a negative cost.
//
// Complexity: O(V·(V + E)) with the linear-insert queue.
func WeightedDistances[S comparable, W Weight](initial S, next WeightedSuccessor[S, W], opts ...Option) (map[S]W, map[S]S, error) {
	return weighted(initial, next, buildOptions(opts), nil)
}

// WeightedPath returns a minimal-cost path from initial to target and its
// total cost. The search stops as soon as target is finalized.
//
// Fails with ErrUnreachable if target is never reached, or ErrNegativeCost.
func WeightedPath[S comparable, W Weight](initial, target S, next WeightedSuccessor[S, W], opts ...Option) ([]S, W, error) {
	dist, prev, err := weighted(initial, next, buildOptions(opts), func(s S) bool { return s == target })
	if err != nil {
		var zero W
		return nil, zero, err
	}
	cost, ok := dist[target]
	if !ok {
		var zero W
		return nil, zero, fmt.Errorf("%w: %v from %v", ErrUnreachable, target, initial)
	}

	path := []S{target}
	for cur := target; cur != initial; {
		cur = prev[cur]
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path, cost, nil
}
