package frontier

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

// item pairs a state with its distance from the initial state.
type item[S comparable] struct {
	state S
	depth int
}

// explore runs a breadth-first wave expansion from initial. discover is
// called exactly once per state, at the moment it is first seen, with its
// minimal distance; returning true halts the run immediately, after
// reporting the wave in progress to OnWave.
//
// States are marked visited on discovery, so a wave is exactly the set of
// states first seen at that distance.
func explore[S comparable](initial S, next Successor[S], o Options, discover func(s S, depth int) bool) {
	visited := mapset.New[S]()
	visited.Put(initial)
	if discover(initial, 0) {
		return
	}

	frontier := queue.New[item[S]]()
	frontier.Enqueue(item[S]{state: initial})
	depth, size := 0, 0
	for !frontier.Empty() {
		it := frontier.Dequeue()
		if it.depth != depth {
			o.OnWave(depth, size)
			depth, size = it.depth, 0
		}
		size++
		o.OnExpand(it.depth)

		for _, n := range next(it.state) {
			if visited.Has(n) {
				continue
			}
			visited.Put(n)
			if discover(n, it.depth+1) {
				o.OnWave(depth, size)
				return
			}
			frontier.Enqueue(item[S]{state: n, depth: it.depth + 1})
		}
	}
	o.OnWave(depth, size)
}

// Distances returns the minimal number of steps from initial to each state
// in targets, exploring with next. Exploration stops as soon as every
// distinct target has a distance.
//
// If some targets are never reached, the partial map is returned and, when
// requireAll is set, so is an *UnreachableError listing the missing targets
// (errors.Is matches ErrUnreachableTargets).
//
// Complexity: O(V + E) over the explored part of the state space.
func Distances[S comparable](initial S, targets []S, next Successor[S], requireAll bool, opts ...Option) (map[S]int, error) {
	want := mapset.New[S]()
	for _, t := range targets {
		want.Put(t)
	}
	found := make(map[S]int, want.Size())
	if want.Size() == 0 {
		return found, nil
	}

	explore(initial, next, buildOptions(opts), func(s S, depth int) bool {
		if !want.Has(s) {
			return false
		}
		found[s] = depth
		return len(found) == want.Size()
	})

	if len(found) == want.Size() || !requireAll {
		return found, nil
	}

	missing := make([]S, 0, want.Size()-len(found))
	for _, t := range targets {
		if _, ok := found[t]; ok || !want.Has(t) {
			continue
		}
		want.Remove(t) // report duplicates once
		missing = append(missing, t)
	}
	return found, &UnreachableError[S]{Initial: initial, Found: found, Missing: missing}
}

// Distance returns the minimal number of steps from initial to target.
// Fails with an *UnreachableError if target is never reached.
func Distance[S comparable](initial, target S, next Successor[S], opts ...Option) (int, error) {
	found, err := Distances(initial, []S{target}, next, true, opts...)
	if err != nil {
		return 0, err
	}
	return found[target], nil
}

// Reachable returns the distance from initial of every state it can reach,
// initial included at distance 0. next must yield a finite reachable set.
func Reachable[S comparable](initial S, next Successor[S], opts ...Option) map[S]int {
	dist := make(map[S]int)
	explore(initial, next, buildOptions(opts), func(s S, depth int) bool {
		dist[s] = depth
		return false
	})
	return dist
}
