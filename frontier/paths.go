package frontier

import (
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

// ShortestPaths returns every minimal-length path from initial to target,
// each starting with initial and ending with target.
//
// Paths are expanded wave by wave. A state is finalized at the end of the
// wave in which it was first expanded, so tied paths through the same state
// within one wave all survive, while a path whose endpoint was finalized in
// an earlier wave is dropped. All paths reaching target during the first
// wave that reaches it are returned together, in discovery order.
//
// initial == target yields the single path [initial].
// Fails with ErrUnreachable if the frontier empties first.
//
// Complexity: exponential in the number of tied paths in the worst case.
func ShortestPaths[S comparable](initial, target S, next Successor[S], opts ...Option) ([][]S, error) {
	if initial == target {
		return [][]S{{initial}}, nil
	}
	o := buildOptions(opts)

	finalized := mapset.New[S]()
	wave := queue.New[[]S]()
	wave.Enqueue([]S{initial})

	for depth := 0; !wave.Empty(); depth++ {
		upcoming := queue.New[[]S]()
		expanded := mapset.New[S]()
		var found [][]S

		for !wave.Empty() {
			path := wave.Dequeue()
			end := path[len(path)-1]
			if finalized.Has(end) {
				continue
			}
			expanded.Put(end)
			o.OnExpand(depth)

			for _, n := range next(end) {
				if finalized.Has(n) {
					continue
				}
				// Clip forces append to copy, so sibling paths never share a tail.
				ext := append(slices.Clip(path), n)
				if n == target {
					found = append(found, ext)
				} else {
					upcoming.Enqueue(ext)
				}
			}
		}

		o.OnWave(depth, expanded.Size())
		if len(found) > 0 {
			return found, nil
		}
		expanded.Each(finalized.Put)
		wave = upcoming
	}

	return nil, fmt.Errorf("%w: %v from %v", ErrUnreachable, target, initial)
}

// ShortestPath returns the first of ShortestPaths.
func ShortestPath[S comparable](initial, target S, next Successor[S], opts ...Option) ([]S, error) {
	paths, err := ShortestPaths(initial, target, next, opts...)
	if err != nil {
		return nil, err
	}
	return paths[0], nil
}
