// Package frontier explores implicit state spaces breadth-first, wave by
// wave, from an initial state and a caller-supplied successor function.
//
// What:
//
//   - Distances: minimal step counts to a set of targets, halting the moment
//     the last target is discovered.
//   - Reachable: step counts to every state reachable from the start.
//   - ShortestPaths: every minimal-length path to a single target.
//   - WeightedDistances / WeightedPath: minimal-cost search over weighted
//     steps, driven by upqueue's decrease-key.
//
// Waves:
//
//	Wave k is exactly the set of states first discovered k steps from the
//	initial state. A state's distance is fixed by the wave that discovers it;
//	within a wave, states are expanded in discovery order. That order never
//	changes a distance, but it decides which of several tied paths is listed
//	first by ShortestPaths.
//
// Observation:
//
//	The package never logs. WithOnWave and WithOnExpand attach hooks that
//	see every completed wave and every expanded state.
//
// Limits:
//
//	There is no size cap, timeout or cancellation. The successor function
//	must yield a finite, properly deduplicated reachable set, otherwise
//	Reachable and failing searches never return.
//
// Errors:
//
//   - ErrUnreachable: ShortestPaths or WeightedPath exhausted the frontier.
//   - ErrUnreachableTargets: wrapped by *UnreachableError from Distances.
//   - ErrNegativeCost: a weighted step had a negative cost.
package frontier
