// Package frontier provides successor-function types, options and error
// definitions for wave-based state-space exploration.
package frontier

import (
	"errors"
	"fmt"
)

// Sentinel errors for frontier exploration.
var (
	// ErrUnreachable is returned when the frontier empties before the target
	// state is reached.
	ErrUnreachable = errors.New("frontier: target is unreachable")

	// ErrUnreachableTargets is wrapped by UnreachableError when some of the
	// requested targets were never discovered.
	ErrUnreachableTargets = errors.New("frontier: not all targets are reachable")

	// ErrNegativeCost is returned by the weighted search when a successor
	// step carries a negative cost.
	ErrNegativeCost = errors.New("frontier: negative step cost")
)

// Successor returns the states reachable from s in one step.
// It must be deterministic and yield a finite reachable set; exploration has
// no size cap.
type Successor[S comparable] func(s S) []S

// Weight is any numeric step cost.
type Weight interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Step is one weighted move to a neighbouring state.
type Step[S comparable, W Weight] struct {
	To   S
	Cost W
}

// WeightedSuccessor returns the weighted steps leaving s.
type WeightedSuccessor[S comparable, W Weight] func(s S) []Step[S, W]

// UnreachableError reports the targets a Distances call could not reach.
// Found holds the distances that were assigned before the frontier emptied.
type UnreachableError[S comparable] struct {
	Initial S
	Found   map[S]int
	Missing []S
}

func (e *UnreachableError[S]) Error() string {
	return fmt.Sprintf("frontier: targets %v unreachable from %v (found %d of %d)",
		e.Missing, e.Initial, len(e.Found), len(e.Found)+len(e.Missing))
}

// Unwrap lets errors.Is match ErrUnreachableTargets.
func (e *UnreachableError[S]) Unwrap() error { return ErrUnreachableTargets }

// Option configures exploration via functional arguments.
type Option func(*Options)

// Options holds the observation hooks of an exploration run.
type Options struct {
	// OnWave is called once a wave has been fully expanded, with its distance
	// from the initial state and the number of states it contained.
	// When Distances halts early, the wave being expanded is reported with
	// the states expanded so far. Unweighted searches only.
	OnWave func(depth, size int)

	// OnExpand is called before the successors of a state are generated.
	// depth is the number of steps from the initial state (edges on the best
	// known path for the weighted search).
	OnExpand func(depth int)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnWave:   func(int, int) {},
		OnExpand: func(int) {},
	}
}

// WithOnWave registers a callback run at every completed wave.
func WithOnWave(fn func(depth, size int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnWave = fn
		}
	}
}

// WithOnExpand registers a callback run for every expanded state.
func WithOnExpand(fn func(depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
