// Package twobucket provides tunable options, result and error definitions
// for the two-bucket puzzle solver.
package twobucket

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for Solve.
var (
	// ErrInvalidInput is returned for non-positive capacities or goal, or an unknown start bucket.
	ErrInvalidInput = errors.New("twobucket: invalid input")

	// ErrUnsolvable is returned when no sequence of moves reaches the goal.
	ErrUnsolvable = errors.New("twobucket: goal is unreachable")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("twobucket: invalid option supplied")

	// ErrMoveLimit is returned when WithMaxMoves cut the search off before a solution.
	ErrMoveLimit = errors.New("twobucket: move limit reached")
)

// Option configures Solve via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by Solve.
type Option func(*Options)

// Options holds parameters and callbacks for a single Solve call.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a state joins the frontier.
	OnEnqueue func(s State, moves int)

	// OnDequeue is called when a state leaves the frontier, before expansion.
	OnDequeue func(s State, moves int)

	// OnVisit is called when a state is expanded. A non-nil error aborts Solve.
	OnVisit func(s State, moves int) error

	// MaxMoves, if > 0, bounds the number of moves explored.
	// 0 means no limit.
	MaxMoves int

	err error
}

// DefaultOptions returns background context, no-op hooks and no move limit.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(State, int) {},
		OnDequeue: func(State, int) {},
		OnVisit:   func(State, int) error { return nil },
	}
}

// WithContext makes Solve give up with ctx.Err() once ctx is done.
// A nil ctx leaves the background context in place.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue observes each puzzle state as it is first reached,
// together with the number of moves it took.
func WithOnEnqueue(fn func(s State, moves int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue observes each state just before its six moves are tried.
func WithOnDequeue(fn func(s State, moves int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit inspects each state before its moves are tried. A non-nil
// error ends Solve, wrapped with the state it was returned for.
func WithOnVisit(fn func(s State, moves int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxMoves rejects solutions longer than n moves, the first fill
// included. Solve then reports ErrMoveLimit instead of searching further.
// Zero removes the bound; a negative n fails Solve with ErrOptionViolation.
func WithMaxMoves(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxMoves cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxMoves = n
	}
}

// Result describes a solution.
//   - Moves: total moves, the initial fill included.
//   - GoalBucket: the bucket holding the goal volume.
//   - OtherBucket: volume left in the other bucket.
//   - Steps: the move sequence, len(Steps) == Moves.
type Result struct {
	Moves       int
	GoalBucket  Bucket
	OtherBucket int
	Steps       []Step
}

// Final returns the terminal state of the solution, or the zero State
// when Steps is empty (a Result not produced by Solve).
func (r *Result) Final() State {
	if len(r.Steps) == 0 {
		return State{}
	}

	return r.Steps[len(r.Steps)-1].State
}
