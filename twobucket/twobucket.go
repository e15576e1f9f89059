// Package twobucket solves the two-bucket water puzzle by breadth-first
// search over (volume-in-one, volume-in-two) states.
package twobucket

import (
	"context"
	"fmt"
)

// queueItem pairs a frontier state with the number of moves that reached it.
type queueItem struct {
	state State
	moves int
}

// visit records how a state was first reached.
type visit struct {
	parent State
	action Action
	moves  int
	root   bool
}

// walker encapsulates mutable search state for one Solve call.
type walker struct {
	opts    Options
	ctx     context.Context
	start   Bucket
	queue   []queueItem
	visited map[State]visit
	limited bool
}

// Solve finds the minimal sequence of moves that leaves exactly goal units
// in one of two buckets of capacities capOne and capTwo, starting by
// filling the start bucket. The initial fill counts as the first move.
//
// Returns ErrInvalidInput for non-positive capacities or goal or an unknown
// start bucket, ErrUnsolvable when the goal cannot be reached,
// ErrOptionViolation for bad options, ErrMoveLimit when WithMaxMoves cut the
// search short, the context error on cancellation, or a wrapped OnVisit error.
func Solve(capOne, capTwo, goal int, start Bucket, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := validate(capOne, capTwo, goal, start); err != nil {
		return nil, err
	}

	w := &walker{
		opts:    o,
		ctx:     o.Ctx,
		start:   start,
		visited: make(map[State]visit),
	}

	select {
	case <-w.ctx.Done():
		return nil, w.ctx.Err()
	default:
	}

	first := newState(capOne, capTwo, goal, start)
	w.visited[first] = visit{action: Action{Kind: Fill, Bucket: start}, moves: 1, root: true}
	w.enqueue(first, 1)
	if first.Complete() {
		return w.result(first), nil
	}

	final, err := w.loop()
	if err != nil {
		return nil, err
	}

	return w.result(final), nil
}

// enqueue adds s to the frontier and fires OnEnqueue.
func (w *walker) enqueue(s State, moves int) {
	w.opts.OnEnqueue(s, moves)
	w.queue = append(w.queue, queueItem{state: s, moves: moves})
}

// dequeue pops the head of the frontier and fires OnDequeue.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.state, item.moves)

	return item
}

// loop expands the frontier level by level until a complete state is
// generated, the frontier empties, or the context is cancelled.
func (w *walker) loop() (State, error) {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return State{}, w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.opts.OnVisit(item.state, item.moves); err != nil {
			return State{}, fmt.Errorf("twobucket: OnVisit error at %s: %w", item.state, err)
		}

		final, found, err := w.expand(item)
		if err != nil || found {
			return final, err
		}
	}

	if w.limited {
		return State{}, fmt.Errorf("%w: no solution within %d moves", ErrMoveLimit, w.opts.MaxMoves)
	}

	return State{}, ErrUnsolvable
}

// expand applies every action to item.state in actionOrder and enqueues the
// unseen, allowed results. found is true as soon as one of them is complete.
func (w *walker) expand(item queueItem) (final State, found bool, err error) {
	next := item.moves + 1
	if w.opts.MaxMoves > 0 && next > w.opts.MaxMoves {
		w.limited = true

		return State{}, false, nil
	}

	for _, a := range actionOrder {
		select {
		case <-w.ctx.Done():
			return State{}, false, w.ctx.Err()
		default:
		}

		s := a.Apply(item.state)
		if w.forbidden(s) {
			continue
		}
		if _, seen := w.visited[s]; seen {
			continue
		}
		w.visited[s] = visit{parent: item.state, action: a, moves: next}
		w.enqueue(s, next)
		if s.Complete() {
			return s, true, nil
		}
	}

	return State{}, false, nil
}

// forbidden reports whether s leaves the start bucket empty and the other
// full. That is the position a player starting with the other bucket would
// hold, so it is never a legal result of a move.
func (w *walker) forbidden(s State) bool {
	return s.Get(w.start).Empty() && s.Get(w.start.Other()).Full()
}

// result rebuilds the move sequence ending at final from the parent links.
func (w *walker) result(final State) *Result {
	moves := w.visited[final].moves
	steps := make([]Step, moves)
	for cur := final; ; {
		v := w.visited[cur]
		steps[v.moves-1] = Step{Action: v.action, State: cur}
		if v.root {
			break
		}
		cur = v.parent
	}

	gb, _ := final.GoalBucket()

	return &Result{
		Moves:       moves,
		GoalBucket:  gb,
		OtherBucket: final.Get(gb.Other()).Volume,
		Steps:       steps,
	}
}
