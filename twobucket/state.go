package twobucket

import "fmt"

// Bucket identifies one of the two vessels of the puzzle.
type Bucket int

const (
	// One is the first bucket (capOne).
	One Bucket = iota
	// Two is the second bucket (capTwo).
	Two
)

// Other returns the companion bucket.
func (b Bucket) Other() Bucket {
	if b == One {
		return Two
	}

	return One
}

// Valid reports whether b is One or Two.
func (b Bucket) Valid() bool {
	return b == One || b == Two
}

func (b Bucket) String() string {
	switch b {
	case One:
		return "one"
	case Two:
		return "two"
	default:
		return fmt.Sprintf("bucket(%d)", int(b))
	}
}

// BucketState is a snapshot of a single bucket: fixed capacity, current volume.
type BucketState struct {
	Bucket   Bucket
	Capacity int
	Volume   int
}

// Available returns the free room left in the bucket.
func (s BucketState) Available() int {
	return s.Capacity - s.Volume
}

// Full reports whether the bucket holds its capacity.
func (s BucketState) Full() bool {
	return s.Volume == s.Capacity
}

// Empty reports whether the bucket holds nothing.
func (s BucketState) Empty() bool {
	return s.Volume == 0
}

// State is a value snapshot of both buckets plus the goal volume.
// States are comparable and serve directly as visited-map keys.
type State struct {
	One  BucketState
	Two  BucketState
	Goal int
}

// newState builds the initial state: start filled, the other empty.
func newState(capOne, capTwo, goal int, start Bucket) State {
	s := State{
		One:  BucketState{Bucket: One, Capacity: capOne},
		Two:  BucketState{Bucket: Two, Capacity: capTwo},
		Goal: goal,
	}
	p, _ := s.pair(start)
	p.Volume = p.Capacity

	return s
}

// Get returns the snapshot of bucket b.
func (s State) Get(b Bucket) BucketState {
	if b == Two {
		return s.Two
	}

	return s.One
}

// Complete reports whether either bucket holds exactly Goal.
func (s State) Complete() bool {
	return s.One.Volume == s.Goal || s.Two.Volume == s.Goal
}

// GoalBucket returns the bucket holding Goal, preferring One on a tie.
// ok is false when the state is not complete.
func (s State) GoalBucket() (b Bucket, ok bool) {
	switch {
	case s.One.Volume == s.Goal:
		return One, true
	case s.Two.Volume == s.Goal:
		return Two, true
	default:
		return One, false
	}
}

func (s State) String() string {
	return fmt.Sprintf("(%d/%d, %d/%d)", s.One.Volume, s.One.Capacity, s.Two.Volume, s.Two.Capacity)
}

// pair returns pointers to (b, b.Other()) inside s.
func (s *State) pair(b Bucket) (primary, secondary *BucketState) {
	if b == Two {
		return &s.Two, &s.One
	}

	return &s.One, &s.Two
}

// ActionKind enumerates the three move types.
type ActionKind int

const (
	// Fill tops the bucket up to capacity.
	Fill ActionKind = iota
	// Empty drains the bucket to zero.
	Empty
	// Pour transfers from the bucket into the other until one is empty or the other is full.
	Pour
)

func (k ActionKind) String() string {
	switch k {
	case Fill:
		return "fill"
	case Empty:
		return "empty"
	case Pour:
		return "pour"
	default:
		return fmt.Sprintf("action(%d)", int(k))
	}
}

// Action is a single move applied to Bucket (for Pour: the source).
type Action struct {
	Kind   ActionKind
	Bucket Bucket
}

// actionOrder is the fixed per-level expansion order; it decides ties.
var actionOrder = [...]Action{
	{Fill, One}, {Fill, Two},
	{Empty, One}, {Empty, Two},
	{Pour, One}, {Pour, Two},
}

// Apply returns the state produced by performing a on s. s is not modified.
func (a Action) Apply(s State) State {
	primary, secondary := s.pair(a.Bucket)
	switch a.Kind {
	case Fill:
		primary.Volume = primary.Capacity
	case Empty:
		primary.Volume = 0
	case Pour:
		mv := min(primary.Volume, secondary.Available())
		primary.Volume -= mv
		secondary.Volume += mv
	}

	return s
}

func (a Action) String() string {
	if a.Kind == Pour {
		return fmt.Sprintf("pour(%s→%s)", a.Bucket, a.Bucket.Other())
	}

	return fmt.Sprintf("%s(%s)", a.Kind, a.Bucket)
}

// Step is one entry of a solution: the action taken and the state it produced.
type Step struct {
	Action Action
	State  State
}
