// Package twobucket solves the classic two-bucket water puzzle: given two
// buckets of fixed capacity, reach exactly a goal volume in either one using
// the fewest fill, empty and pour moves.
//
// What
//
//   - Starts by filling the chosen start bucket (move 1), the other empty.
//   - Explores states breadth-first with six actions per state, generated
//     in the fixed order Fill(one), Fill(two), Empty(one), Empty(two),
//     Pour(one→two), Pour(two→one). This order breaks ties.
//   - Never produces a state where the start bucket is empty and the other
//     is full: that is the opening position of the other bucket, not a move.
//   - Returns a Result with:
//   - Moves: minimal move count, initial fill included
//   - GoalBucket: bucket holding the goal (One wins a tie)
//   - OtherBucket: volume left in the other bucket
//   - Steps: the (Action, State) sequence from first fill to goal
//   - Supports hooks OnEnqueue, OnDequeue, OnVisit, a MaxMoves bound and
//     context cancellation.
//
// Why
//
//	Pouring water is a shortest-path problem on a small implicit graph; BFS
//	gives the minimal move count directly without materializing the graph.
//
// Determinism
//
//	States are plain values and actions are expanded in a fixed order, so
//	identical input always yields an identical Result.
//
// Complexity (A = capOne, B = capTwo)
//
//	Every reachable state has one bucket empty or full, so at most
//	2·(A+1) + 2·(B+1) states are ever generated.
//
//   - Time:   O(A+B)   (each state expanded at most once, 6 edges each)
//   - Memory: O(A+B)   (visited map and frontier, grown on demand)
//
// Usage
//
//	res, err := twobucket.Solve(3, 5, 1, twobucket.One)
//	if err != nil {
//		// ErrInvalidInput, ErrUnsolvable, ErrOptionViolation, ErrMoveLimit,
//		// context errors or a wrapped OnVisit error
//	}
//	fmt.Println(res.Moves, res.GoalBucket, res.OtherBucket) // 4 one 5
//
//	res, err = twobucket.Solve(
//		7, 11, 2, twobucket.Two,
//		twobucket.WithContext(ctx),
//		twobucket.WithMaxMoves(20),
//		twobucket.WithOnVisit(func(s twobucket.State, moves int) error { return nil }),
//	)
//
// Errors
//
//   - ErrInvalidInput     non-positive capacity or goal, unknown start bucket.
//   - ErrUnsolvable       goal above both capacities, not a multiple of
//     gcd(capOne, capTwo), or search exhausted. The first case also
//     matches ErrInvalidInput.
//   - ErrOptionViolation  negative MaxMoves.
//   - ErrMoveLimit        no solution within MaxMoves.
package twobucket
