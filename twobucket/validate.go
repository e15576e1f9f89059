package twobucket

import "fmt"

// validate rejects malformed input and goals that are provably unreachable,
// so the search only runs when a solution exists.
func validate(capOne, capTwo, goal int, start Bucket) error {
	if capOne <= 0 || capTwo <= 0 {
		return fmt.Errorf("%w: capacities must be positive (%d, %d)", ErrInvalidInput, capOne, capTwo)
	}
	if goal <= 0 {
		return fmt.Errorf("%w: goal must be positive (%d)", ErrInvalidInput, goal)
	}
	if !start.Valid() {
		return fmt.Errorf("%w: unknown start %s", ErrInvalidInput, start)
	}
	if goal > max(capOne, capTwo) {
		return fmt.Errorf("%w: %w: goal %d exceeds both capacities (%d, %d)",
			ErrUnsolvable, ErrInvalidInput, goal, capOne, capTwo)
	}
	// every reachable volume is a multiple of gcd(capOne, capTwo)
	if g := gcd(capOne, capTwo); goal%g != 0 {
		return fmt.Errorf("%w: goal %d is not a multiple of gcd(%d, %d) = %d",
			ErrUnsolvable, goal, capOne, capTwo, g)
	}

	return nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
