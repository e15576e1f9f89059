// Package exercises is a small collection of self-contained practice
// exercises, one package each, with no shared state between them.
//
//	twobucket/ — two-bucket water puzzle, minimal moves via breadth-first search
//	school/    — grade-school roster, sorted and safe for concurrent use
//	pangram/   — does a sentence use every letter a..z?
//	rpg/       — role-playing-game player health, mana and spells
//
// Quick example:
//
//	res, _ := twobucket.Solve(3, 5, 1, twobucket.One)
//	fmt.Println(res.Moves, res.GoalBucket, res.OtherBucket) // 4 one 5
//
//	go get github.com/katalvlaran/exercises
package exercises
