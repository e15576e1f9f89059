// Package pangram reports whether a sentence uses every letter of the
// English alphabet at least once.
package pangram

// alphabet has one bit set per ASCII letter a..z.
const alphabet = 1<<26 - 1

// IsPangram reports whether sentence contains all 26 ASCII letters,
// ignoring case. Non-ASCII runes and non-letters do not count.
func IsPangram(sentence string) bool {
	var seen uint32
	for i := 0; i < len(sentence); i++ {
		c := sentence[i]
		switch {
		case 'a' <= c && c <= 'z':
			seen |= 1 << (c - 'a')
		case 'A' <= c && c <= 'Z':
			seen |= 1 << (c - 'A')
		default:
			continue
		}
		if seen == alphabet {
			return true
		}
	}

	return false
}
