package quiz

import "math/rand/v2"

// shuffleStrings is a Fisher-Yates shuffle in place.
func shuffleStrings(s []string) {
	for i := len(s) - 1; i > 0; i-- {
		j := rand.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
