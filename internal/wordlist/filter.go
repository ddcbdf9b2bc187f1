package wordlist

import "unicode"

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// FilterPrintable keeps entries made only of printable, non-space characters.
func FilterPrintable(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsPrint(r) || unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
