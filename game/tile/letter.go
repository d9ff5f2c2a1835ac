package tile

import (
	"fmt"
	"unicode"
)

// Letter is the value of a tile, always an uppercase A-Z rune.
type Letter rune

// newLetter creates a Letter from the rune.
// Lowercase letters are stored in uppercase.
func newLetter(r rune) (*Letter, error) {
	u := unicode.ToUpper(r)
	if u < 'A' || 'Z' < u {
		return nil, fmt.Errorf("invalid letter %q: want A-Z", r)
	}
	l := Letter(u)
	return &l, nil
}

// Valid determines if the letter is in the A-Z range.
func (l Letter) Valid() bool {
	return 'A' <= l && l <= 'Z'
}

// String returns the letter as a string.
func (l Letter) String() string {
	return string(l)
}

// Lower returns the lowercase form of the letter, as used by score tables.
func (l Letter) Lower() string {
	return string(unicode.ToLower(rune(l)))
}
