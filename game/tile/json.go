package tile

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// MarshalJSON writes the letter as a one character string.
func (l Letter) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON reads a one character string, validating it like New does.
func (l *Letter) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("letter must be a string: %w", err)
	}
	if utf8.RuneCountInString(s) != 1 {
		return fmt.Errorf("letter must be exactly 1 character: %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	l2, err := newLetter(r)
	if err != nil {
		return err
	}
	*l = *l2
	return nil
}
