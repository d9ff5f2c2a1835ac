// Package score maps tile letters to point values.
package score

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/jacobpatterson1549/letter-board/game/tile"
)

type (
	// Table is a read-only lookup of point values by lowercase letter.
	// It is supplied by the host page.
	Table map[string]Entry

	// Entry is the point value of a letter.
	Entry struct {
		Points int `json:"points"`
	}
)

// Points returns the value of the letter.
// Letters missing from the table are worth nothing.
func (t Table) Points(l tile.Letter) int {
	e, ok := t[l.Lower()]
	if !ok {
		return 0
	}
	return e.Points
}

// Parse reads a table from json in the form {"a":{"points":1}}.
// Keys are normalized to lowercase.
func Parse(r io.Reader) (Table, error) {
	var m map[string]Entry
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("decoding score table: %w", err)
	}
	t := make(Table, len(m))
	for k, e := range m {
		runes := []rune(k)
		if len(runes) != 1 || !unicode.IsLetter(runes[0]) {
			return nil, errors.New("score table key must be a single letter: " + k)
		}
		t[strings.ToLower(k)] = e
	}
	return t, nil
}

// Standard creates a table with the usual english letter values.
func Standard() Table {
	values := map[int]string{
		1:  "aeilnorstu",
		2:  "dg",
		3:  "bcmp",
		4:  "fhvwy",
		5:  "k",
		8:  "jx",
		10: "qz",
	}
	t := make(Table, 26)
	for points, letters := range values {
		for _, r := range letters {
			t[string(r)] = Entry{Points: points}
		}
	}
	return t
}
