// Package tile contains the lettered pieces that are dragged around a board.
package tile

type (
	// Tile is a piece in the game.
	// The ID never changes once the tile is created.
	Tile struct {
		ID ID     `json:"id"`
		Ch Letter `json:"ch"`
	}

	// Position represents a tile and its location on a board.
	// It is also the payload carried by a drag gesture.
	Position struct {
		Tile Tile `json:"tile"`
		X    X    `json:"x"`
		Y    Y    `json:"y"`
	}

	// ID is the id of a tile.
	ID int
	// X is the x position of a tile (column).
	X int
	// Y is the y position of a tile (row).
	Y int
)

// New creates a new Tile, returning an error if the rune is not a letter in the A-Z range.
// Lowercase letters are stored in uppercase.
func New(id ID, r rune) (*Tile, error) {
	ch, err := newLetter(r)
	if err != nil {
		return nil, err
	}
	t := Tile{
		ID: id,
		Ch: *ch,
	}
	return &t, nil
}

// NewPosition creates a tile at the location.
func NewPosition(id ID, r rune, x X, y Y) (*Position, error) {
	t, err := New(id, r)
	if err != nil {
		return nil, err
	}
	tp := Position{
		Tile: *t,
		X:    x,
		Y:    y,
	}
	return &tp, nil
}

// MoveTo returns a copy of the position with the new coordinates.
// The tile keeps its id and letter.
func (tp Position) MoveTo(x X, y Y) Position {
	tp.X = x
	tp.Y = y
	return tp
}

// SameCell determines if both positions are at the same coordinates.
func (tp Position) SameCell(other Position) bool {
	return tp.X == other.X && tp.Y == other.Y
}
