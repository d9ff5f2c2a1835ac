// Package board stores the tiles on a grid and handles queries to read and move them.
package board

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/jacobpatterson1549/letter-board/game/tile"
)

// Board is a snapshot of the tiles on a grid.
// A Board is never modified after it is created: moving tiles creates a new Board.
type Board struct {
	Config
	tiles   []tile.Position
	indexes map[tile.ID]int
	locs    map[Cell]tile.ID
}

var (
	// ErrTileNotFound is returned when a tile to move is not on the board.
	ErrTileNotFound = errors.New("tile not found")
	// ErrInvalidDrop is returned when a tile cannot be dropped at a location.
	ErrInvalidDrop = errors.New("invalid drop")
)

// New creates a board with the tiles at their positions.
// The order of the tiles is kept.
func New(cfg Config, tilePositions []tile.Position) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.New("creating board: validation: " + err.Error())
	}
	tiles := make([]tile.Position, len(tilePositions))
	copy(tiles, tilePositions)
	b := Board{
		Config: cfg,
		tiles:  tiles,
	}
	if err := b.index(); err != nil {
		return nil, fmt.Errorf("creating board: %w", err)
	}
	return &b, nil
}

// index creates the lookups for the tiles, checking that they all fit.
func (b *Board) index() error {
	b.indexes = make(map[tile.ID]int, len(b.tiles))
	b.locs = make(map[Cell]tile.ID, len(b.tiles))
	for i, tp := range b.tiles {
		c := CellOf(tp)
		if !tp.Tile.Ch.Valid() {
			return fmt.Errorf("tile %v has invalid letter %q", tp.Tile.ID, rune(tp.Tile.Ch))
		}
		if _, ok := b.indexes[tp.Tile.ID]; ok {
			return errors.New("duplicate tile id " + strconv.Itoa(int(tp.Tile.ID)))
		}
		if !b.Contains(c) {
			return errors.New("tile " + strconv.Itoa(int(tp.Tile.ID)) + " is off the board at " + c.String())
		}
		if id, ok := b.locs[c]; ok {
			return errors.New("tiles " + strconv.Itoa(int(id)) + " and " + strconv.Itoa(int(tp.Tile.ID)) + " are both at " + c.String())
		}
		b.indexes[tp.Tile.ID] = i
		b.locs[c] = tp.Tile.ID
	}
	return nil
}

// Tiles returns a copy of the tiles on the board in their original order.
func (b Board) Tiles() []tile.Position {
	tiles := make([]tile.Position, len(b.tiles))
	copy(tiles, b.tiles)
	return tiles
}

// NumTiles is the number of tiles on the board.
func (b Board) NumTiles() int {
	return len(b.tiles)
}

// Tile finds the tile with the id.
func (b Board) Tile(id tile.ID) (tile.Position, bool) {
	i, ok := b.indexes[id]
	if !ok {
		return tile.Position{}, false
	}
	return b.tiles[i], true
}

// TileAt finds the tile in the cell.
func (b Board) TileAt(c Cell) (tile.Position, bool) {
	id, ok := b.locs[c]
	if !ok {
		return tile.Position{}, false
	}
	return b.Tile(id)
}

// Occupied determines if any tile is at the coordinates.
func (b Board) Occupied(x tile.X, y tile.Y) bool {
	_, ok := b.locs[Cell{X: x, Y: y}]
	return ok
}

// CanDropOnCell determines if a tile can be dropped directly onto the cell.
// Occupied cells are never drop targets, tiles must be swapped instead.
func (b Board) CanDropOnCell(c Cell) bool {
	return b.Contains(c) && !b.Occupied(c.X, c.Y)
}

// Equal determines if the boards have the same config and the same tiles in the same order.
func (b *Board) Equal(other *Board) bool {
	switch {
	case b == other:
		return true
	case b == nil, other == nil:
		return false
	case b.Config != other.Config, len(b.tiles) != len(other.tiles):
		return false
	}
	for i, tp := range b.tiles {
		if tp != other.tiles[i] {
			return false
		}
	}
	return true
}

// with creates a copy of the board with the moved tiles replacing those with the same ids.
func (b *Board) with(moved ...tile.Position) *Board {
	tiles := b.Tiles()
	for _, tp := range moved {
		tiles[b.indexes[tp.Tile.ID]] = tp
	}
	b2 := Board{
		Config: b.Config,
		tiles:  tiles,
	}
	if err := b2.index(); err != nil {
		panic("moving tiles on board: " + err.Error()) // the moves are checked before they are made
	}
	return &b2
}
