package board

import (
	"fmt"

	"github.com/jacobpatterson1549/letter-board/game/tile"
)

type (
	// Destination is where a dragged tile is dropped: either a Cell or a TileTarget.
	Destination interface {
		destination()
	}

	// TileTarget is the tile that another tile is dropped onto.
	TileTarget struct {
		tile.Position
	}
)

func (Cell) destination()       {}
func (TileTarget) destination() {}

// Place moves the dropped tile to the destination, returning the new board.
// Dropping onto a cell moves only the dropped tile.
// Dropping onto another tile swaps the positions of the two tiles.
// Tiles are found by id; the coordinates of the dropped tile are read from the board, not the argument.
// If the tiles cannot be placed, the unchanged board is returned with an error describing why.
func (b *Board) Place(dropped tile.Position, dest Destination) (*Board, error) {
	src, ok := b.Tile(dropped.Tile.ID)
	if !ok {
		return b, fmt.Errorf("placing tile %v: %w", dropped.Tile.ID, ErrTileNotFound)
	}
	switch d := dest.(type) {
	case Cell:
		return b.moveToCell(src, d)
	case TileTarget:
		return b.swap(src, d.Tile.ID)
	case *TileTarget:
		if d != nil {
			return b.swap(src, d.Tile.ID)
		}
	}
	return b, fmt.Errorf("placing tile %v at %v: %w", src.Tile.ID, dest, ErrInvalidDrop)
}

// moveToCell moves the tile to an empty cell.
func (b *Board) moveToCell(src tile.Position, c Cell) (*Board, error) {
	if !b.Contains(c) {
		return b, fmt.Errorf("moving tile %v to %v: off the board: %w", src.Tile.ID, c, ErrInvalidDrop)
	}
	if id, ok := b.locs[c]; ok {
		if id == src.Tile.ID {
			return b, nil
		}
		return b, fmt.Errorf("moving tile %v to %v: occupied by tile %v: %w", src.Tile.ID, c, id, ErrInvalidDrop)
	}
	moved := src.MoveTo(c.X, c.Y)
	return b.with(moved), nil
}

// swap exchanges the cells of the two tiles.
// Both new positions come from the board before either tile is moved.
func (b *Board) swap(src tile.Position, targetID tile.ID) (*Board, error) {
	dst, ok := b.Tile(targetID)
	if !ok {
		return b, fmt.Errorf("swapping tile %v with tile %v: %w", src.Tile.ID, targetID, ErrTileNotFound)
	}
	if src.Tile.ID == dst.Tile.ID {
		return b, nil
	}
	movedSrc := src.MoveTo(dst.X, dst.Y)
	movedDst := dst.MoveTo(src.X, src.Y)
	return b.with(movedSrc, movedDst), nil
}
