package render

import (
	"math"

	"github.com/jacobpatterson1549/letter-board/game/board"
	"github.com/jacobpatterson1549/letter-board/game/tile"
)

type (
	// Move is the animation of a tile from one cell to another.
	Move struct {
		ID   tile.ID
		From board.Cell
		To   board.Cell
	}

	// Point is a pixel location on the board.
	Point struct {
		Left int
		Top  int
	}
)

// Transitions lists the tiles that moved between the boards.
// Tiles are matched by id, so the order of the tiles does not matter.
// Tiles that were added or removed do not move.
func Transitions(before, after []tile.Position) []Move {
	from := make(map[tile.ID]board.Cell, len(before))
	for _, tp := range before {
		from[tp.Tile.ID] = board.CellOf(tp)
	}
	var moves []Move
	for _, tp := range after {
		c, ok := from[tp.Tile.ID]
		if !ok {
			continue
		}
		to := board.CellOf(tp)
		if c == to {
			continue
		}
		m := Move{
			ID:   tp.Tile.ID,
			From: c,
			To:   to,
		}
		moves = append(moves, m)
	}
	return moves
}

// At is the location of the tile at the progress of the move, from 0 (start) to 1 (end).
// The progress is clamped to that range.
func (m Move) At(cfg board.Config, progress float64) Point {
	switch {
	case progress < 0, math.IsNaN(progress):
		progress = 0
	case progress > 1:
		progress = 1
	}
	lerp := func(a, b int) int {
		return a + int(math.Round(float64(b-a)*progress))
	}
	return Point{
		Left: lerp(Left(cfg, m.From.X), Left(cfg, m.To.X)),
		Top:  lerp(Top(cfg, m.From.Y), Top(cfg, m.To.Y)),
	}
}
