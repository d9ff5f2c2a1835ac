// Package render derives how the board and its tiles look from a board snapshot.
package render

import (
	"github.com/jacobpatterson1549/letter-board/game/board"
	"github.com/jacobpatterson1549/letter-board/game/score"
	"github.com/jacobpatterson1549/letter-board/game/tile"
)

type (
	// TileStyle is the drawing information for a tile.
	TileStyle struct {
		ID      tile.ID
		Letter  tile.Letter
		Points  int
		Left    int
		Top     int
		ZIndex  int
		Opacity float64
	}

	// SquareStyle is the drawing information for a board square.
	SquareStyle struct {
		board.Cell
		Left        int
		Top         int
		Occupied    bool
		DraggedOver bool
	}

	// Hover reports whether a dragged tile is over a destination.
	Hover interface {
		IsOver(dest board.Destination) bool
	}

	// DragState reports which tile is being dragged.
	DragState interface {
		IsDragging(id tile.ID) bool
	}
)

const (
	liftedOpacity = 0.5
	restOpacity   = 1
)

// Left is the distance of the left edge of a tile in the column from the left of the board.
func Left(cfg board.Config, x tile.X) int {
	return int(x)*cfg.CellSize - cfg.TileOffset
}

// Top is the distance of the top edge of a tile in the row from the top of the board.
func Top(cfg board.Config, y tile.Y) int {
	return int(y)*cfg.CellSize - cfg.TileOffset
}

// ZIndex is the stacking order of a tile in the cell.
// Each cell has its own order, which grows away from the top-left corner.
func ZIndex(cfg board.Config, c board.Cell) int {
	return (int(c.X)+1)*(cfg.NumRows+1) + int(c.Y) + 1
}

// Styles creates the tile styles of the board, in the order of its tiles.
func Styles(b *board.Board, scores score.Table, ds DragState) []TileStyle {
	tiles := b.Tiles()
	styles := make([]TileStyle, len(tiles))
	for i, tp := range tiles {
		styles[i] = Style(b.Config, tp, scores, ds)
	}
	return styles
}

// Style creates the style of the tile.
// A nil DragState means nothing is being dragged.
func Style(cfg board.Config, tp tile.Position, scores score.Table, ds DragState) TileStyle {
	opacity := float64(restOpacity)
	if ds != nil && ds.IsDragging(tp.Tile.ID) {
		opacity = liftedOpacity
	}
	return TileStyle{
		ID:      tp.Tile.ID,
		Letter:  tp.Tile.Ch,
		Points:  scores.Points(tp.Tile.Ch),
		Left:    Left(cfg, tp.X),
		Top:     Top(cfg, tp.Y),
		ZIndex:  ZIndex(cfg, board.CellOf(tp)),
		Opacity: opacity,
	}
}

// Squares creates the styles of every square of the board in row-major order.
// A nil Hover means nothing is being dragged.
func Squares(b *board.Board, h Hover) []SquareStyle {
	grid := b.Grid()
	squares := make([]SquareStyle, len(grid))
	for i, c := range grid {
		squares[i] = SquareStyle{
			Cell:        c,
			Left:        int(c.X) * b.CellSize,
			Top:         int(c.Y) * b.CellSize,
			Occupied:    b.Occupied(c.X, c.Y),
			DraggedOver: h != nil && h.IsOver(c),
		}
	}
	return squares
}
