package board

import (
	"errors"
	"strconv"

	"github.com/jacobpatterson1549/letter-board/game/tile"
)

type (
	// Config stores fields for creating a board.
	Config struct {
		NumCols    int `json:"c"`
		NumRows    int `json:"r"`
		CellSize   int `json:"cellSize"`
		TileOffset int `json:"tileOffset"`
	}

	// Cell is an addressable location on the board.
	// Cells are not stored, they are derived from the config.
	Cell struct {
		X tile.X `json:"x"`
		Y tile.Y `json:"y"`
	}
)

const (
	defaultCols       = 10
	defaultRows       = 7
	defaultCellSize   = 56
	defaultTileOffset = 3
)

// DefaultConfig creates the config for a 10x7 board.
func DefaultConfig() Config {
	return Config{
		NumCols:    defaultCols,
		NumRows:    defaultRows,
		CellSize:   defaultCellSize,
		TileOffset: defaultTileOffset,
	}
}

// Validate returns an error if the dimensions of the board are invalid.
func (cfg Config) Validate() error {
	switch {
	case cfg.NumCols < 1:
		return errors.New("not enough columns on board, must be >= 1")
	case cfg.NumRows < 1:
		return errors.New("not enough rows on board, must be >= 1")
	case cfg.CellSize < 1:
		return errors.New("cell size must be positive")
	case cfg.TileOffset < 0, cfg.TileOffset >= cfg.CellSize:
		return errors.New("tile offset must be between 0 and the cell size (" + strconv.Itoa(cfg.CellSize) + ")")
	}
	return nil
}

// Contains determines if the cell is on the board.
func (cfg Config) Contains(c Cell) bool {
	return 0 <= c.X && int(c.X) < cfg.NumCols &&
		0 <= c.Y && int(c.Y) < cfg.NumRows
}

// Grid lists every cell on the board, row by row.
func (cfg Config) Grid() []Cell {
	return BuildGrid(cfg.NumCols, cfg.NumRows)
}

// BuildGrid creates the cells of a width x height grid in row-major order.
func BuildGrid(width, height int) []Cell {
	if width <= 0 || height <= 0 {
		return nil
	}
	cells := make([]Cell, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cells = append(cells, Cell{X: tile.X(x), Y: tile.Y(y)})
		}
	}
	return cells
}

// CellOf returns the cell the tile is on.
func CellOf(tp tile.Position) Cell {
	return Cell{X: tp.X, Y: tp.Y}
}

// String formats the cell as (x,y).
func (c Cell) String() string {
	return "(" + strconv.Itoa(int(c.X)) + "," + strconv.Itoa(int(c.Y)) + ")"
}
