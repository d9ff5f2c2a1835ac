// Package host reads the board setup supplied by the page and encodes tile changes for it.
package host

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jacobpatterson1549/letter-board/game/board"
	"github.com/jacobpatterson1549/letter-board/game/score"
	"github.com/jacobpatterson1549/letter-board/game/tile"
)

// Setup is everything needed to show a board.
type Setup struct {
	Config board.Config
	Tiles  []tile.Position
	Scores score.Table
}

// ParseSetup reads the json config, tiles, and score table.
// Empty values use the default 10x7 board, no tiles, and the standard letter scores.
func ParseSetup(configJSON, tilesJSON, scoresJSON string) (*Setup, error) {
	s := Setup{
		Config: board.DefaultConfig(),
	}
	if len(strings.TrimSpace(configJSON)) != 0 {
		if err := json.Unmarshal([]byte(configJSON), &s.Config); err != nil {
			return nil, fmt.Errorf("parsing board config: %w", err)
		}
	}
	tiles, err := DecodeTiles(tilesJSON)
	if err != nil {
		return nil, err
	}
	s.Tiles = tiles
	switch {
	case len(strings.TrimSpace(scoresJSON)) == 0:
		s.Scores = score.Standard()
	default:
		scores, err := score.Parse(strings.NewReader(scoresJSON))
		if err != nil {
			return nil, err
		}
		s.Scores = scores
	}
	return &s, nil
}

// Board creates the board for the setup.
func (s Setup) Board() (*board.Board, error) {
	return board.New(s.Config, s.Tiles)
}

// DecodeTiles reads a json array of tile positions.
func DecodeTiles(tilesJSON string) ([]tile.Position, error) {
	if len(strings.TrimSpace(tilesJSON)) == 0 {
		return nil, nil
	}
	var tiles []tile.Position
	if err := json.Unmarshal([]byte(tilesJSON), &tiles); err != nil {
		return nil, fmt.Errorf("parsing tiles: %w", err)
	}
	return tiles, nil
}

// EncodeTiles writes the tile positions as a json array.
func EncodeTiles(tilePositions []tile.Position) (string, error) {
	if tilePositions == nil {
		tilePositions = []tile.Position{}
	}
	b, err := json.Marshal(tilePositions)
	if err != nil {
		return "", fmt.Errorf("encoding tiles: %w", err)
	}
	return string(b), nil
}
