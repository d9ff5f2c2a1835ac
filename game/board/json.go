package board

import (
	"encoding/json"

	"github.com/jacobpatterson1549/letter-board/game/tile"
)

// jsonBoard is used for serialization with the json/encoding package
type jsonBoard struct {
	TilePositions []tile.Position `json:"tilePositions"`
	Config        *Config         `json:"config,omitempty"`
}

// MarshalJSON implements the encoding/json.Marshaler interface.
// Returns an object containing the array of tile positions and the board config.
func (b Board) MarshalJSON() ([]byte, error) {
	tilePositions := b.Tiles()
	cfg := b.Config
	jb := jsonBoard{
		TilePositions: tilePositions,
		Config:        &cfg,
	}
	return json.Marshal(jb)
}

// UnmarshalJSON implements the encoding/json.Unmarshaler interface.
// The default config is used if none is specified.
func (b *Board) UnmarshalJSON(d []byte) error {
	var jb jsonBoard
	if err := json.Unmarshal(d, &jb); err != nil {
		return err
	}
	cfg := DefaultConfig()
	if jb.Config != nil {
		cfg = *jb.Config
	}
	b2, err := New(cfg, jb.TilePositions)
	if err != nil {
		return err
	}
	*b = *b2
	return nil
}
