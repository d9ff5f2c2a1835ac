// Package drag turns drag gestures into tile placements.
// It does not depend on any event source: the canvas, a framework's drag api or a test can drive it.
package drag

import (
	"errors"

	"github.com/jacobpatterson1549/letter-board/game/board"
	"github.com/jacobpatterson1549/letter-board/game/tile"
	"github.com/jacobpatterson1549/letter-board/log"
)

type (
	// Controller tracks the current drag gesture and owns the board it moves tiles on.
	// Only one gesture is ever in progress.
	Controller struct {
		log         log.Logger
		board       *board.Board
		updateTiles func(tilePositions []tile.Position)
		state       State
		payload     tile.Position
		over        board.Destination
	}

	// Config contains the parameters to create a Controller.
	Config struct {
		// Log records drops that could not be made.
		Log log.Logger
		// UpdateTiles is called with every tile when a drop moves tiles.
		UpdateTiles func(tilePositions []tile.Position)
	}

	// Source is something that tiles can be dragged from.
	Source interface {
		OnDragStart(id tile.ID) bool
		IsDragging(id tile.ID) bool
	}

	// Target is something that tiles can be dropped on.
	Target interface {
		OnDrop(dest board.Destination) bool
		IsOver(dest board.Destination) bool
	}

	// State is the stage of the drag gesture.
	State int
)

const (
	// Idle means no tile is being dragged.
	Idle State = iota
	// Dragging means a tile has been picked up.
	Dragging
)

var (
	_ Source = (*Controller)(nil)
	_ Target = (*Controller)(nil)
)

// New creates a drag controller for the board.
func (cfg Config) New(b *board.Board) (*Controller, error) {
	if err := cfg.validate(b); err != nil {
		return nil, errors.New("creating drag controller: validation: " + err.Error())
	}
	c := Controller{
		log:         cfg.Log,
		board:       b,
		updateTiles: cfg.UpdateTiles,
	}
	return &c, nil
}

// validate checks the config and board.
func (cfg Config) validate(b *board.Board) error {
	switch {
	case cfg.Log == nil:
		return errors.New("log required")
	case cfg.UpdateTiles == nil:
		return errors.New("update tiles func required")
	case b == nil:
		return errors.New("board required")
	}
	return nil
}

// Board is the current snapshot of the tiles.
func (c *Controller) Board() *board.Board {
	return c.board
}

// State is the stage of the current gesture.
func (c *Controller) State() State {
	return c.state
}

// Dragged returns the tile being dragged, if any.
func (c *Controller) Dragged() (tile.Position, bool) {
	if c.state != Dragging {
		return tile.Position{}, false
	}
	return c.payload, true
}

// OnDragStart picks up the tile with the id.
// False is returned if another tile is being dragged or the tile is not on the board.
func (c *Controller) OnDragStart(id tile.ID) bool {
	if c.state != Idle {
		return false
	}
	tp, ok := c.board.Tile(id)
	if !ok {
		c.log.Printf("cannot drag tile %v: %v", id, board.ErrTileNotFound)
		return false
	}
	c.state = Dragging
	c.payload = tp
	c.over = nil
	return true
}

// IsDragging determines if the tile with the id is being dragged.
func (c *Controller) IsDragging(id tile.ID) bool {
	return c.state == Dragging && c.payload.Tile.ID == id
}

// Hover records the destination under the dragged tile.
// Destinations that cannot accept the tile are not recorded: the gesture is then over nothing.
func (c *Controller) Hover(dest board.Destination) bool {
	if c.state != Dragging {
		return false
	}
	dest = normalize(dest)
	if !c.accepts(dest) {
		c.over = nil
		return false
	}
	c.over = dest
	return true
}

// IsOver determines if the dragged tile was last hovered over the destination.
func (c *Controller) IsOver(dest board.Destination) bool {
	if c.state != Dragging || c.over == nil {
		return false
	}
	return sameDestination(c.over, normalize(dest))
}

// OnDrop places the dragged tile at the destination and ends the gesture.
// The tiles are updated at most once per gesture, and only if a tile moved.
// A tile dropped on itself is a successful drop that moves nothing: true is returned without updating the tiles.
// False is returned if the destination refused the tile, such as an occupied cell.
func (c *Controller) OnDrop(dest board.Destination) bool {
	if c.state != Dragging {
		return false
	}
	defer c.Cancel()
	dest = normalize(dest)
	if !c.accepts(dest) {
		return false
	}
	b2, err := c.board.Place(c.payload, dest)
	if err != nil {
		c.log.Printf("dropping tile %v: %v", c.payload.Tile.ID, err)
		return false
	}
	if !b2.Equal(c.board) {
		c.board = b2
		c.updateTiles(b2.Tiles())
	}
	return true
}

// Cancel ends the gesture without moving any tiles.
func (c *Controller) Cancel() {
	c.state = Idle
	c.payload = tile.Position{}
	c.over = nil
}

// SetTiles replaces the tiles on the board, keeping the board config.
// Any gesture in progress is cancelled.
func (c *Controller) SetTiles(tilePositions []tile.Position) error {
	b, err := board.New(c.board.Config, tilePositions)
	if err != nil {
		return err
	}
	c.Cancel()
	c.board = b
	return nil
}

// accepts determines if the dragged tile can be dropped on the destination.
// Occupied cells never accept drops, tiles are swapped by dropping them on other tiles.
func (c *Controller) accepts(dest board.Destination) bool {
	switch d := dest.(type) {
	case board.Cell:
		return c.board.CanDropOnCell(d)
	case board.TileTarget:
		_, ok := c.board.Tile(d.Tile.ID)
		return ok
	}
	return false
}

// normalize dereferences tile target pointers so destinations can be compared.
func normalize(dest board.Destination) board.Destination {
	if tt, ok := dest.(*board.TileTarget); ok {
		if tt == nil {
			return nil
		}
		return *tt
	}
	return dest
}

// sameDestination compares cells by coordinates and tile targets by tile id.
func sameDestination(a, b board.Destination) bool {
	if ta, ok := a.(board.TileTarget); ok {
		tb, ok := b.(board.TileTarget)
		return ok && ta.Tile.ID == tb.Tile.ID
	}
	return a == b
}

// String describes the state.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	}
	return "unknown"
}
