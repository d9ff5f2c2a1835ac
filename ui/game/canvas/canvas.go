// Package canvas contains the logic to draw the board and turn pointer movements into drags.
package canvas

import (
	"errors"
	"sort"
	"strconv"

	"github.com/jacobpatterson1549/letter-board/game/board"
	"github.com/jacobpatterson1549/letter-board/game/score"
	"github.com/jacobpatterson1549/letter-board/game/tile"
	"github.com/jacobpatterson1549/letter-board/log"
	"github.com/jacobpatterson1549/letter-board/ui/render"
)

type (
	// Canvas is the object which draws the board.
	Canvas struct {
		log       log.Logger
		ctx       Context
		Drag      Drag
		scores    score.Table
		draw      drawMetrics
		pointer   pixelPosition
		grab      pixelPosition
		animation animation
		tiles     []tile.Position
		mainColor string
		tileColor string
		dragColor string
		// OnTilesUpdated is called after a drop moves tiles.
		OnTilesUpdated func(tilePositions []tile.Position)
		requestFrame   func()
	}

	// Config contains the parameters to create a Canvas.
	Config struct {
		Log    log.Logger
		Scores score.Table
		// AnimationMillis is how long tiles slide to their new cells.
		AnimationMillis float64
		MainColor       string
		TileColor       string
		DragColor       string
	}

	// Context handles the drawing of the canvas.
	Context interface {
		SetFont(name string)
		SetLineWidth(width float64)
		SetFillColor(name string)
		SetStrokeColor(name string)
		SetGlobalAlpha(alpha float64)
		FillText(text string, x, y int)
		ClearRect(x, y, width, height int)
		FillRect(x, y, width, height int)
		StrokeRect(x, y, width, height int)
	}

	// Drag moves tiles on the board.
	Drag interface {
		Board() *board.Board
		Dragged() (tile.Position, bool)
		OnDragStart(id tile.ID) bool
		IsDragging(id tile.ID) bool
		Hover(dest board.Destination) bool
		IsOver(dest board.Destination) bool
		OnDrop(dest board.Destination) bool
		Cancel()
	}

	// drawMetrics contains the drawing properties for the canvas.
	drawMetrics struct {
		width      int
		height     int
		origin     int
		cellSize   int
		tileLength int
		textOffset int
	}

	// pixelPosition represents a location on the canvas.
	pixelPosition struct {
		x int
		y int
	}

	// animation slides moved tiles to their new cells.
	animation struct {
		moves    map[tile.ID]render.Move
		duration float64
		start    float64
		progress float64
		running  bool
	}
)

const defaultAnimationMillis = 200

// New creates a canvas from the config.
func (cfg Config) New(ctx Context) (*Canvas, error) {
	if err := cfg.validate(ctx); err != nil {
		return nil, errors.New("creating canvas: validation: " + err.Error())
	}
	duration := cfg.AnimationMillis
	if duration <= 0 {
		duration = defaultAnimationMillis
	}
	c := Canvas{
		log:       cfg.Log,
		ctx:       ctx,
		scores:    cfg.Scores,
		mainColor: cfg.MainColor,
		tileColor: cfg.TileColor,
		dragColor: cfg.DragColor,
		animation: animation{
			duration: duration,
		},
		requestFrame: func() {
			// NOOP until bound to an element
		},
	}
	return &c, nil
}

// validate checks the config.
func (cfg Config) validate(ctx Context) error {
	switch {
	case cfg.Log == nil:
		return errors.New("log required")
	case ctx == nil:
		return errors.New("context required")
	}
	return nil
}

// UpdateSize sets the draw properties of the canvas for the board config.
func (c *Canvas) UpdateSize() {
	cfg := c.Drag.Board().Config
	c.draw.origin = cfg.TileOffset
	c.draw.cellSize = cfg.CellSize
	c.draw.tileLength = cfg.CellSize + 2*cfg.TileOffset
	c.draw.textOffset = (c.draw.tileLength * 3) / 20
	c.draw.width = cfg.NumCols*cfg.CellSize + 2*c.draw.origin
	c.draw.height = cfg.NumRows*cfg.CellSize + 2*c.draw.origin
	c.ctx.SetLineWidth(float64(c.draw.tileLength) / 20)
}

// Size is the width and height of the canvas.
func (c *Canvas) Size() (width, height int) {
	return c.draw.width, c.draw.height
}

// SyncTiles copies the tiles from the board without animating.
func (c *Canvas) SyncTiles() {
	c.tiles = c.Drag.Board().Tiles()
	c.animation.running = false
	c.Redraw()
}

// UpdateTiles slides the tiles that moved to their new cells.
// It is called by the drag controller after each drop that changes the tiles.
func (c *Canvas) UpdateTiles(tilePositions []tile.Position) {
	moves := render.Transitions(c.tiles, tilePositions)
	c.tiles = tilePositions
	if len(moves) > 0 {
		c.animation.moves = make(map[tile.ID]render.Move, len(moves))
		for _, m := range moves {
			c.animation.moves[m.ID] = m
		}
		c.animation.start = -1
		c.animation.progress = 0
		c.animation.running = true
		c.requestFrame()
	}
	if c.OnTilesUpdated != nil {
		c.OnTilesUpdated(tilePositions)
	}
}

// frame advances the animation to the time, in milliseconds.
func (c *Canvas) frame(timestamp float64) {
	if !c.animation.running {
		return
	}
	if c.animation.start < 0 {
		c.animation.start = timestamp
	}
	c.animation.progress = (timestamp - c.animation.start) / c.animation.duration
	if c.animation.progress >= 1 {
		c.animation.running = false
	}
	c.Redraw()
	if c.animation.running {
		c.requestFrame()
	}
}

// Redraw draws the canvas.
func (c *Canvas) Redraw() {
	b := c.Drag.Board()
	c.ctx.ClearRect(0, 0, c.draw.width, c.draw.height)
	c.drawSquares(b)
	c.drawTiles(b)
	c.drawDraggedTile(b)
}

// drawSquares paints the board squares, highlighting the one being dragged over.
func (c *Canvas) drawSquares(b *board.Board) {
	c.ctx.SetGlobalAlpha(1)
	c.ctx.SetStrokeColor(c.mainColor)
	for _, s := range render.Squares(b, c.Drag) {
		x := c.draw.origin + s.Left
		y := c.draw.origin + s.Top
		if s.DraggedOver {
			c.ctx.SetFillColor(c.dragColor)
			c.ctx.FillRect(x, y, c.draw.cellSize, c.draw.cellSize)
		}
		c.ctx.StrokeRect(x, y, c.draw.cellSize, c.draw.cellSize)
	}
}

// drawTiles paints the tiles in stacking order.
func (c *Canvas) drawTiles(b *board.Board) {
	styles := render.Styles(b, c.scores, c.Drag)
	sort.SliceStable(styles, func(i, j int) bool {
		return styles[i].ZIndex < styles[j].ZIndex
	})
	for _, s := range styles {
		x := c.draw.origin + s.Left
		y := c.draw.origin + s.Top
		if m, ok := c.animation.moves[s.ID]; ok && c.animation.running {
			p := m.At(b.Config, c.animation.progress)
			x = c.draw.origin + p.Left
			y = c.draw.origin + p.Top
		}
		c.drawTile(x, y, s, c.mainColor)
	}
}

// drawDraggedTile paints the tile being dragged under the pointer.
func (c *Canvas) drawDraggedTile(b *board.Board) {
	tp, ok := c.Drag.Dragged()
	if !ok {
		return
	}
	s := render.Style(b.Config, tp, c.scores, nil)
	x := c.pointer.x - c.grab.x
	y := c.pointer.y - c.grab.y
	c.drawTile(x, y, s, c.dragColor)
}

// drawTile paints the tile with its top-left corner at the coordinates.
func (c *Canvas) drawTile(x, y int, s render.TileStyle, lineColor string) {
	c.ctx.SetGlobalAlpha(s.Opacity)
	c.ctx.SetFillColor(c.tileColor)
	c.ctx.FillRect(x, y, c.draw.tileLength, c.draw.tileLength)
	c.ctx.SetStrokeColor(lineColor)
	c.ctx.StrokeRect(x, y, c.draw.tileLength, c.draw.tileLength)
	c.ctx.SetFillColor(lineColor)
	c.ctx.SetFont(strconv.Itoa(c.draw.tileLength*2/3) + "px sans-serif")
	c.ctx.FillText(s.Letter.String(), x+c.draw.textOffset, y+c.draw.tileLength-c.draw.textOffset)
	c.ctx.SetFont(strconv.Itoa(c.draw.tileLength/4) + "px sans-serif")
	c.ctx.FillText(strconv.Itoa(s.Points), x+c.draw.tileLength*3/4, y+c.draw.tileLength-c.draw.textOffset)
	c.ctx.SetGlobalAlpha(1)
}

// moveStart picks up the tile at the coordinates, if any.
func (c *Canvas) moveStart(pp pixelPosition) {
	c.pointer = pp
	cell, ok := c.cellAt(pp)
	if !ok {
		return
	}
	tp, ok := c.Drag.Board().TileAt(cell)
	if !ok || !c.Drag.OnDragStart(tp.Tile.ID) {
		return
	}
	c.grab = pixelPosition{
		x: pp.x - (c.draw.origin + render.Left(c.Drag.Board().Config, tp.X)),
		y: pp.y - (c.draw.origin + render.Top(c.Drag.Board().Config, tp.Y)),
	}
	c.Redraw()
}

// moveCursor drags the tile being dragged to the coordinates.
func (c *Canvas) moveCursor(pp pixelPosition) {
	c.pointer = pp
	if _, ok := c.Drag.Dragged(); !ok {
		return
	}
	c.Drag.Hover(c.destinationAt(pp))
	c.Redraw()
}

// moveEnd drops the tile being dragged at the coordinates.
func (c *Canvas) moveEnd(pp pixelPosition) {
	c.pointer = pp
	if _, ok := c.Drag.Dragged(); !ok {
		return
	}
	dest := c.destinationAt(pp)
	switch {
	case dest == nil:
		c.Drag.Cancel()
	default:
		c.Drag.OnDrop(dest)
	}
	c.Redraw()
}

// moveCancel drops the tile being dragged without moving it.
func (c *Canvas) moveCancel() {
	if _, ok := c.Drag.Dragged(); !ok {
		return
	}
	c.Drag.Cancel()
	c.Redraw()
}

// cellAt is the board cell at the coordinates.
func (c *Canvas) cellAt(pp pixelPosition) (board.Cell, bool) {
	x := pp.x - c.draw.origin
	y := pp.y - c.draw.origin
	if x < 0 || y < 0 || c.draw.cellSize <= 0 {
		return board.Cell{}, false
	}
	cell := board.Cell{
		X: tile.X(x / c.draw.cellSize),
		Y: tile.Y(y / c.draw.cellSize),
	}
	if !c.Drag.Board().Contains(cell) {
		return board.Cell{}, false
	}
	return cell, true
}

// destinationAt is where a tile dropped at the coordinates would go.
// Nil is returned if the coordinates are off the board.
func (c *Canvas) destinationAt(pp pixelPosition) board.Destination {
	cell, ok := c.cellAt(pp)
	if !ok {
		return nil
	}
	if tp, ok := c.Drag.Board().TileAt(cell); ok {
		return board.TileTarget{Position: tp}
	}
	return cell
}
