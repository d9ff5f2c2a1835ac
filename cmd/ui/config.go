//go:build js && wasm

package main

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"syscall/js"
	"time"

	"github.com/jacobpatterson1549/letter-board/game/tile"
	"github.com/jacobpatterson1549/letter-board/ui"
	"github.com/jacobpatterson1549/letter-board/ui/drag"
	"github.com/jacobpatterson1549/letter-board/ui/game/canvas"
	"github.com/jacobpatterson1549/letter-board/ui/host"
	"github.com/jacobpatterson1549/letter-board/ui/log"
)

type (
	// flags contains options for the ui.
	flags struct {
		dom             *ui.DOM
		canvasQuery     string
		animationMillis float64
		tileColor       string
		dragColor       string
		maxLogItems     int
	}

	// domInitializer adds functions to the dom.
	domInitializer interface {
		InitDom(ctx context.Context, wg *sync.WaitGroup)
	}

	// hostFuncs lets the page replace the tiles on the board.
	hostFuncs struct {
		dom    *ui.DOM
		log    *log.Log
		drag   *drag.Controller
		canvas *canvas.Canvas
	}
)

// hostName is the global object the page uses to talk to the board.
const hostName = "letterBoard"

// initDom creates, initializes, and links up dom components.
func (f *flags) initDom(ctx context.Context, wg *sync.WaitGroup) error {
	domInitializers, err := f.createDomInitializers()
	if err != nil {
		return err
	}
	for _, di := range domInitializers {
		di.InitDom(ctx, wg)
	}
	return nil
}

// createDomInitializers creates the components that need to be initialized.
// The board setup is read from the data attributes of the canvas element.
func (f *flags) createDomInitializers() ([]domInitializer, error) {
	timeFunc := func() int64 {
		return time.Now().Unix()
	}
	pageLog := log.New(f.dom, timeFunc)
	pageLog.MaxItems = f.maxLogItems
	element := f.dom.QuerySelector(f.canvasQuery)
	if !element.Truthy() {
		return nil, errors.New("no canvas element for " + f.canvasQuery)
	}
	setup, err := host.ParseSetup(
		f.dom.Data(element, "config"),
		f.dom.Data(element, "tiles"),
		f.dom.Data(element, "scores"),
	)
	if err != nil {
		return nil, err
	}
	b, err := setup.Board()
	if err != nil {
		return nil, err
	}
	canvasCfg := canvas.Config{
		Log:             pageLog,
		Scores:          setup.Scores,
		AnimationMillis: f.animationMillis,
		MainColor:       f.dom.Color(element),
		TileColor:       f.tileColor,
		DragColor:       f.dragColor,
	}
	c, err := canvasCfg.New(canvas.NewContext(element))
	if err != nil {
		return nil, err
	}
	dragCfg := drag.Config{
		Log:         pageLog,
		UpdateTiles: c.UpdateTiles,
	}
	d, err := dragCfg.New(b)
	if err != nil {
		return nil, err
	}
	c.Drag = d // [circular reference]
	c.OnTilesUpdated = func(tilePositions []tile.Position) {
		tilesJSON, err := host.EncodeTiles(tilePositions)
		if err != nil {
			pageLog.Printf("reporting tiles: %v", err)
			return
		}
		f.dom.Call(hostName, "onTilesUpdated", tilesJSON)
	}
	hf := hostFuncs{
		dom:    f.dom,
		log:    pageLog,
		drag:   d,
		canvas: c,
	}
	e := canvas.NewElement(f.dom, c, element)
	return []domInitializer{pageLog, e, hf}, nil
}

// InitDom registers the functions the page calls.
func (hf hostFuncs) InitDom(ctx context.Context, wg *sync.WaitGroup) {
	jsFuncs := map[string]js.Func{
		"setTiles": hf.dom.NewJsArgFunc(hf.setTiles),
	}
	hf.dom.RegisterFuncs(ctx, wg, hostName, jsFuncs)
}

// setTiles replaces the tiles with the json array of tile positions.
// Failures are also shown in the page log.
func (hf hostFuncs) setTiles(tilesJSON string) error {
	if err := hf.replaceTiles(tilesJSON); err != nil {
		hf.log.Error("setting tiles: " + err.Error())
		return err
	}
	hf.log.Info("tiles set: " + strconv.Itoa(hf.drag.Board().NumTiles()) + " on the board")
	return nil
}

// replaceTiles gives the board new tiles and redraws it.
func (hf hostFuncs) replaceTiles(tilesJSON string) error {
	tilePositions, err := host.DecodeTiles(tilesJSON)
	if err != nil {
		return err
	}
	if err := hf.drag.SetTiles(tilePositions); err != nil {
		return err
	}
	hf.canvas.SyncTiles()
	return nil
}
