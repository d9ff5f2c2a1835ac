//go:build js && wasm

package canvas

import (
	"context"
	"sync"
	"syscall/js"
)

type (
	// Element binds a Canvas to a canvas element on the page.
	Element struct {
		dom     DOM
		canvas  *Canvas
		element js.Value
	}

	// DOM interacts with the page.
	DOM interface {
		NewJsEventFunc(fn func(event js.Value)) js.Func
		NewJsFrameFunc(fn func(timestamp float64)) js.Func
		RequestAnimationFrame(fn js.Func)
		ReleaseJsFuncsOnDone(ctx context.Context, wg *sync.WaitGroup, jsFuncs map[string]js.Func)
	}
)

// NewElement creates a binding between the canvas and the element.
func NewElement(dom DOM, c *Canvas, element js.Value) *Element {
	e := Element{
		dom:     dom,
		canvas:  c,
		element: element,
	}
	return &e
}

// InitDom sizes the element and registers the event listeners that drag tiles.
func (e *Element) InitDom(ctx context.Context, wg *sync.WaitGroup) {
	e.canvas.UpdateSize()
	width, height := e.canvas.Size()
	e.element.Set("width", width)
	e.element.Set("height", height)
	frameFunc := e.dom.NewJsFrameFunc(e.canvas.frame)
	e.canvas.requestFrame = func() {
		e.dom.RequestAnimationFrame(frameFunc)
	}
	jsFuncs := make(map[string]js.Func)
	options := map[string]interface{}{
		"passive": false,
	}
	for fnName, fn := range e.eventFuncs() {
		jsFunc := e.dom.NewJsEventFunc(fn)
		e.element.Call("addEventListener", fnName, jsFunc, options)
		jsFuncs[fnName] = jsFunc
	}
	jsFuncs["frame"] = frameFunc
	wg.Add(1)
	go e.dom.ReleaseJsFuncsOnDone(ctx, wg, jsFuncs)
	e.canvas.SyncTiles()
}

// eventFuncs creates the event listener functions for mouse/touch interaction.
func (e *Element) eventFuncs() map[string]func(event js.Value) {
	var touchPP pixelPosition
	c := e.canvas
	return map[string]func(event js.Value){
		"mousedown": func(event js.Value) {
			c.moveStart(fromMouse(event))
		},
		"mousemove": func(event js.Value) {
			c.moveCursor(fromMouse(event))
		},
		"mouseup": func(event js.Value) {
			c.moveEnd(fromMouse(event))
		},
		"mouseleave": func(event js.Value) {
			c.moveCancel()
		},
		"touchstart": func(event js.Value) {
			touchPP = e.fromTouch(event, touchPP)
			c.moveStart(touchPP)
		},
		"touchmove": func(event js.Value) {
			touchPP = e.fromTouch(event, touchPP)
			c.moveCursor(touchPP)
		},
		"touchend": func(event js.Value) {
			// the event has no touches, use previous touch position
			c.moveEnd(touchPP)
		},
		"touchcancel": func(event js.Value) {
			c.moveCancel()
		},
	}
}

// fromMouse gets the pixelPosition of the mouse event.
func fromMouse(event js.Value) pixelPosition {
	return pixelPosition{
		x: event.Get("offsetX").Int(),
		y: event.Get("offsetY").Int(),
	}
}

// fromTouch gets the pixelPosition of the first touch of the touch event.
// The previous position is returned if the event has no touches.
func (e *Element) fromTouch(event js.Value, previous pixelPosition) pixelPosition {
	touches := event.Get("touches")
	if touches.Length() == 0 {
		e.canvas.log.Printf("no touches for touch event, using previous touch location")
		return previous
	}
	touch := touches.Index(0)
	canvasRect := event.Get("target").Call("getBoundingClientRect")
	return pixelPosition{
		x: touch.Get("clientX").Int() - canvasRect.Get("left").Int(),
		y: touch.Get("clientY").Int() - canvasRect.Get("top").Int(),
	}
}
