//go:build js && wasm

// Package ui contains the browser client for the board.
// It compiles to webassembly to let players drag tiles in their browsers.
package ui

import (
	"syscall/js"
	"time"
)

// DOM contains the javascript bindings for the page.
type DOM struct {
	global js.Value
}

// NewDOM creates a DOM for the global javascript value, which is usually js.Global().
func NewDOM(global js.Value) *DOM {
	dom := DOM{
		global: global,
	}
	return &dom
}

// QuerySelector returns the first element returned by the query from root of the document.
func (dom *DOM) QuerySelector(query string) js.Value {
	document := dom.global.Get("document")
	return document.Call("querySelector", query)
}

// SetHidden shows or hides the element.
func (dom *DOM) SetHidden(query string, hidden bool) {
	element := dom.QuerySelector(query)
	if !element.Truthy() {
		return
	}
	element.Set("hidden", hidden)
}

// FormatTime formats a datetime to HH:MM:SS.
func (dom *DOM) FormatTime(utcSeconds int64) string {
	t := time.Unix(utcSeconds, 0).Local() // uses local timezone
	return t.Format("15:04:05")
}

// CloneElement creates a clone of the element, which should be a template.
func (dom *DOM) CloneElement(query string) js.Value {
	templateElement := dom.QuerySelector(query)
	contentElement := templateElement.Get("content")
	clone := contentElement.Call("cloneNode", true)
	return clone
}

// Color returns the text color of the element after css has been applied.
func (dom *DOM) Color(element js.Value) string {
	computedStyle := dom.global.Call("getComputedStyle", element)
	color := computedStyle.Get("color")
	return color.String()
}

// Data returns the data attribute of the element with the name, or "" if it is not set.
func (dom *DOM) Data(element js.Value, name string) string {
	dataset := element.Get("dataset")
	if !dataset.Truthy() {
		return ""
	}
	value := dataset.Get(name)
	if value.Type() != js.TypeString {
		return ""
	}
	return value.String()
}

// RequestAnimationFrame schedules the function to be called before the next repaint.
func (dom *DOM) RequestAnimationFrame(fn js.Func) {
	dom.global.Call("requestAnimationFrame", fn)
}

// Call calls the function on the parent object, if it exists.
func (dom *DOM) Call(parentName, fnName string, args ...interface{}) {
	parent := dom.global.Get(parentName)
	if !parent.Truthy() {
		return
	}
	fn := parent.Get(fnName)
	if fn.Type() != js.TypeFunction {
		return
	}
	parent.Call(fnName, args...)
}

// alert shows a popup in the browser.
func (dom *DOM) alert(message string) {
	dom.global.Call("alert", message)
}
