//go:build js && wasm

// Package main runs the letter board on a webpage as long as the webpage is open.
package main

import (
	"context"
	"sync"
	"syscall/js"

	"github.com/jacobpatterson1549/letter-board/ui"
)

// main initializes the wasm code for the web dom and runs as long as the browser is open.
func main() {
	f := flags{
		dom:             ui.NewDOM(js.Global()),
		canvasQuery:     ".board>canvas",
		animationMillis: 200,
		tileColor:       "#f5deb3",
		dragColor:       "#1e90ff",
		maxLogItems:     50,
	}
	ctx := context.Background()
	ctx, cancelFunc := context.WithCancel(ctx)
	var wg sync.WaitGroup
	if err := f.initDom(ctx, &wg); err != nil {
		panic("initializing letter board: " + err.Error())
	}
	initBeforeUnloadFn(cancelFunc, &wg)
	wg.Wait() // BLOCKING
}

// initBeforeUnloadFn registers a function to cancel the context when the browser is about to close.
// This should trigger other dom functions to release.
func initBeforeUnloadFn(cancelFunc context.CancelFunc, wg *sync.WaitGroup) {
	wg.Add(1)
	var fn js.Func
	fn = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		cancelFunc()
		fn.Release()
		wg.Done()
		return nil
	})
	global := js.Global()
	global.Call("addEventListener", "beforeunload", fn)
}
