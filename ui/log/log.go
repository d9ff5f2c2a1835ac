//go:build js && wasm

// Package log writes messages to the log element of the page.
package log

import (
	"context"
	"fmt"
	"sync"
	"syscall/js"

	"github.com/jacobpatterson1549/letter-board/log"
)

type (
	// Log shows board messages on the page.
	// The log element holds a template for items and a scroll element that items are added to.
	Log struct {
		dom DOM
		// TimeFunc is a function which should supply the current time since the unix epoch.
		// This is used for logging message timestamps
		TimeFunc func() int64
		// MaxItems is the most items kept in the log, or zero for no limit.
		MaxItems int
	}

	// DOM interacts with the page.
	DOM interface {
		QuerySelector(query string) js.Value
		SetHidden(query string, hidden bool)
		FormatTime(utcSeconds int64) string
		CloneElement(query string) js.Value
		NewJsFunc(fn func()) js.Func
		RegisterFuncs(ctx context.Context, wg *sync.WaitGroup, parentName string, jsFuncs map[string]js.Func)
	}
)

const (
	logQuery      = ".log"
	templateQuery = ".log>template"
	scrollQuery   = ".log>.scroll"
)

var _ log.Logger = (*Log)(nil)

// New creates a page log.
func New(dom DOM, timeFunc func() int64) *Log {
	l := Log{
		dom:      dom,
		TimeFunc: timeFunc,
	}
	return &l
}

// InitDom registers log dom functions.
func (l *Log) InitDom(ctx context.Context, wg *sync.WaitGroup) {
	jsFuncs := map[string]js.Func{
		"clear": l.dom.NewJsFunc(l.Clear),
	}
	l.dom.RegisterFuncs(ctx, wg, "log", jsFuncs)
}

// Info logs an info-styled message.
func (l *Log) Info(text string) {
	l.add("info", text)
}

// Warning logs an warning-styled message.
func (l *Log) Warning(text string) {
	l.add("warning", text)
}

// Error logs an error-styled message.
func (l *Log) Error(text string) {
	l.add("error", text)
}

// Printf logs a formatted warning-styled message.
// Arguments are handled in the manner of fmt.Printf.
func (l *Log) Printf(format string, v ...interface{}) {
	l.Warning(fmt.Sprintf(format, v...))
}

// Clear removes all items and hides the log.
func (l *Log) Clear() {
	scroll := l.dom.QuerySelector(scrollQuery)
	scroll.Set("innerHTML", "")
	l.dom.SetHidden(logQuery, true)
}

// add shows the log and appends an item with the class, scrolling to it.
func (l *Log) add(class, text string) {
	l.dom.SetHidden(logQuery, false)
	clone := l.dom.CloneElement(templateQuery)
	item := clone.Get("children").Index(0)
	item.Set("textContent", l.dom.FormatTime(l.TimeFunc())+" : "+text)
	item.Set("className", class)
	scroll := l.dom.QuerySelector(scrollQuery)
	scroll.Call("appendChild", item)
	l.trim(scroll)
	scrollTop := scroll.Get("scrollHeight").Int() - scroll.Get("clientHeight").Int()
	scroll.Set("scrollTop", scrollTop)
}

// trim removes the oldest items when there are more than MaxItems.
func (l *Log) trim(scroll js.Value) {
	if l.MaxItems <= 0 {
		return
	}
	for n := scroll.Get("childElementCount").Int(); n > l.MaxItems; n-- {
		scroll.Get("firstElementChild").Call("remove")
	}
}
