//go:build js && wasm

package log

import (
	"context"
	"sync"
	"syscall/js"
)

// mockDOM records the elements the log changes.
type mockDOM struct {
	hidden   map[string]bool
	elements map[string]js.Value
	clone    js.Value
	times    []int64
	parents  []string
	funcs    map[string]js.Func
}

func (m *mockDOM) QuerySelector(query string) js.Value {
	return m.elements[query]
}

func (m *mockDOM) SetHidden(query string, hidden bool) {
	if m.hidden == nil {
		m.hidden = make(map[string]bool)
	}
	m.hidden[query] = hidden
}

func (m *mockDOM) FormatTime(utcSeconds int64) string {
	m.times = append(m.times, utcSeconds)
	return "12:34:56"
}

func (m *mockDOM) CloneElement(query string) js.Value {
	return m.clone
}

func (m *mockDOM) NewJsFunc(fn func()) js.Func {
	return js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		fn()
		return nil
	})
}

func (m *mockDOM) RegisterFuncs(ctx context.Context, wg *sync.WaitGroup, parentName string, jsFuncs map[string]js.Func) {
	m.parents = append(m.parents, parentName)
	if m.funcs == nil {
		m.funcs = make(map[string]js.Func)
	}
	for name, jsFunc := range jsFuncs {
		m.funcs[parentName+"."+name] = jsFunc
	}
}
