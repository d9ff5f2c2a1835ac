//go:build js && wasm

package ui

import (
	"syscall/js"
	"testing"
)

// mockQuerySelector sets a document on the dom's global that returns the value for the query.
func mockQuerySelector(t *testing.T, wantQuery string, wantValue js.Value, dom *DOM) js.Func {
	t.Helper()
	querySelector := mockQuery(t, wantQuery, wantValue)
	document := js.ValueOf(map[string]interface{}{
		"querySelector": querySelector,
	})
	dom.global.Set("document", document)
	return querySelector
}

// mockQuery creates a function that returns the value for the query.
func mockQuery(t *testing.T, wantQuery string, wantValue js.Value) js.Func {
	return js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		gotQuery := args[0].String()
		if wantQuery != gotQuery {
			t.Errorf("wanted query to be %v, got %v", wantQuery, gotQuery)
			return nil
		}
		return wantValue
	})
}
