// Package editor implements the Editor Controller: the component that
// turns keyboard and mouse input into mutations of a [content.Content],
// tracked by a [selection.Selection] and an undoable [history.Stack].
//
// An Editor never stores a reference to the document it edits; every entry
// point takes the Content explicitly, matching the single-threaded,
// synchronous model described by the operations below: one input event
// runs to completion (mutation plus history bookkeeping) before the next
// begins.
//
// Typical usage:
//
//	doc := content.New[MyRowData](120)
//	ed := editor.New[MyRowData]()
//	mod, changed := ed.HandleInput(editor.CharEvent('x'), editor.Modifiers{}, doc)
//	if changed {
//	    recompute(mod)
//	}
package editor
