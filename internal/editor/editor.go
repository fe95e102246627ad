package editor

import (
	"github.com/bbodi/notecalc3-sub001/internal/content"
	"github.com/bbodi/notecalc3-sub001/internal/history"
	"github.com/bbodi/notecalc3-sub001/internal/selection"
)

// CursorBlinkMs is both the cursor blink half-period and the command
// grouping pause threshold: a mutation more than this long after the
// previous one starts a new undo group.
const CursorBlinkMs = 500

// Editor holds the current selection, the remembered column for vertical
// navigation, the logical clock, cursor-blink state, the in-process
// clipboard, and the undo/redo stack. It does not own a Content; every
// operation that reads or mutates the document takes one as a parameter.
type Editor[T any] struct {
	selection       selection.Selection
	lastColumnIndex uint32

	timeMs                      int64
	nextBlinkAt                 int64
	modifTimeThresholdExpiresAt int64
	showCursor                  bool

	clipboard string
	history   *history.Stack[T]
}

// New returns an Editor with a caret at (0, 0), an empty clipboard, and an
// empty undo/redo history. The invariant that a document always has at
// least one row is Content's responsibility (see [content.New]), so New
// does not touch the document.
func New[T any]() *Editor[T] {
	return &Editor[T]{
		selection:  selection.NewCaret(selection.NewPos(0, 0)),
		showCursor: true,
		history:    history.NewStack[T](),
	}
}

// GetSelection returns the current selection.
func (e *Editor[T]) GetSelection() selection.Selection {
	return e.selection
}

// ShowCursor reports the current cursor-blink visibility.
func (e *Editor[T]) ShowCursor() bool {
	return e.showCursor
}

// Clipboard returns the in-process clipboard contents.
func (e *Editor[T]) Clipboard() string {
	return e.clipboard
}

// CanUndo reports whether an undo group is available.
func (e *Editor[T]) CanUndo() bool { return e.history.CanUndo() }

// CanRedo reports whether a redo group is available.
func (e *Editor[T]) CanRedo() bool { return e.history.CanRedo() }

// SetCursorPos moves the caret to pos, collapsing any selection and
// updating the remembered column.
func (e *Editor[T]) SetCursorPos(pos selection.Pos) {
	e.setSelectionSaveCol(selection.NewCaret(pos))
}

// SetCursorRange sets a range selection from start to end, updating the
// remembered column from end.
func (e *Editor[T]) SetCursorRange(start, end selection.Pos) {
	e.setSelectionSaveCol(selection.NewRange(start, end))
}

// setSelectionSaveCol is the single funnel every selection update goes
// through: it also keeps lastColumnIndex in sync with the cursor's new
// column, per the "remembered column" navigation design.
func (e *Editor[T]) setSelectionSaveCol(sel selection.Selection) {
	e.selection = sel
	e.lastColumnIndex = sel.GetCursorPos().Column
}

// pushCommand records cmd on the undo stack, starting a new group when the
// pause threshold has expired or the stack is empty, then advances the
// threshold. It does not touch e.selection; callers set the selection via
// setSelectionSaveCol before or after as the operation requires.
func (e *Editor[T]) pushCommand(cmd history.Command[T]) {
	newGroup := e.timeMs > e.modifTimeThresholdExpiresAt || !e.history.CanUndo()
	e.history.Push(cmd, newGroup)
	e.modifTimeThresholdExpiresAt = e.timeMs + CursorBlinkMs
}

// HandleTick advances the logical clock and toggles cursor-blink state
// when due. Returns true iff ShowCursor changed.
func (e *Editor[T]) HandleTick(nowMs int64) bool {
	e.timeMs = nowMs
	if nowMs < e.nextBlinkAt {
		return false
	}
	e.showCursor = !e.showCursor
	e.nextBlinkAt = nowMs + CursorBlinkMs
	return true
}

// BlinkCursor forces the cursor visible and reschedules the next blink,
// as navigation input does.
func (e *Editor[T]) BlinkCursor() {
	e.showCursor = true
	e.nextBlinkAt = e.timeMs + CursorBlinkMs
}

// Undo pops and replays the top undo group in reverse, restoring the
// selection that preceded the group. Returns the modification scope and
// false if there was nothing to undo.
func (e *Editor[T]) Undo(c *content.Content[T]) (content.Modification, bool) {
	sel, mod, ok := e.history.Undo(c)
	if !ok {
		return content.Modification{}, false
	}
	e.setSelectionSaveCol(sel)
	return mod, true
}

// Redo pops and replays the top redo group forward, restoring the
// selection that followed the group. Returns the modification scope and
// false if there was nothing to redo.
func (e *Editor[T]) Redo(c *content.Content[T]) (content.Modification, bool) {
	sel, mod, ok := e.history.Redo(c)
	if !ok {
		return content.Modification{}, false
	}
	e.setSelectionSaveCol(sel)
	return mod, true
}

// Clear resets the editor to a fresh caret at (0, 0) with empty clipboard
// and discards undo/redo history. Callers that reload content via
// [content.Content.InitWith] should call Clear alongside it.
func (e *Editor[T]) Clear() {
	e.selection = selection.NewCaret(selection.NewPos(0, 0))
	e.lastColumnIndex = 0
	e.clipboard = ""
	e.history.Clear()
}
