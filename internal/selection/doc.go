// Package selection implements the value types used to track a caret or a
// range selection inside a [content.Content] document.
//
// A Selection is either a caret (a single Pos) or a range (an anchor plus an
// active end). Ranges remember which end is the anchor and which is the
// active end, so that shift-extended navigation can grow or shrink the
// selection from the correct side while a caret-collapsing operation (Left,
// Right, Esc) always has an unambiguous "first"/"second" pair to fall back
// on regardless of direction.
//
// The package has no dependencies beyond the standard library and performs
// no I/O; every method is a pure function of its receiver and arguments.
package selection
