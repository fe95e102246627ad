// Package content implements the fixed-capacity character grid backing a
// NoteCalc-style editor document.
//
// Each row owns an inline, pre-allocated []rune buffer of MaxLineLen
// capacity plus a length marking the valid prefix; no row ever grows beyond
// that capacity, which keeps every character-level mutation an O(k)
// in-place shift instead of an allocation. A [Content] is generic over an
// opaque per-row payload T that the formula/evaluation layer above this
// package uses to cache per-row results; every row-level mutation
// (insert/remove/split/merge/swap/duplicate) carries that payload along
// with the row it belongs to.
//
// Example:
//
//	c := content.New[MyRowData](80)
//	c.InsertChar(0, 0, 'x')
//	fmt.Println(c.GetContent())
package content
