package history

import (
	"github.com/bbodi/notecalc3-sub001/internal/content"
	"github.com/bbodi/notecalc3-sub001/internal/selection"
)

// Group is a batch of commands undone or redone atomically.
type Group[T any] []Command[T]

// Stack holds the undo group sequence and its symmetric redo sequence.
// Grouping policy belongs to the caller: Push takes an explicit newGroup
// flag rather than inferring timing itself, so the Editor Controller's
// time-threshold logic stays the single source of truth for where group
// boundaries fall.
type Stack[T any] struct {
	undo []Group[T]
	redo []Group[T]
}

// NewStack returns an empty undo/redo stack.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push appends cmd to the stack, clearing the redo stack. When newGroup is
// true, or the undo stack is empty, cmd starts a fresh group; otherwise it
// is appended to the top group.
func (s *Stack[T]) Push(cmd Command[T], newGroup bool) {
	s.redo = nil
	if newGroup || len(s.undo) == 0 {
		s.undo = append(s.undo, Group[T]{cmd})
		return
	}
	top := len(s.undo) - 1
	s.undo[top] = append(s.undo[top], cmd)
}

// CanUndo reports whether an undo group is available.
func (s *Stack[T]) CanUndo() bool { return len(s.undo) > 0 }

// CanRedo reports whether a redo group is available.
func (s *Stack[T]) CanRedo() bool { return len(s.redo) > 0 }

// Undo pops the top undo group, replays it in reverse via each command's
// inverse rule, and pushes it onto the redo stack. Returns false if the
// undo stack is empty.
func (s *Stack[T]) Undo(c *content.Content[T]) (selection.Selection, content.Modification, bool) {
	if len(s.undo) == 0 {
		return selection.Selection{}, content.Modification{}, false
	}
	top := len(s.undo) - 1
	group := s.undo[top]
	s.undo = s.undo[:top]

	var mod content.Modification
	var sel selection.Selection
	for i := len(group) - 1; i >= 0; i-- {
		m := group[i].Undo(c)
		if i == len(group)-1 {
			mod = m
		} else {
			mod = mod.Merge(m)
		}
		sel = group[i].Before()
	}
	s.redo = append(s.redo, group)
	return sel, mod, true
}

// Redo pops the top redo group, replays it forward, and pushes it back
// onto the undo stack. Returns false if the redo stack is empty.
func (s *Stack[T]) Redo(c *content.Content[T]) (selection.Selection, content.Modification, bool) {
	if len(s.redo) == 0 {
		return selection.Selection{}, content.Modification{}, false
	}
	top := len(s.redo) - 1
	group := s.redo[top]
	s.redo = s.redo[:top]

	var mod content.Modification
	var sel selection.Selection
	for i, cmd := range group {
		m := cmd.Redo(c)
		if i == 0 {
			mod = m
		} else {
			mod = mod.Merge(m)
		}
		sel = cmd.After()
	}
	s.undo = append(s.undo, group)
	return sel, mod, true
}

// Clear discards both stacks, as required when init_with loads new content.
func (s *Stack[T]) Clear() {
	s.undo = nil
	s.redo = nil
}
