// Package history implements the undo/redo command stack for a
// [content.Content] document.
//
// Every reversible mutation is represented as a tagged [Command] value
// carrying exactly the data needed to invert itself: removed characters,
// removed text, or the row payloads spanning a merge. This is cheaper than
// snapshotting the whole document and keeps the set of invertible
// operations closed and easy to audit, one tag per row of the mutation
// table the Editor Controller implements against.
//
// Commands are grouped; a [Stack] holds an ordered sequence of groups for
// undo and a symmetric sequence for redo. Grouping policy (when to start a
// new group versus append to the current one) is a decision made by the
// caller on every Push — this package only tracks the resulting stacks.
package history
