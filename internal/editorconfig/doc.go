// Package editorconfig loads the few knobs the engine core takes from its
// embedder — the per-row character cap, the document's row-count ceiling,
// and the tab width — from a TOML settings file, with defaults used for
// anything the file omits or leaves absent.
package editorconfig
