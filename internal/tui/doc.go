// Package tui implements the interactive roster manager.
//
// It is a single-screen bubbletea application that lists the crew
// roster and supports adding, deleting and reloading entries. All
// mutations go through the store's public operations; the TUI never
// reads or writes the roster file itself, so it observes the same
// locking and error classification as every other caller.
//
// Key bindings:
//
//	↑/k, ↓/j   move the selection
//	a          add a crew member (inline text input)
//	d          delete the selected crew member
//	r          reload the roster from disk
//	q          quit
package tui
