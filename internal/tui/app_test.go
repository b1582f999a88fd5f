package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/crewfile/internal/store"
)

func newTestModel(t *testing.T) Model {
	t.Helper()

	s, err := store.New(filepath.Join(t.TempDir(), "users.json"))
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	return NewModel(s)
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestRosterLoadedPopulatesList(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(rosterLoadedMsg{users: []store.User{{ID: 1, Name: "Alice"}, {ID: 2, Name: "Bob"}}})
	model := updated.(Model)

	if len(model.Users) != 2 {
		t.Fatalf("Users = %v, want 2 entries", model.Users)
	}
}

func TestCursorClampedWhenRosterShrinks(t *testing.T) {
	m := newTestModel(t)
	m.Users = []store.User{{ID: 1, Name: "Alice"}, {ID: 2, Name: "Bob"}}
	m.Cursor = 1

	updated, _ := m.Update(rosterLoadedMsg{users: []store.User{{ID: 1, Name: "Alice"}}})
	model := updated.(Model)

	if model.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0 after roster shrank", model.Cursor)
	}
}

func TestAddKeyEntersInputMode(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(keyRune('a'))
	model := updated.(Model)

	if model.Mode != modeAdd {
		t.Errorf("Mode = %v, want modeAdd after pressing 'a'", model.Mode)
	}
}

func TestEmptyNameIsRejectedBeforeStore(t *testing.T) {
	m := newTestModel(t)
	m.Mode = modeAdd
	m.Input.SetValue("   ")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model := updated.(Model)

	if cmd != nil {
		t.Error("blank name should not produce a store command")
	}
	if !model.StatusErr || model.Status == "" {
		t.Errorf("expected error status, got %q (err=%v)", model.Status, model.StatusErr)
	}
	if model.Mode != modeBrowse {
		t.Error("should return to browse mode after rejected submit")
	}
}

func TestEscapeCancelsInputMode(t *testing.T) {
	m := newTestModel(t)
	m.Mode = modeAdd

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	model := updated.(Model)

	if model.Mode != modeBrowse {
		t.Errorf("Mode = %v, want modeBrowse after escape", model.Mode)
	}
}

func TestDeleteKeyOnEmptyRosterIsNoop(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(keyRune('d'))
	if cmd != nil {
		t.Error("delete on empty roster should not produce a command")
	}
}
