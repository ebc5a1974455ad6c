package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyBindingsMatchAlternates(t *testing.T) {
	if !key.Matches(tea.KeyMsg{Type: tea.KeyCtrlP}, keys.Up) {
		t.Fatalf("expected ctrl+p to move up")
	}
	if !key.Matches(tea.KeyMsg{Type: tea.KeyCtrlN}, keys.Down) {
		t.Fatalf("expected ctrl+n to move down")
	}
	if key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}, keys.Down) {
		t.Fatalf("printable keys must stay with the filter")
	}
}

func TestCtrlNMovesCursor(t *testing.T) {
	m := newTestEnv(t, 0).model()
	current := m.currentLevel()
	start := current.Cursor
	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyCtrlN})
	if current.Cursor == start {
		t.Fatalf("expected cursor to move from %d", start)
	}
}

func TestFooterLineListsBindings(t *testing.T) {
	m := newTestEnv(t, 0).model()
	line := m.footerLine()
	for _, want := range []string{"enter select", "esc back", "ctrl+c quit", "type to filter"} {
		if !strings.Contains(line, want) {
			t.Fatalf("expected %q in footer %q", want, line)
		}
	}
}
