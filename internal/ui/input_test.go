package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestHandleTextInputAppendsRunes(t *testing.T) {
	m := newTestEnv(t, 0).model()
	current := m.currentLevel()
	handled, _ := m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("zyn")})
	if !handled {
		t.Fatalf("expected key press to be handled")
	}
	if current.Filter != "zyn" {
		t.Fatalf("expected filter 'zyn', got %q", current.Filter)
	}
	if pos := current.FilterCursorPos(); pos != 3 {
		t.Fatalf("expected cursor at end, got %d", pos)
	}
	item, ok := current.Current()
	if !ok || item.ID != "layer:zyn" {
		t.Fatalf("expected cursor on the matching layer, got %#v", item)
	}
	for _, item := range current.Items {
		if item.Header {
			t.Fatalf("expected section headers filtered out")
		}
	}
}

func TestHandleTextInputCursorMovement(t *testing.T) {
	m := newTestEnv(t, 0).model()
	current := m.currentLevel()
	current.SetFilter("abc", 3)

	if handled, _ := m.handleTextInput(tea.KeyMsg{Type: tea.KeyLeft}); !handled {
		t.Fatalf("expected left arrow to be handled")
	}
	if pos := current.FilterCursorPos(); pos != 2 {
		t.Fatalf("expected cursor at 2 after left, got %d", pos)
	}
	if handled, _ := m.handleTextInput(tea.KeyMsg{Type: tea.KeyRight}); !handled {
		t.Fatalf("expected right arrow to be handled")
	}
	if pos := current.FilterCursorPos(); pos != 3 {
		t.Fatalf("expected cursor back at 3, got %d", pos)
	}
}

func TestHandleTextInputClearRestoresItems(t *testing.T) {
	m := newTestEnv(t, 0).model()
	current := m.currentLevel()
	total := len(current.Items)
	m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("rev")})
	if len(current.Items) >= total {
		t.Fatalf("expected filtered items")
	}
	if handled, _ := m.handleTextInput(tea.KeyMsg{Type: tea.KeyCtrlU}); !handled {
		t.Fatalf("expected ctrl+u to clear the filter")
	}
	if current.Filter != "" || len(current.Items) != total {
		t.Fatalf("expected all %d items back, got %d", total, len(current.Items))
	}
	if handled, _ := m.handleTextInput(tea.KeyMsg{Type: tea.KeyCtrlU}); handled {
		t.Fatalf("expected ctrl+u on an empty filter to fall through")
	}
}

func TestHandleTextInputBackspace(t *testing.T) {
	m := newTestEnv(t, 0).model()
	current := m.currentLevel()
	current.SetFilter("reb", 3)
	if handled, _ := m.handleTextInput(tea.KeyMsg{Type: tea.KeyBackspace}); !handled {
		t.Fatalf("expected backspace to be handled")
	}
	if current.Filter != "re" {
		t.Fatalf("expected filter 're', got %q", current.Filter)
	}
}

func TestFilterPromptPlaceholder(t *testing.T) {
	m := newTestEnv(t, 0).model()
	prompt, _ := m.filterPrompt()
	if !strings.HasPrefix(prompt, "» ") {
		t.Fatalf("expected prompt marker, got %q", prompt)
	}
	if !strings.Contains(prompt, "type to filter") {
		t.Fatalf("expected placeholder in prompt, got %q", prompt)
	}
}
