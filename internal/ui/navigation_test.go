package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/chainmenu/internal/menu"
)

func TestHandleEscapeKeyFromRootQuits(t *testing.T) {
	m := newTestEnv(t, 0).model()
	cmd := m.handleEscapeKey()
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
	if m.ExitReason() != "back" {
		t.Fatalf("expected exit reason back, got %q", m.ExitReason())
	}
}

func TestHandleEscapeKeyPopsLevel(t *testing.T) {
	m := newTestEnv(t, 0).model()
	parent := m.currentLevel()
	parent.Cursor = 1
	parent.LastCursor = parent.IndexOf("audio-options")
	m.stack = append(m.stack, newLevel("chain:audio-options", "Audio options", []menu.Item{{ID: "mono", Label: "Mono"}}, nil))
	m.errMsg = "previous error"

	m.handleEscapeKey()
	if len(m.stack) != 1 {
		t.Fatalf("expected stack to shrink to 1, got %d", len(m.stack))
	}
	if got := parent.Items[parent.Cursor].ID; got != "audio-options" {
		t.Fatalf("expected cursor restored to audio-options, got %s", got)
	}
	if parent.LastCursor != -1 {
		t.Fatalf("expected parent LastCursor reset, got %d", parent.LastCursor)
	}
	if m.errMsg != "" {
		t.Fatalf("expected error message cleared, got %q", m.errMsg)
	}
}

func TestHandleEscapeKeyFallsBackToSubmenuEntry(t *testing.T) {
	m := newTestEnv(t, 0).model()
	parent := m.currentLevel()
	parent.LastCursor = -1
	m.stack = append(m.stack, newLevel("chain:midi-learn", "MIDI-learn", []menu.Item{{ID: "enter"}}, nil))
	m.handleEscapeKey()
	if got := parent.Items[parent.Cursor].ID; got != "midi-learn" {
		t.Fatalf("expected cursor on midi-learn, got %s", got)
	}
}

func TestCursorSkipsChainSection(t *testing.T) {
	m := newTestEnv(t, 0).model()
	root := m.currentLevel()
	root.Cursor = root.IndexOf("midi-channel")
	m.moveCursorDown()
	if got := root.Items[root.Cursor].ID; got != "add-midi-fx" {
		t.Fatalf("expected cursor to skip the section header, got %s", got)
	}
	m.moveCursorUp()
	if got := root.Items[root.Cursor].ID; got != "midi-channel" {
		t.Fatalf("expected cursor back on midi-channel, got %s", got)
	}
}

func TestCursorWrapsAround(t *testing.T) {
	m := newTestEnv(t, 0).model()
	root := m.currentLevel()
	m.moveCursorUp()
	if got := root.Items[root.Cursor].ID; got != "remove" {
		t.Fatalf("expected wrap to last item, got %s", got)
	}
	m.moveCursorDown()
	if root.Cursor != 0 {
		t.Fatalf("expected wrap to first item, got %d", root.Cursor)
	}
}

func TestEnterOnSectionHeaderIsIgnored(t *testing.T) {
	m := newTestEnv(t, 0).model()
	root := m.currentLevel()
	root.Cursor = root.IndexOf("section:chain")
	if cmd := m.handleEnterKey(); cmd != nil {
		t.Fatalf("expected no command for a section header")
	}
	if m.loading {
		t.Fatalf("expected no pending action")
	}
}

func TestEnterWhileLoadingIsIgnored(t *testing.T) {
	m := newTestEnv(t, 0).model()
	m.loading = true
	if cmd := m.handleEnterKey(); cmd != nil {
		t.Fatalf("expected enter to be ignored while loading")
	}
}

func TestEnterOnItemWithoutActionShowsInfo(t *testing.T) {
	m := newTestEnv(t, 0).model()
	m.stack = append(m.stack, newLevel("chain:audio-options", "Audio options", []menu.Item{{ID: "primed-locked", Label: "[x] Recording Primed"}}, nil))
	if cmd := m.handleEnterKey(); cmd != nil {
		t.Fatalf("expected no command for a locked item")
	}
	if got := m.currentInfo(); got != "[x] Recording Primed cannot be changed right now" {
		t.Fatalf("unexpected info %q", got)
	}
}

func TestCategoryLoadedIgnoresStaleResponses(t *testing.T) {
	m := newTestEnv(t, 0).model()
	m.pendingID = "chain:remove"
	m.handleCategoryLoadedMsg(categoryLoadedMsg{id: "chain:midi-learn", items: []menu.Item{{ID: "enter"}}})
	if len(m.stack) != 1 {
		t.Fatalf("expected stale submenu to be dropped")
	}
	m.handleCategoryLoadedMsg(categoryLoadedMsg{id: "chain:remove", title: "Remove...", items: []menu.Item{{ID: "chain"}}})
	if len(m.stack) != 2 || m.currentLevel().ID != "chain:remove" {
		t.Fatalf("expected remove submenu pushed, got %d levels", len(m.stack))
	}
	if m.currentLevel().Node == nil {
		t.Fatalf("expected submenu to be bound to its registry node")
	}
}

func TestRebuildRootQuitsWhenChainIsGone(t *testing.T) {
	env := newTestEnv(t, 2)
	m := env.model()
	if err := env.graph.RemoveChain(2); err != nil {
		t.Fatalf("remove chain: %v", err)
	}
	cmd := m.rebuildRoot()
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
	if m.ExitReason() != "chain removed" {
		t.Fatalf("unexpected exit reason %q", m.ExitReason())
	}
}
