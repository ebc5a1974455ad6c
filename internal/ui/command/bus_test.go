package command

import (
	"errors"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/chainmenu/internal/logging"
	"github.com/atomicstack/chainmenu/internal/menu"
)

func TestExecuteRunsHandler(t *testing.T) {
	var seen menu.Item
	bus := New()
	cmd := bus.Execute(menu.Context{}, Request{
		ID:    "chain:recording",
		Label: "Start Audio Recording",
		Item:  menu.Item{ID: "recording"},
		Handler: func(_ menu.Context, item menu.Item) tea.Cmd {
			seen = item
			return func() tea.Msg { return menu.ActionResult{Info: "ok"} }
		},
	})
	msg := cmd()
	res, ok := msg.(menu.ActionResult)
	if !ok || res.Info != "ok" {
		t.Fatalf("unexpected message %#v", msg)
	}
	if seen.ID != "recording" {
		t.Fatalf("expected handler to receive item, got %#v", seen)
	}
}

func TestExecuteWithoutHandler(t *testing.T) {
	if msg := New().Execute(menu.Context{}, Request{ID: "x"})(); msg != nil {
		t.Fatalf("expected nil message, got %#v", msg)
	}
	noop := Request{ID: "y", Handler: func(menu.Context, menu.Item) tea.Cmd { return nil }}
	if msg := New().Execute(menu.Context{}, noop)(); msg != nil {
		t.Fatalf("expected nil message for no-op handler, got %#v", msg)
	}
}

func TestExecutePassesErrorsThrough(t *testing.T) {
	logging.Configure(filepath.Join(t.TempDir(), "error.log"))
	t.Cleanup(func() { logging.Configure("") })
	want := errors.New("boom")
	req := Request{ID: "z", Handler: func(menu.Context, menu.Item) tea.Cmd {
		return func() tea.Msg { return menu.ActionResult{Err: want} }
	}}
	msg := New().Execute(menu.Context{}, req)()
	if res, ok := msg.(menu.ActionResult); !ok || !errors.Is(res.Err, want) {
		t.Fatalf("expected error result, got %#v", msg)
	}
}
