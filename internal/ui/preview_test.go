package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/atomicstack/chainmenu/internal/engine"
	"github.com/atomicstack/chainmenu/internal/menu"
)

func TestEnsurePreviewForLayerRow(t *testing.T) {
	m := newTestEnv(t, 0).model()
	root := m.currentLevel()
	root.Cursor = root.IndexOf("layer:zyn")

	cmd := m.ensurePreviewForLevel(root)
	if cmd == nil {
		t.Fatalf("expected preview command")
	}
	data := m.activePreview()
	if data == nil || !data.loading || data.label != "ZynAddSubFX" {
		t.Fatalf("expected loading preview for ZynAddSubFX, got %+v", data)
	}
	if again := m.ensurePreviewForLevel(root); again != nil {
		t.Fatalf("expected no second load for the same layer")
	}

	msg, ok := cmd().(previewLoadedMsg)
	if !ok {
		t.Fatalf("expected previewLoadedMsg")
	}
	m.handlePreviewLoadedMsg(msg)
	if data.loading {
		t.Fatalf("expected loading to be false")
	}
	joined := strings.Join(data.lines, "\n")
	for _, want := range []string{"ZynAddSubFX", "Pads/Warm", "CC74 ch1"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("expected %q in preview, got:\n%s", want, joined)
		}
	}
}

func TestPreviewClearedOnOptionRow(t *testing.T) {
	m := newTestEnv(t, 0).model()
	root := m.currentLevel()
	root.Cursor = root.IndexOf("layer:rev")
	m.ensurePreviewForLevel(root)
	root.Cursor = root.IndexOf("remove")
	if cmd := m.ensurePreviewForLevel(root); cmd != nil {
		t.Fatalf("expected no preview command for an option row")
	}
	if m.activePreview() != nil {
		t.Fatalf("expected preview cleared")
	}
}

func TestPreviewKindForLevel(t *testing.T) {
	m := newTestEnv(t, 0).model()
	if kind := previewKindForLevel(m.currentLevel()); kind != previewKindLayer {
		t.Fatalf("expected chain options to preview layers")
	}
	sub := newLevel("chain:remove", "Remove...", []menu.Item{{ID: "chain"}}, nil)
	if kind := previewKindForLevel(sub); kind != previewKindNone {
		t.Fatalf("expected submenus without layers to skip previews")
	}
}

func TestHandlePreviewLoadedMsgIgnoresStaleResponses(t *testing.T) {
	lvl := newLevel(menu.RootID, "Chain Options", []menu.Item{{ID: "layer:zyn", Label: "ZynAddSubFX"}}, nil)
	m := &Model{
		stack: []*level{lvl},
		preview: map[string]*previewData{
			menu.RootID: {target: "layer:zyn", seq: 2},
		},
	}
	m.handlePreviewLoadedMsg(previewLoadedMsg{
		levelID: menu.RootID,
		target:  "layer:zyn",
		seq:     1,
		lines:   []string{"old"},
	})
	if data := m.activePreview(); data.lines != nil {
		t.Fatalf("expected stale message to be ignored, got %+v", data)
	}
}

func TestPreviewErrorIsShown(t *testing.T) {
	prev := layerPreviewFn
	layerPreviewFn = func(menu.Context, *engine.Layer) ([]string, error) {
		return nil, errors.New("graph unavailable")
	}
	t.Cleanup(func() { layerPreviewFn = prev })

	m := newTestEnv(t, 0).model()
	root := m.currentLevel()
	root.Cursor = root.IndexOf("layer:arp")
	cmd := m.ensurePreviewForLevel(root)
	m.handlePreviewLoadedMsg(cmd())
	data := m.activePreview()
	if data == nil || data.err != "graph unavailable" || data.lines != nil {
		t.Fatalf("expected preview error, got %+v", data)
	}
	if view := m.View(); !strings.Contains(view, "graph unavailable") {
		t.Fatalf("expected error in view, got:\n%s", view)
	}
}
