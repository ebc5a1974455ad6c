package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/chainmenu/internal/engine"
	"github.com/atomicstack/chainmenu/internal/menu"
)

type previewKind int

const (
	previewKindNone previewKind = iota
	previewKindLayer
)

type previewData struct {
	kind         previewKind
	target       string
	label        string
	lines        []string
	err          string
	loading      bool
	seq          int
	scrollOffset int // clamped by renderPreviewPanel
}

type previewLoadedMsg struct {
	levelID string
	target  string
	seq     int
	lines   []string
	err     error
}

var layerPreviewFn = menu.LayerPreview

func (m *Model) ensurePreviewForLevel(level *level) tea.Cmd {
	if level == nil {
		return nil
	}
	if previewKindForLevel(level) == previewKindNone {
		m.clearPreview(level.ID)
		return nil
	}
	item, ok := level.Current()
	if !ok || item.Layer == nil {
		m.clearPreview(level.ID)
		return nil
	}
	if m.preview == nil {
		m.preview = make(map[string]*previewData)
	}
	if existing, ok := m.preview[level.ID]; ok && existing.target == item.ID {
		return nil
	}
	m.previewSeq++
	seq := m.previewSeq
	m.preview[level.ID] = &previewData{
		kind:    previewKindLayer,
		target:  item.ID,
		label:   layerLabel(item.Layer),
		loading: true,
		seq:     seq,
	}
	ctx := m.menuContext()
	levelID := level.ID
	target := item.ID
	layer := item.Layer
	return func() tea.Msg {
		lines, err := layerPreviewFn(ctx, layer)
		return previewLoadedMsg{levelID: levelID, target: target, seq: seq, lines: lines, err: err}
	}
}

func (m *Model) ensurePreviewForCurrentLevel() tea.Cmd {
	return m.ensurePreviewForLevel(m.currentLevel())
}

// refreshPreviewForLevel drops the cached preview so the highlighted layer
// is described again.
func (m *Model) refreshPreviewForLevel(level *level) tea.Cmd {
	if level == nil {
		return nil
	}
	m.clearPreview(level.ID)
	return m.ensurePreviewForLevel(level)
}

func (m *Model) clearPreview(levelID string) {
	if levelID == "" || m.preview == nil {
		return
	}
	delete(m.preview, levelID)
}

func (m *Model) activePreview() *previewData {
	if len(m.stack) == 0 || m.preview == nil {
		return nil
	}
	current := m.currentLevel()
	if current == nil {
		return nil
	}
	return m.preview[current.ID]
}

// previewKindForLevel reports whether a level lists chain layers.
func previewKindForLevel(l *level) previewKind {
	if l == nil {
		return previewKindNone
	}
	for _, item := range l.Full {
		if item.Layer != nil {
			return previewKindLayer
		}
	}
	return previewKindNone
}

func (m *Model) handlePreviewLoadedMsg(msg tea.Msg) tea.Cmd {
	update, ok := msg.(previewLoadedMsg)
	if !ok {
		return nil
	}
	if m.preview == nil {
		return nil
	}
	data, ok := m.preview[update.levelID]
	if !ok {
		return nil
	}
	if data.seq != update.seq || data.target != update.target {
		return nil
	}
	data.loading = false
	data.scrollOffset = 0
	if update.err != nil {
		data.err = update.err.Error()
		data.lines = nil
	} else {
		data.err = ""
		data.lines = update.lines
	}
	m.syncViewport(m.currentLevel())
	return nil
}

func layerLabel(layer *engine.Layer) string {
	if layer == nil {
		return ""
	}
	return strings.TrimSpace(layer.DisplayName())
}
