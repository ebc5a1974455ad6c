package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/chainmenu/internal/logging"
	"github.com/atomicstack/chainmenu/internal/logging/events"
	"github.com/atomicstack/chainmenu/internal/menu"
	"github.com/atomicstack/chainmenu/internal/ui/command"
)

func (m *Model) handleEscapeKey() tea.Cmd {
	current := m.currentLevel()
	if current == nil || len(m.stack) <= 1 {
		return m.quit("back")
	}
	parent := m.stack[len(m.stack)-2]
	m.clearPreview(current.ID)
	m.stack = m.stack[:len(m.stack)-1]
	events.UI.MenuBack(current.ID, parent.ID)
	m.restoreCursor(parent, current.ID)
	m.errMsg = ""
	m.forceClearInfo()
	return m.ensurePreviewForLevel(parent)
}

func (m *Model) restoreCursor(parent *level, childID string) {
	if parent == nil {
		return
	}
	_, childKey := splitID(childID)
	if parent.LastCursor >= 0 && parent.LastCursor < len(parent.Items) {
		parent.Cursor = parent.LastCursor
	} else if idx := parent.IndexOf(childKey); idx >= 0 {
		parent.Cursor = idx
	} else {
		parent.MoveCursorHome()
	}
	parent.LastCursor = -1
	m.syncViewport(parent)
}

func splitID(id string) (string, string) {
	idx := strings.LastIndex(id, ":")
	if idx < 0 {
		return "", id
	}
	return id[:idx], id[idx+1:]
}

func (m *Model) handleEnterKey() tea.Cmd {
	if m.loading {
		return nil
	}
	current := m.currentLevel()
	if current == nil {
		return nil
	}
	item, ok := current.Current()
	if !ok || item.Header {
		return nil
	}
	ctx := m.menuContext()
	events.UI.MenuEnter(current.ID, item.ID, item.Label, current.Filter)
	beforeCursor := current.FilterCursorPos()
	current.SetFilter("", 0)
	m.noteFilterCursorChange(current, beforeCursor)
	if idx := current.IndexOf(item.ID); idx >= 0 {
		current.Cursor = idx
	}
	node := current.Node
	if node == nil {
		node, _ = m.registry.Find(current.ID)
	}
	label := strings.TrimSpace(item.Label)
	if node != nil {
		if child, ok := node.Children[item.ID]; ok {
			if child.Loader != nil {
				current.LastCursor = current.Cursor
				m.startPending(child.ID, label)
				return m.loadMenuCmd(child.ID, m.levelTitle(child, label), child.Loader)
			}
			if child.Action != nil {
				m.startPending(child.ID, label)
				return m.bus.Execute(ctx, command.Request{ID: child.ID, Label: label, Handler: child.Action, Item: item})
			}
		}
		if node.Action != nil {
			m.startPending(node.ID, label)
			return m.bus.Execute(ctx, command.Request{ID: node.ID, Label: label, Handler: node.Action, Item: item})
		}
	}
	m.setInfo(fmt.Sprintf("%s cannot be changed right now", label))
	return nil
}

func (m *Model) startPending(id, label string) {
	m.loading = true
	m.pendingID = id
	m.pendingLabel = label
	m.errMsg = ""
	m.forceClearInfo()
}

func (m *Model) clearPending() {
	m.loading = false
	m.pendingID = ""
	m.pendingLabel = ""
}

func (m *Model) levelTitle(node *menu.Node, fallback string) string {
	if node != nil && node.Title != "" {
		return node.Title
	}
	return strings.TrimSuffix(fallback, "...")
}

func (m *Model) moveCursorUp() tea.Cmd {
	current := m.currentLevel()
	if current == nil || !current.HasSelectable() {
		return nil
	}
	if !current.MoveCursorUp() {
		current.MoveCursorEnd()
	}
	events.UI.MenuCursor(current.ID, current.Cursor)
	m.syncViewport(current)
	return m.ensurePreviewForLevel(current)
}

func (m *Model) moveCursorDown() tea.Cmd {
	current := m.currentLevel()
	if current == nil || !current.HasSelectable() {
		return nil
	}
	if !current.MoveCursorDown() {
		current.MoveCursorHome()
	}
	events.UI.MenuCursor(current.ID, current.Cursor)
	m.syncViewport(current)
	return m.ensurePreviewForLevel(current)
}

func (m *Model) moveCursorWith(move func(*level) bool) tea.Cmd {
	current := m.currentLevel()
	if current == nil {
		return nil
	}
	if moved := move(current); moved {
		events.UI.MenuCursor(current.ID, current.Cursor)
	}
	m.syncViewport(current)
	return m.ensurePreviewForLevel(current)
}

func (m *Model) syncViewport(l *level) {
	if l == nil {
		return
	}
	l.EnsureCursorVisible(m.maxVisibleItems())
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.mode != ModeMenu {
		return nil
	}
	if handled, cmd := m.handleTextInput(keyMsg); handled {
		return cmd
	}
	switch {
	case key.Matches(keyMsg, keys.Quit):
		return m.quit("interrupt")
	case key.Matches(keyMsg, keys.Back):
		return m.handleEscapeKey()
	case key.Matches(keyMsg, keys.Enter):
		return m.handleEnterKey()
	case key.Matches(keyMsg, keys.Up):
		return m.moveCursorUp()
	case key.Matches(keyMsg, keys.Down):
		return m.moveCursorDown()
	case key.Matches(keyMsg, keys.PageUp):
		return m.moveCursorWith(func(l *level) bool { return l.MoveCursorPageUp(m.maxVisibleItems()) })
	case key.Matches(keyMsg, keys.PageDown):
		return m.moveCursorWith(func(l *level) bool { return l.MoveCursorPageDown(m.maxVisibleItems()) })
	case key.Matches(keyMsg, keys.Home):
		return m.moveCursorWith((*level).MoveCursorHome)
	case key.Matches(keyMsg, keys.End):
		return m.moveCursorWith((*level).MoveCursorEnd)
	}
	return nil
}

func (m *Model) handleCategoryLoadedMsg(msg tea.Msg) tea.Cmd {
	update, ok := msg.(categoryLoadedMsg)
	if !ok {
		return nil
	}
	if update.id != m.pendingID {
		return nil
	}
	m.clearPending()
	if update.err != nil {
		m.errMsg = update.err.Error()
		return nil
	}
	m.errMsg = ""
	node, _ := m.registry.Find(update.id)
	level := newLevel(update.id, update.title, update.items, node)
	m.syncViewport(level)
	m.stack = append(m.stack, level)
	if len(level.Items) == 0 {
		m.setInfo("No entries found.")
	} else if m.infoMsg != "" {
		m.clearInfo()
	}
	return m.ensurePreviewForLevel(level)
}

// popToRoot drops every submenu and rebuilds the chain options. The menu
// closes when its root layer no longer heads a chain.
func (m *Model) popToRoot() tea.Cmd {
	for len(m.stack) > 1 {
		m.clearPreview(m.currentLevel().ID)
		m.stack = m.stack[:len(m.stack)-1]
	}
	return m.rebuildRoot()
}

func (m *Model) rebuildRoot() tea.Cmd {
	if m.graph == nil || !m.graph.IsRoot(m.root) {
		return m.quit("chain removed")
	}
	root := m.stack[0]
	items, err := menu.ChainOptionItems(m.menuContext())
	if err != nil {
		logging.Error(err)
		m.errMsg = err.Error()
		return nil
	}
	root.Title = menu.SelectPath(m.root)
	root.UpdateItems(items)
	m.syncViewport(root)
	events.Chain.Rebuild(m.root.ID, len(items))
	if m.currentLevel() == root {
		return m.refreshPreviewForLevel(root)
	}
	return nil
}

// reloadLevel reruns the loader of a submenu and keeps its cursor.
func (m *Model) reloadLevel(l *level) {
	if l == nil || l.Node == nil || l.Node.Loader == nil {
		return
	}
	items, err := l.Node.Loader(m.menuContext())
	if err != nil {
		logging.Error(err)
		m.errMsg = err.Error()
		return
	}
	l.UpdateItems(items)
	m.syncViewport(l)
}

// refreshLevels rebuilds the chain options and every open submenu.
func (m *Model) refreshLevels(reason string) tea.Cmd {
	events.UI.Refresh(reason)
	cmd := m.rebuildRoot()
	if m.exitReason != "" || len(m.stack) == 1 {
		return cmd
	}
	for _, l := range m.stack[1:] {
		m.reloadLevel(l)
	}
	return m.refreshPreviewForLevel(m.currentLevel())
}

func (m *Model) findLevelByID(id string) *level {
	for _, lvl := range m.stack {
		if lvl.ID == id {
			return lvl
		}
	}
	return nil
}

func (m *Model) currentLevel() *level {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}
