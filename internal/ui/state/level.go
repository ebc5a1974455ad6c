package state

import (
	"github.com/atomicstack/chainmenu/internal/menu"
)

// Level encapsulates menu level state such as cursor position, filter, and viewport.
type Level struct {
	ID             string
	Title          string
	Items          []menu.Item
	Full           []menu.Item
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	Node           *menu.Node
	ViewportOffset int
}

// NewLevel constructs a Level using the provided items and menu node. The
// cursor starts on the first selectable item.
func NewLevel(id, title string, items []menu.Item, node *menu.Node) *Level {
	l := &Level{
		ID:         id,
		Title:      title,
		Cursor:     -1,
		LastCursor: -1,
		Node:       node,
	}
	l.UpdateItems(items)
	return l
}

// IndexOf returns the index for a given item identifier.
func (l *Level) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Current returns the item under the cursor.
func (l *Level) Current() (menu.Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return menu.Item{}, false
	}
	return l.Items[l.Cursor], true
}

// UpdateItems replaces the level items. The cursor follows the item it was on
// when that item is still present, and otherwise stays at the same position.
func (l *Level) UpdateItems(items []menu.Item) {
	prevOffset := l.ViewportOffset
	var prevID string
	if item, ok := l.Current(); ok {
		prevID = item.ID
	}
	l.Full = CloneItems(items)
	l.applyFilter()
	if idx := l.IndexOf(prevID); idx >= 0 {
		l.Cursor = idx
	}
	l.Cursor = l.nearestSelectable(l.Cursor, 1)
	if len(l.Items) == 0 {
		l.ViewportOffset = 0
		return
	}
	if prevOffset < 0 {
		prevOffset = 0
	}
	if prevOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
		return
	}
	l.ViewportOffset = prevOffset
}
