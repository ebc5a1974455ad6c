package state

// MoveCursorUp moves the cursor to the previous selectable item.
func (l *Level) MoveCursorUp() bool {
	return l.step(-1)
}

// MoveCursorDown moves the cursor to the next selectable item.
func (l *Level) MoveCursorDown() bool {
	return l.step(1)
}

func (l *Level) step(dir int) bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	for i := l.Cursor + dir; i >= 0 && i < len(l.Items); i += dir {
		if l.Selectable(i) {
			l.Cursor = i
			return true
		}
	}
	return false
}

// MoveCursorHome moves the cursor to the first selectable item.
func (l *Level) MoveCursorHome() bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = l.nearestSelectable(0, 1)
	return old != l.Cursor
}

// MoveCursorEnd moves the cursor to the last selectable item.
func (l *Level) MoveCursorEnd() bool {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = l.nearestSelectable(n-1, -1)
	return old != l.Cursor
}

// MoveCursorPageUp moves the cursor up by the given page size.
func (l *Level) MoveCursorPageUp(maxVisible int) bool {
	return l.moveCursorBy(-l.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by the given page size.
func (l *Level) MoveCursorPageDown(maxVisible int) bool {
	return l.moveCursorBy(l.pageSize(maxVisible))
}

func (l *Level) moveCursorBy(delta int) bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	dir := 1
	if delta < 0 {
		dir = -1
	}
	l.Cursor = l.nearestSelectable(l.Cursor+delta, dir)
	return l.Cursor != old
}

func (l *Level) pageSize(maxVisible int) int {
	total := len(l.Items)
	if total == 0 {
		return 0
	}
	size := maxVisible
	if size <= 0 || size > total {
		size = total
	}
	if size < 1 {
		size = 1
	}
	return size
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible.
func (l *Level) EnsureCursorVisible(maxVisible int) {
	if len(l.Items) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
	}
	if maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := len(l.Items) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.ViewportOffset > maxOffset {
		l.ViewportOffset = maxOffset
	}
	if l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
	if l.Cursor < l.ViewportOffset {
		l.ViewportOffset = l.Cursor
	}
	upper := l.ViewportOffset + maxVisible - 1
	if l.Cursor > upper {
		l.ViewportOffset = l.Cursor - maxVisible + 1
		if l.ViewportOffset < 0 {
			l.ViewportOffset = 0
		}
		if l.ViewportOffset > maxOffset {
			l.ViewportOffset = maxOffset
		}
	}
}
