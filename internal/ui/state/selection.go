package state

// Selectable reports whether the item at index can take the cursor. Section
// headers cannot.
func (l *Level) Selectable(index int) bool {
	return index >= 0 && index < len(l.Items) && !l.Items[index].Header
}

// HasSelectable reports whether any item can take the cursor.
func (l *Level) HasSelectable() bool {
	for i := range l.Items {
		if l.Selectable(i) {
			return true
		}
	}
	return false
}

// nearestSelectable returns index when selectable, or the next selectable
// index walking in dir, falling back to the other direction. Levels without
// selectable items keep the clamped index.
func (l *Level) nearestSelectable(index, dir int) int {
	n := len(l.Items)
	if n == 0 {
		return 0
	}
	if index < 0 {
		index = 0
	}
	if index >= n {
		index = n - 1
	}
	if dir == 0 {
		dir = 1
	}
	for i := index; i >= 0 && i < n; i += dir {
		if l.Selectable(i) {
			return i
		}
	}
	for i := index; i >= 0 && i < n; i -= dir {
		if l.Selectable(i) {
			return i
		}
	}
	return index
}
