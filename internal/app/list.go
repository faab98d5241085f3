package app

// List is a selectable collection. Selected is always a valid index when
// Items is non-empty and zero otherwise.
type List[T any] struct {
	Selected int
	Items    []T
}

// Len returns the number of items.
func (l *List[T]) Len() int { return len(l.Items) }

// Current returns the selected item, or false when the list is empty.
func (l *List[T]) Current() (T, bool) {
	var zero T
	if len(l.Items) == 0 {
		return zero, false
	}
	return l.Items[l.Selected], true
}

// Next moves the selection down one item and reports whether it moved.
func (l *List[T]) Next() bool {
	if l.Selected+1 >= len(l.Items) {
		return false
	}
	l.Selected++
	return true
}

// Previous moves the selection up one item and reports whether it moved.
func (l *List[T]) Previous() bool {
	if l.Selected == 0 {
		return false
	}
	l.Selected--
	return true
}

// Replace swaps in a fresh snapshot. The selection is kept where possible
// and clamped to the last item otherwise.
func (l *List[T]) Replace(items []T) {
	l.Items = items
	l.clamp()
}

func (l *List[T]) clamp() {
	switch {
	case len(l.Items) == 0:
		l.Selected = 0
	case l.Selected >= len(l.Items):
		l.Selected = len(l.Items) - 1
	case l.Selected < 0:
		l.Selected = 0
	}
}
