package components

import (
	"github.com/interpretive-systems/gitdeck/internal/theme"
)

// List renders a scrolling window over pre-formatted rows. It only keeps the
// scroll offset; the selection lives in the session state.
type List struct {
	offset int
	empty  string
}

// NewList creates a list that shows empty when there are no rows.
func NewList(empty string) *List {
	return &List{empty: empty}
}

// Offset returns the index of the first visible row.
func (l *List) Offset() int { return l.offset }

// EnsureVisible scrolls just enough to keep selected on screen.
func (l *List) EnsureVisible(total, selected, visibleCount int) {
	if total == 0 || visibleCount <= 0 {
		l.offset = 0
		return
	}

	maxStart := total - visibleCount
	if maxStart < 0 {
		maxStart = 0
	}
	if l.offset > maxStart {
		l.offset = maxStart
	}
	if l.offset < 0 {
		l.offset = 0
	}

	if selected < l.offset {
		l.offset = selected
	} else if selected >= l.offset+visibleCount {
		l.offset = selected - visibleCount + 1
	}
}

// Render returns at most height lines, the selected row highlighted.
func (l *List) Render(rows []string, selected, height int, th theme.Theme) []string {
	if len(rows) == 0 {
		return []string{l.empty}
	}

	l.EnsureVisible(len(rows), selected, height)

	end := l.offset + height
	if end > len(rows) {
		end = len(rows)
	}
	lines := make([]string, 0, end-l.offset)
	for i := l.offset; i < end; i++ {
		if i == selected {
			lines = append(lines, th.SelectedText("> "+rows[i]))
			continue
		}
		lines = append(lines, "  "+rows[i])
	}
	return lines
}
