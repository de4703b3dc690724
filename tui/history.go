// Package tui provides the Bubble Tea terminal front-end for Hoard.
package tui

// History is a bounded command history with cursor-based navigation,
// newest entry last.
type History struct {
	entries []string
	max     int
	cursor  int // -1 = not navigating
}

// NewHistory creates a history buffer holding at most max commands.
func NewHistory(max int) *History {
	return &History{max: max, cursor: -1}
}

// Push appends a command. Consecutive duplicates are collapsed and the
// oldest entry is dropped once the buffer is full.
func (h *History) Push(cmd string) {
	if n := len(h.entries); n > 0 && h.entries[n-1] == cmd {
		return
	}
	h.entries = append(h.entries, cmd)
	if len(h.entries) > h.max {
		copy(h.entries, h.entries[1:])
		h.entries = h.entries[:h.max]
	}
}

// Prev steps to the previous (older) entry. Returns ("", false) when empty.
func (h *History) Prev() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	switch {
	case h.cursor == -1:
		h.cursor = len(h.entries) - 1
	case h.cursor > 0:
		h.cursor--
	}
	return h.entries[h.cursor], true
}

// Next steps to the next (newer) entry. Returns ("", false) once past the
// most recent entry, leaving the cursor in the fresh-input state.
func (h *History) Next() (string, bool) {
	if h.cursor == -1 {
		return "", false
	}
	if h.cursor++; h.cursor >= len(h.entries) {
		h.cursor = -1
		return "", false
	}
	return h.entries[h.cursor], true
}

// ResetCursor returns the cursor to the fresh-input state.
func (h *History) ResetCursor() {
	h.cursor = -1
}
