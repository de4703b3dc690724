package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tmarek/hoard/engine"
	"github.com/tmarek/hoard/engine/state"
)

// renderStatusBar produces a full-width inverted status line showing the
// current room, player health, exits, inventory, and turn count.
func (m Model) renderStatusBar() string {
	s := m.engine.State

	roomName := engine.RoomDisplayName(s.Player.Location)

	exits := state.RoomExits(m.defs, s.Player.Location)
	dirs := make([]string, 0, len(exits))
	for dir := range exits {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	left := fmt.Sprintf(" %s | HP: %d | Exits: %s", roomName, s.Player.Health, strings.Join(dirs, ","))
	right := fmt.Sprintf("T:%d ", s.TurnCount)

	// Show inventory items if they fit, otherwise just the count.
	if n := len(s.Player.Inventory); n > 0 {
		candidate := fmt.Sprintf("Inv: %s | T:%d ", strings.Join(s.Player.Inventory, ", "), s.TurnCount)
		if lipgloss.Width(left)+lipgloss.Width(candidate)+2 < m.width {
			right = candidate
		} else {
			right = fmt.Sprintf("Inv: %d | T:%d ", n, s.TurnCount)
		}
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	return styleStatusBar.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}
