package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleNarrative = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleYouSee = lipgloss.NewStyle().
			Bold(true)

	styleExits = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleCombat = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208"))

	styleOutcome = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true)

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))
)

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindNarrative lineKind = iota
	kindYouSee
	kindExits
	kindCombat
	kindOutcome
	kindError
)

// classifyLine determines what kind of output line this is, keyed off the
// fixed message vocabulary the engine emits.
func classifyLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "You see:"):
		return kindYouSee
	case strings.HasPrefix(line, "Exits:"), strings.HasPrefix(line, "Known world:"):
		return kindExits
	case strings.HasPrefix(line, "You are victorious"),
		strings.HasPrefix(line, "You collapse"),
		strings.HasPrefix(line, "You leave the dungeon"):
		return kindOutcome
	case strings.HasPrefix(line, "Round "),
		strings.HasPrefix(line, "You square up"),
		strings.Contains(line, "hits back"),
		strings.HasSuffix(line, "falls!"):
		return kindCombat
	case strings.HasPrefix(line, "You can't"),
		strings.HasPrefix(line, "There is no"),
		strings.HasPrefix(line, "I don't understand"),
		strings.HasSuffix(line, "what?"),
		strings.HasSuffix(line, "where?"):
		return kindError
	default:
		return kindNarrative
	}
}

// renderLineKind applies the style for a given lineKind.
func renderLineKind(line string, kind lineKind) string {
	switch kind {
	case kindYouSee:
		return styledYouSee(line)
	case kindExits:
		return styleExits.Render(line)
	case kindCombat:
		return styleCombat.Render(line)
	case kindOutcome:
		return styleOutcome.Render(line)
	case kindError:
		return styleError.Render(line)
	default:
		return styleNarrative.Render(line)
	}
}

// styledYouSee renders "You see: sword." with the item list bold.
func styledYouSee(line string) string {
	const prefix = "You see: "
	if !strings.HasPrefix(line, prefix) {
		return styleNarrative.Render(line)
	}
	return styleNarrative.Render(prefix) + styleYouSee.Render(line[len(prefix):])
}
