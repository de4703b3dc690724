package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tmarek/hoard/engine"
	"github.com/tmarek/hoard/engine/state"
	"github.com/tmarek/hoard/types"
)

func testDefs() *state.Defs {
	return &state.Defs{
		Game: types.GameDef{Title: "Test", Version: "1.0", Start: "entrance", Intro: "Down you go."},
		Rooms: map[string]types.RoomDef{
			"entrance": {
				ID:          "entrance",
				Description: "The way in.",
				Exits:       map[string]string{"north": "hallway"},
			},
			"hallway": {
				ID:          "hallway",
				Description: "A hallway.",
				Exits:       map[string]string{"south": "entrance"},
				Items:       []string{"sword"},
			},
		},
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	defs := testDefs()
	m := New(engine.New(defs), defs)

	// Simulate the initial resize that makes the viewport ready.
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model)
}

func enter(t *testing.T, m Model, input string) (Model, tea.Cmd) {
	t.Helper()
	m.input.SetValue(input)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(Model), cmd
}

func TestModel_CommandProducesOutput(t *testing.T) {
	m := newTestModel(t)

	m, _ = enter(t, m, "look")

	var sawDesc, sawEcho bool
	for _, rl := range m.rawLines {
		if rl.text == "The way in." {
			sawDesc = true
		}
		if rl.isInput && rl.text == "> look" {
			sawEcho = true
		}
	}
	if !sawEcho {
		t.Error("player input was not echoed into the narrative")
	}
	if !sawDesc {
		t.Error("room description missing from the narrative")
	}
}

func TestModel_EmptyInputIgnored(t *testing.T) {
	m := newTestModel(t)
	before := len(m.rawLines)

	m, _ = enter(t, m, "   ")
	if len(m.rawLines) != before {
		t.Error("blank input should not append narrative lines")
	}
}

func TestModel_QuitOutcomeQuits(t *testing.T) {
	m := newTestModel(t)

	m, cmd := enter(t, m, "quit")
	if !m.quitting {
		t.Error("model should be quitting after the quit command")
	}
	if len(m.closing) == 0 {
		t.Error("closing lines should carry the farewell")
	}
	if cmd == nil {
		t.Error("expected a tea.Quit command")
	}
	if m.View() != "" {
		t.Error("quitting view should be empty")
	}
}

func TestModel_HistoryNavigation(t *testing.T) {
	m := newTestModel(t)
	m, _ = enter(t, m, "look")
	m, _ = enter(t, m, "go north")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(Model)
	if got := m.input.Value(); got != "go north" {
		t.Errorf("after up: input = %q, want %q", got, "go north")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(Model)
	if got := m.input.Value(); got != "look" {
		t.Errorf("after up up: input = %q, want %q", got, "look")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	if got := m.input.Value(); got != "go north" {
		t.Errorf("after down: input = %q, want %q", got, "go north")
	}
}

func TestModel_StatusBar(t *testing.T) {
	m := newTestModel(t)
	m, _ = enter(t, m, "go north")
	m, _ = enter(t, m, "take sword")

	bar := m.renderStatusBar()
	for _, want := range []string{"Hallway", "HP: 100", "south", "sword"} {
		if !strings.Contains(bar, want) {
			t.Errorf("status bar missing %q:\n%s", want, bar)
		}
	}
}

func TestHistory(t *testing.T) {
	h := NewHistory(3)

	if _, ok := h.Prev(); ok {
		t.Error("empty history should have no previous entry")
	}

	h.Push("a")
	h.Push("a") // consecutive duplicate collapsed
	h.Push("b")
	h.Push("c")
	h.Push("d") // evicts "a"

	if got, _ := h.Prev(); got != "d" {
		t.Errorf("Prev = %q, want d", got)
	}
	if got, _ := h.Prev(); got != "c" {
		t.Errorf("Prev = %q, want c", got)
	}
	if got, _ := h.Prev(); got != "b" {
		t.Errorf("Prev = %q, want b", got)
	}
	// At the oldest entry, Prev stays put.
	if got, _ := h.Prev(); got != "b" {
		t.Errorf("Prev at oldest = %q, want b", got)
	}

	if got, _ := h.Next(); got != "c" {
		t.Errorf("Next = %q, want c", got)
	}
	if got, _ := h.Next(); got != "d" {
		t.Errorf("Next = %q, want d", got)
	}
	if _, ok := h.Next(); ok {
		t.Error("Next past the newest entry should return false")
	}
}

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line string
		want lineKind
	}{
		{"The way in.", kindNarrative},
		{"You see: sword.", kindYouSee},
		{"Exits: north, south.", kindExits},
		{"Known world:", kindExits},
		{"Round 3: you punch the Goblin for 5 damage.", kindCombat},
		{"You square up against the Goblin!", kindCombat},
		{"The Goblin hits back for 10 damage. You have 90 health left.", kindCombat},
		{"The Goblin falls!", kindCombat},
		{"You are victorious. The hoard is yours!", kindOutcome},
		{"You collapse. Your adventure ends here.", kindOutcome},
		{"You can't go that way.", kindError},
		{"There is no shield here.", kindError},
		{"There is nothing to fight here.", kindError},
		{"I don't understand that. Type 'help' for commands.", kindError},
		{"Go where?", kindError},
		{"Take what?", kindError},
	}
	for _, tt := range tests {
		if got := classifyLine(tt.line); got != tt.want {
			t.Errorf("classifyLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}
