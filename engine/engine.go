// Package engine implements the turn loop: one Step per input line, each
// parsed, dispatched to an action, and answered with output lines and an
// outcome signal. A step runs to completion before the next one starts; a
// triggered fight resolves fully inside its step.
package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tmarek/hoard/engine/parser"
	"github.com/tmarek/hoard/engine/state"
	"github.com/tmarek/hoard/types"
)

// Engine holds the world definitions and mutable state.
type Engine struct {
	Defs  *state.Defs
	State *types.State
}

// New creates a new engine from definitions.
func New(defs *state.Defs) *Engine {
	return &Engine{
		Defs:  defs,
		State: state.NewState(defs),
	}
}

// Step processes one player command and returns the result. Anomalous input
// (unknown verb, missing argument, bad direction, absent item, no enemy) is
// answered with a message and zero state mutation — there is no error class
// in the domain.
func (e *Engine) Step(input string) types.Result {
	cmd := parser.Parse(input)

	e.State.CommandLog = append(e.State.CommandLog, input)

	if cmd.Verb == "" {
		return types.Result{Output: []string{"What do you want to do?"}}
	}

	var result types.Result
	switch cmd.Verb {
	case "go":
		result = e.move(cmd.Arg)
	case "take":
		result = e.take(cmd.Arg)
	case "inventory":
		result = e.showInventory()
	case "look":
		result = types.Result{Output: e.describeRoom(e.State.Player.Location)}
	case "fight":
		result = e.resolveFight()
	case "map":
		result = e.showMap()
	case "help":
		result = e.showHelp()
	case "quit":
		result = types.Result{
			Output:  []string{"You leave the dungeon behind. Goodbye."},
			Outcome: types.OutcomeQuit,
		}
	default:
		result = types.Result{Output: []string{"I don't understand that. Type 'help' for commands."}}
	}

	e.State.TurnCount++
	return result
}

// move attempts to follow an exit. An absent direction is an expected no-op,
// not a fault: the player stays put.
func (e *Engine) move(direction string) types.Result {
	if direction == "" {
		return types.Result{Output: []string{"Go where?"}}
	}

	exits := state.RoomExits(e.Defs, e.State.Player.Location)
	target, ok := exits[direction]
	if !ok {
		return types.Result{Output: []string{"You can't go that way."}}
	}

	e.State.Player.Location = target
	e.State.Player.Visited[target] = true
	return types.Result{Output: e.describeRoom(target)}
}

// take moves one occurrence of an item from the current room to the
// inventory, preserving insertion order. Duplicate item names are fine.
func (e *Engine) take(item string) types.Result {
	if item == "" {
		return types.Result{Output: []string{"Take what?"}}
	}

	if !state.RemoveRoomItem(e.State, e.State.Player.Location, item) {
		return types.Result{Output: []string{fmt.Sprintf("There is no %s here.", item)}}
	}
	e.State.Player.Inventory = append(e.State.Player.Inventory, item)
	return types.Result{Output: []string{fmt.Sprintf("You take the %s.", item)}}
}

func (e *Engine) showInventory() types.Result {
	inv := e.State.Player.Inventory
	if len(inv) == 0 {
		return types.Result{Output: []string{"You are carrying nothing."}}
	}
	return types.Result{Output: []string{"You are carrying: " + strings.Join(inv, ", ") + "."}}
}

// showMap lists every room in the world, marking visited ones and the
// player's position.
func (e *Engine) showMap() types.Result {
	ids := make([]string, 0, len(e.Defs.Rooms))
	for id := range e.Defs.Rooms {
		ids = append(ids, id)
	}
	sort.Strings(ids) // deterministic order

	output := []string{"Known world:"}
	for _, id := range ids {
		line := "  " + RoomDisplayName(id)
		if e.State.Player.Visited[id] {
			line += " (visited)"
		}
		if id == e.State.Player.Location {
			line += " — you are here"
		}
		output = append(output, line)
	}
	return types.Result{Output: output}
}

func (e *Engine) showHelp() types.Result {
	return types.Result{Output: []string{
		"Commands:",
		"  go <direction>   — Move (or just type n/s/e/w)",
		"  take <item>      — Pick something up",
		"  inventory (i)    — Check what you're carrying",
		"  look (l)         — Describe the room",
		"  fight            — Fight the enemy in this room",
		"  map (m)          — List rooms you know of",
		"  help             — Show this help",
		"  quit             — Leave the game",
	}}
}

// describeRoom produces the standard room description output: description,
// items, enemy, exits.
func (e *Engine) describeRoom(roomID string) []string {
	room, ok := e.Defs.Rooms[roomID]
	if !ok {
		return []string{"You are somewhere unknown."}
	}

	var output []string
	output = append(output, room.Description)

	if items := e.State.RoomItems[roomID]; len(items) > 0 {
		output = append(output, "You see: "+strings.Join(items, ", ")+".")
	}

	if enemy, ok := state.EnemyInRoom(e.Defs, roomID); ok {
		if state.EnemyAlive(e.State, enemy.ID) {
			output = append(output, fmt.Sprintf("A %s blocks your way!", enemy.Name))
		} else {
			output = append(output, fmt.Sprintf("The defeated %s lies here.", enemy.Name))
		}
	}

	if exits := state.RoomExits(e.Defs, roomID); len(exits) > 0 {
		dirs := make([]string, 0, len(exits))
		for dir := range exits {
			dirs = append(dirs, dir)
		}
		sort.Strings(dirs) // deterministic order
		output = append(output, "Exits: "+strings.Join(dirs, ", ")+".")
	}

	return output
}

// RoomDisplayName derives a human-readable name from a room ID.
// "treasure_room" -> "Treasure Room".
func RoomDisplayName(id string) string {
	words := strings.Split(id, "_")
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
