// Package types defines the shared data structures for the Hoard engine.
// This package contains only type definitions — no logic, no methods.
package types

// Command is the parsed representation of a player input line.
type Command struct {
	Verb string
	Arg  string // optional
}

// Outcome is the terminal-state signal a turn can produce. The engine never
// terminates the process itself; front-ends react to a non-zero outcome.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeQuit
	OutcomeVictory
	OutcomeDefeat
)

// Result is the output of a single game step.
type Result struct {
	Output  []string
	Outcome Outcome
}

// GameDef holds game metadata.
type GameDef struct {
	Title   string
	Author  string
	Version string
	Start   string // starting room ID
	Intro   string
}

// RoomDef is the immutable definition of a room. Topology never changes
// after load; only the runtime item list and enemy health do.
type RoomDef struct {
	ID          string
	Description string
	Exits       map[string]string // direction → room ID
	Items       []string          // initial item placement, in order
}

// EnemyDef is the immutable definition of an enemy bound to a room.
// At most one enemy occupies a room.
type EnemyDef struct {
	ID     string
	Name   string
	Room   string
	Health int
	Damage int
}

// Player holds the player's runtime state. Location is a room ID into the
// world definitions, never a copy of the room.
type Player struct {
	Location  string
	Health    int
	Inventory []string
	Visited   map[string]bool
}

// State is the complete mutable game state.
type State struct {
	Player      Player
	RoomItems   map[string][]string // room ID → items currently lying there
	EnemyHealth map[string]int      // enemy ID → remaining health
	TurnCount   int
	CommandLog  []string
}
