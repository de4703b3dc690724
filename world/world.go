// Package world provides the built-in default world: three rooms, a sword,
// and a goblin guarding the hoard. Custom worlds load from Lua instead.
package world

import (
	"github.com/tmarek/hoard/engine/state"
	"github.com/tmarek/hoard/types"
)

// Default returns the built-in world definitions. The hallway↔entrance link
// is bidirectional; the hallway→treasure room exit deliberately has no
// return edge.
func Default() *state.Defs {
	return &state.Defs{
		Game: types.GameDef{
			Title:   "The Goblin's Hoard",
			Author:  "hoard",
			Version: "1.0",
			Start:   "entrance",
			Intro:   "Rumor has it a goblin guards a hoard somewhere below. Find it.",
		},
		Rooms: map[string]types.RoomDef{
			"entrance": {
				ID:          "entrance",
				Description: "You stand at the entrance of a crumbling dungeon. Cold air drifts from the north.",
				Exits:       map[string]string{"north": "hallway"},
			},
			"hallway": {
				ID:          "hallway",
				Description: "A torch-lit hallway. Something metallic glints on the floor.",
				Exits:       map[string]string{"south": "entrance", "east": "treasure_room"},
				Items:       []string{"sword"},
			},
			"treasure_room": {
				ID:          "treasure_room",
				Description: "Gold and jewels glitter in heaps around you.",
				Exits:       map[string]string{},
			},
		},
		Enemies: map[string]types.EnemyDef{
			"goblin": {
				ID:     "goblin",
				Name:   "Goblin",
				Room:   "treasure_room",
				Health: 30,
				Damage: 10,
			},
		},
	}
}
