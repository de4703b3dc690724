// Package state manages the mutable game state and lookups against the
// immutable world definitions.
package state

import "github.com/tmarek/hoard/types"

// PlayerStartHealth is the health every new player begins with.
const PlayerStartHealth = 100

// Defs holds the immutable world definitions. The world graph owns all
// rooms; exits and the player location are IDs into Rooms, never copies.
type Defs struct {
	Game    types.GameDef
	Rooms   map[string]types.RoomDef
	Enemies map[string]types.EnemyDef
}

// NewState creates a fresh game state from definitions. Room item lists and
// enemy health are copied out of the defs so play never mutates them.
func NewState(defs *Defs) *types.State {
	s := &types.State{
		Player: types.Player{
			Location:  defs.Game.Start,
			Health:    PlayerStartHealth,
			Inventory: []string{},
			Visited:   map[string]bool{defs.Game.Start: true},
		},
		RoomItems:   map[string][]string{},
		EnemyHealth: map[string]int{},
		CommandLog:  []string{},
	}
	for id, room := range defs.Rooms {
		items := make([]string, len(room.Items))
		copy(items, room.Items)
		s.RoomItems[id] = items
	}
	for id, enemy := range defs.Enemies {
		s.EnemyHealth[id] = enemy.Health
	}
	return s
}

// HasItem returns true if the player carries at least one of the given item.
func HasItem(s *types.State, item string) bool {
	for _, it := range s.Player.Inventory {
		if it == item {
			return true
		}
	}
	return false
}

// RoomExits returns the exits of a room. Topology is fixed after load, so
// this reads straight from the defs.
func RoomExits(defs *Defs, roomID string) map[string]string {
	room, ok := defs.Rooms[roomID]
	if !ok {
		return nil
	}
	return room.Exits
}

// EnemyInRoom returns the enemy bound to a room, dead or alive.
func EnemyInRoom(defs *Defs, roomID string) (types.EnemyDef, bool) {
	for _, enemy := range defs.Enemies {
		if enemy.Room == roomID {
			return enemy, true
		}
	}
	return types.EnemyDef{}, false
}

// EnemyAlive returns true while the enemy's remaining health is positive.
// A defeated enemy is terminal; it never revives.
func EnemyAlive(s *types.State, enemyID string) bool {
	return s.EnemyHealth[enemyID] > 0
}

// RemoveRoomItem removes the first occurrence of item from a room's item
// list. Returns false, touching nothing, if the item is not there.
func RemoveRoomItem(s *types.State, roomID, item string) bool {
	items := s.RoomItems[roomID]
	for i, it := range items {
		if it == item {
			s.RoomItems[roomID] = append(items[:i:i], items[i+1:]...)
			return true
		}
	}
	return false
}
