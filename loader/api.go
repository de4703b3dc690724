package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers the world-definition constructors as Lua globals.
//
//	Game { title = "...", start = "entrance", ... }
//	Room "entrance" { description = "...", exits = { north = "hallway" }, items = { "sword" } }
//	Enemy "goblin" { name = "Goblin", room = "treasure_room", health = 30, damage = 10 }
func registerAPI(L *lua.LState, coll *collector) {
	// Game { ... }
	L.SetGlobal("Game", L.NewFunction(func(L *lua.LState) int {
		coll.game = L.CheckTable(1)
		return 0
	}))

	// Room "id" { ... } — curried: Room("id") returns a function taking a table.
	L.SetGlobal("Room", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.rooms = append(coll.rooms, rawRoom{id: id, table: tbl})
			return 0
		}))
		return 1
	}))

	// Enemy "id" { ... } — curried like Room.
	L.SetGlobal("Enemy", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.enemies = append(coll.enemies, rawEnemy{id: id, table: tbl})
			return 0
		}))
		return 1
	}))
}
