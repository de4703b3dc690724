package loader

import (
	"fmt"

	"github.com/tmarek/hoard/engine/state"
	"github.com/tmarek/hoard/types"
	lua "github.com/yuin/gopher-lua"
)

// rawRoom holds a room table before compilation.
type rawRoom struct {
	id    string
	table *lua.LTable
}

// rawEnemy holds an enemy table before compilation.
type rawEnemy struct {
	id    string
	table *lua.LTable
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	if s, ok := tbl.RawGetString(key).(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getInt returns an int field from a Lua table, or 0 if missing.
func getInt(tbl *lua.LTable, key string) int {
	if n, ok := tbl.RawGetString(key).(lua.LNumber); ok {
		return int(n)
	}
	return 0
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	if t, ok := tbl.RawGetString(key).(*lua.LTable); ok {
		return t
	}
	return nil
}

// tableToStringMap converts a Lua table to a map[string]string.
func tableToStringMap(tbl *lua.LTable) map[string]string {
	m := map[string]string{}
	if tbl == nil {
		return m
	}
	tbl.ForEach(func(k, v lua.LValue) {
		if ks, ok := k.(lua.LString); ok {
			if vs, ok := v.(lua.LString); ok {
				m[string(ks)] = string(vs)
			}
		}
	})
	return m
}

// tableToStringSlice converts a Lua array table to a []string, preserving
// order.
func tableToStringSlice(tbl *lua.LTable) []string {
	var result []string
	if tbl == nil {
		return result
	}
	for i := 1; i <= tbl.MaxN(); i++ {
		if s, ok := tbl.RawGetInt(i).(lua.LString); ok {
			result = append(result, string(s))
		}
	}
	return result
}

// compile converts all collected Lua data into a Defs struct.
func compile(coll *collector) (*state.Defs, error) {
	defs := &state.Defs{
		Rooms:   map[string]types.RoomDef{},
		Enemies: map[string]types.EnemyDef{},
	}

	if coll.game == nil {
		return nil, fmt.Errorf("no Game{} definition found")
	}
	defs.Game = types.GameDef{
		Title:   getString(coll.game, "title"),
		Author:  getString(coll.game, "author"),
		Version: getString(coll.game, "version"),
		Start:   getString(coll.game, "start"),
		Intro:   getString(coll.game, "intro"),
	}

	for _, raw := range coll.rooms {
		if _, ok := defs.Rooms[raw.id]; ok {
			return nil, fmt.Errorf("duplicate room %q", raw.id)
		}
		defs.Rooms[raw.id] = types.RoomDef{
			ID:          raw.id,
			Description: getString(raw.table, "description"),
			Exits:       tableToStringMap(getTable(raw.table, "exits")),
			Items:       tableToStringSlice(getTable(raw.table, "items")),
		}
	}

	for _, raw := range coll.enemies {
		if _, ok := defs.Enemies[raw.id]; ok {
			return nil, fmt.Errorf("duplicate enemy %q", raw.id)
		}
		defs.Enemies[raw.id] = types.EnemyDef{
			ID:     raw.id,
			Name:   getString(raw.table, "name"),
			Room:   getString(raw.table, "room"),
			Health: getInt(raw.table, "health"),
			Damage: getInt(raw.table, "damage"),
		}
	}

	return defs, nil
}
