package loader

import (
	"fmt"
	"strings"

	"github.com/tmarek/hoard/engine/state"
)

// ValidationError collects all validation errors.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// validate checks the compiled defs for referential integrity.
func validate(defs *state.Defs) error {
	ve := &ValidationError{}

	if defs.Game.Title == "" {
		ve.Errors = append(ve.Errors, "Game.title is required")
	}

	// Start room exists.
	if defs.Game.Start == "" {
		ve.Errors = append(ve.Errors, "Game.start is required")
	} else if _, ok := defs.Rooms[defs.Game.Start]; !ok {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"start room %q not found in defined rooms", defs.Game.Start))
	}

	// Exit targets valid. Exits are directed; a missing back-edge is fine.
	for roomID, room := range defs.Rooms {
		for dir, target := range room.Exits {
			if _, ok := defs.Rooms[target]; !ok {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"room %q exit %q points to undefined room %q", roomID, dir, target))
			}
		}
		for _, item := range room.Items {
			if item == "" {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"room %q contains an empty item name", roomID))
			}
		}
	}

	// Enemies: valid room, at most one per room, positive stats.
	occupied := map[string]string{}
	for enemyID, enemy := range defs.Enemies {
		if enemy.Name == "" {
			ve.Errors = append(ve.Errors, fmt.Sprintf("enemy %q has no name", enemyID))
		}
		if _, ok := defs.Rooms[enemy.Room]; !ok {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"enemy %q placed in undefined room %q", enemyID, enemy.Room))
		} else if other, taken := occupied[enemy.Room]; taken {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"room %q holds both %q and %q; at most one enemy per room", enemy.Room, other, enemyID))
		} else {
			occupied[enemy.Room] = enemyID
		}
		if enemy.Health <= 0 {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"enemy %q health must be positive, got %d", enemyID, enemy.Health))
		}
		if enemy.Damage <= 0 {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"enemy %q damage must be positive, got %d", enemyID, enemy.Damage))
		}
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}
