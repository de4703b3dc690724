package engine

import (
	"fmt"

	"github.com/tmarek/hoard/engine/state"
	"github.com/tmarek/hoard/types"
)

// Weapon tiers. Carrying the sword is the sole condition for the higher
// blow; there is no durability, no second weapon, no randomness.
const (
	weaponItem   = "sword"
	strikeDamage = 15
	punchDamage  = 5
)

// phase is the combat resolver state. A fight moves NoEncounter → Engaged →
// Victory|Defeat; both end states are terminal for the whole session.
type phase int

const (
	phaseNoEncounter phase = iota
	phaseEngaged
	phaseVictory
	phaseDefeat
)

// resolveFight runs the combat state machine. Without a living enemy in the
// room it stays in NoEncounter and is freely repeatable. Once engaged, the
// fight loops full rounds — player blow, death check, retaliation, death
// check — until one side drops. Termination is guaranteed: both sides lose
// strictly positive health every round.
func (e *Engine) resolveFight() types.Result {
	enemy, ok := state.EnemyInRoom(e.Defs, e.State.Player.Location)
	if !ok || !state.EnemyAlive(e.State, enemy.ID) {
		return types.Result{Output: []string{"There is nothing to fight here."}}
	}

	p := phaseEngaged
	output := []string{fmt.Sprintf("You square up against the %s!", enemy.Name)}

	round := 0
	for p == phaseEngaged {
		round++

		// Player attacks first.
		blow, damage := "punch", punchDamage
		if state.HasItem(e.State, weaponItem) {
			blow, damage = "strike", strikeDamage
		}
		e.State.EnemyHealth[enemy.ID] -= damage
		output = append(output, fmt.Sprintf("Round %d: you %s the %s for %d damage.",
			round, blow, enemy.Name, damage))

		// A lethal blow ends the round before the enemy can hit back.
		if !state.EnemyAlive(e.State, enemy.ID) {
			p = phaseVictory
			output = append(output,
				fmt.Sprintf("The %s falls!", enemy.Name),
				"You are victorious. The hoard is yours!")
			continue
		}

		// Retaliation.
		e.State.Player.Health -= enemy.Damage
		output = append(output, fmt.Sprintf("The %s hits back for %d damage. You have %d health left.",
			enemy.Name, enemy.Damage, e.State.Player.Health))

		if e.State.Player.Health <= 0 {
			p = phaseDefeat
			output = append(output,
				fmt.Sprintf("The %s has bested you.", enemy.Name),
				"You collapse. Your adventure ends here.")
		}
	}

	outcome := types.OutcomeVictory
	if p == phaseDefeat {
		outcome = types.OutcomeDefeat
	}
	return types.Result{Output: output, Outcome: outcome}
}
