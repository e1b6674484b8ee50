package match

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/last-stand/game"
	"github.com/mark3labs/last-stand/game/physics"
)

// ApplyCollisions removes each hitting bullet and damages its victim. A kill
// credits the bullet's owner and yields a KillEvent. If the owner is no
// longer registered the death still stands but nobody is credited.
func ApplyCollisions(state *game.GameState, collisions []physics.Collision, now int64) []game.KillEvent {
	var kills []game.KillEvent
	consumed := make(map[string]bool, len(collisions))

	for _, hit := range collisions {
		// A bullet damages at most one player
		if consumed[hit.BulletID] {
			continue
		}
		consumed[hit.BulletID] = true
		removeBullet(state, hit.BulletID)

		victim, ok := state.Player(hit.PlayerID)
		if !ok || !victim.Alive {
			continue
		}

		if !victim.TakeDamage(hit.Damage) {
			continue
		}

		killer, ok := state.Player(hit.OwnerID)
		if !ok {
			log.Warn("Kill without a registered shooter", "victim", victim.ID, "owner", hit.OwnerID)
			continue
		}
		killer.Kills++

		kill := game.KillEvent{
			ID:        fmt.Sprintf("kill-%d-%s", now, victim.ID),
			KillerID:  killer.ID,
			Killer:    killer.Name,
			VictimID:  victim.ID,
			Victim:    victim.Name,
			Weapon:    hit.Weapon,
			Timestamp: now,
		}
		kills = append(kills, kill)
		log.Info("Player eliminated", "killer", killer.Name, "victim", victim.Name, "weapon", hit.Weapon)
	}
	return kills
}

// ApplyZoneDamage hurts every living player outside the safe zone. Zone
// deaths award no kill credit.
func ApplyZoneDamage(state *game.GameState, damage int) []string {
	outside := game.OutsideZone(state.Players, state.SafeZone)
	var died []string
	for _, id := range outside {
		player, ok := state.Player(id)
		if !ok {
			continue
		}
		if player.TakeDamage(damage) {
			died = append(died, id)
			log.Info("Player lost to the zone", "player", player.Name)
		}
	}
	return died
}

func removeBullet(state *game.GameState, id string) {
	for i := range state.Bullets {
		if state.Bullets[i].ID == id {
			state.Bullets = append(state.Bullets[:i], state.Bullets[i+1:]...)
			return
		}
	}
}
