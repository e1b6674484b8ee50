package physics

import (
	"github.com/mark3labs/last-stand/game"
	"github.com/mark3labs/last-stand/game/shared"
)

// AdvanceBullets moves every bullet by velocity*dt frames and keeps only
// those still strictly inside bounds. Bullets that leave are dropped
// silently.
func AdvanceBullets(bullets []game.BulletState, bounds shared.Bounds, dt float64) []game.BulletState {
	kept := make([]game.BulletState, 0, len(bullets))
	for _, bullet := range bullets {
		bullet.Position = bullet.Position.Add(bullet.Velocity.Scale(dt))
		if bounds.Contains(bullet.Position) {
			kept = append(kept, bullet)
		}
	}
	return kept
}
