package physics

import (
	"github.com/mark3labs/last-stand/game"
)

// ColliderType represents the type of collider
type ColliderType string

const (
	// ColliderPlayer is a player collider
	ColliderPlayer ColliderType = "player"
	// ColliderBullet is a bullet collider
	ColliderBullet ColliderType = "bullet"
)

// Collider represents a collision object
type Collider struct {
	Position game.Position
	Radius   float64
	Type     ColliderType
	ID       string
}

// CheckCollision checks if two colliders are intersecting
func CheckCollision(a, b *Collider) bool {
	dx := a.Position.X - b.Position.X
	dy := a.Position.Y - b.Position.Y
	distanceSquared := dx*dx + dy*dy

	sumRadii := a.Radius + b.Radius
	return distanceSquared < sumRadii*sumRadii
}

// GetPlayerCollider creates a collider for a player
func GetPlayerCollider(player *game.PlayerState, radius float64) *Collider {
	return &Collider{
		Position: player.Position,
		Radius:   radius,
		Type:     ColliderPlayer,
		ID:       player.ID,
	}
}

// GetBulletCollider creates a point collider for a bullet
func GetBulletCollider(bullet *game.BulletState) *Collider {
	return &Collider{
		Position: bullet.Position,
		Radius:   0,
		Type:     ColliderBullet,
		ID:       bullet.ID,
	}
}

// Collision records one bullet overlapping one player
type Collision struct {
	BulletID string
	PlayerID string
	OwnerID  string
	Damage   int
	Weapon   game.Weapon
}

// ResolveCollisions scans every (bullet, player) pair. Dead players and the
// bullet's owner are never targets. A player may be hit by several bullets
// in the same pass; each hit is its own record.
func ResolveCollisions(bullets []game.BulletState, players []game.PlayerState, hitRadius float64) []Collision {
	var collisions []Collision
	for bi := range bullets {
		bullet := &bullets[bi]
		bulletCollider := GetBulletCollider(bullet)

		for pi := range players {
			player := &players[pi]
			if !player.Alive || player.ID == bullet.OwnerID {
				continue
			}
			if !CheckCollision(bulletCollider, GetPlayerCollider(player, hitRadius)) {
				continue
			}
			collisions = append(collisions, Collision{
				BulletID: bullet.ID,
				PlayerID: player.ID,
				OwnerID:  bullet.OwnerID,
				Damage:   bullet.Damage,
				Weapon:   bullet.Weapon,
			})
		}
	}
	return collisions
}
