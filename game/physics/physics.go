package physics

import (
	"github.com/charmbracelet/log"
	"github.com/mark3labs/last-stand/game"
	"github.com/mark3labs/last-stand/game/shared"
)

// PhysicsEngine is the projectile side of a tick
type PhysicsEngine interface {
	Advance(bullets []game.BulletState) []game.BulletState
	Resolve(bullets []game.BulletState, players []game.PlayerState) []Collision
}

// PhysicsManager applies the configured bounds and hit radius
type PhysicsManager struct {
	bounds    shared.Bounds
	hitRadius float64
}

// NewPhysicsManager creates a physics manager for the given match config
func NewPhysicsManager(cfg game.Config) *PhysicsManager {
	log.Debug("Physics initialized", "width", cfg.Map.Width, "height", cfg.Map.Height, "hitRadius", cfg.HitRadius)
	return &PhysicsManager{
		bounds:    cfg.Map,
		hitRadius: cfg.HitRadius,
	}
}

// Advance steps bullets by one frame
func (pm *PhysicsManager) Advance(bullets []game.BulletState) []game.BulletState {
	before := len(bullets)
	kept := AdvanceBullets(bullets, pm.bounds, 1)
	if dropped := before - len(kept); dropped > 0 {
		log.Debug("Bullets left the map", "dropped", dropped, "active", len(kept))
	}
	return kept
}

// Resolve detects bullet/player overlaps
func (pm *PhysicsManager) Resolve(bullets []game.BulletState, players []game.PlayerState) []Collision {
	return ResolveCollisions(bullets, players, pm.hitRadius)
}
