package match

import (
	"github.com/charmbracelet/log"
	"github.com/mark3labs/last-stand/game"
	"github.com/mark3labs/last-stand/game/physics"
)

// Engine advances a snapshot by one tick. It never mutates the snapshot it
// is given.
type Engine struct {
	cfg         game.Config
	rng         game.Random
	controllers []game.Controller
	physics     physics.PhysicsEngine
}

// NewEngine wires the per-kind controllers and physics for cfg. Bots are
// updated before the human so proximity checks see their new positions.
func NewEngine(cfg game.Config, rng game.Random) *Engine {
	return &Engine{
		cfg: cfg,
		rng: rng,
		controllers: []game.Controller{
			game.NewNPCController(cfg, rng),
			game.NewHumanController(cfg),
		},
		physics: physics.NewPhysicsManager(cfg),
	}
}

// Config returns the engine's gameplay configuration
func (e *Engine) Config() game.Config {
	return e.cfg
}

// Tick computes the snapshot that follows prev given the input captured for
// this frame and the wall-clock time in milliseconds. Snapshots outside the
// playing phase are returned unchanged.
func (e *Engine) Tick(prev game.GameState, in game.Input, now int64) (game.GameState, []game.KillEvent) {
	next := prev.Clone()
	if next.Phase != game.PhasePlaying {
		return next, nil
	}

	for _, controller := range e.controllers {
		fired := controller.Update(&next, in, now)
		next.Bullets = append(next.Bullets, fired...)
	}

	for _, pickup := range game.CollectItems(e.rng, e.cfg, next.Players, next.Items) {
		log.Debug("Item collected", "player", pickup.PlayerID, "item", pickup.ItemID, "type", pickup.Type)
	}

	next.Bullets = e.physics.Advance(next.Bullets)

	collisions := e.physics.Resolve(next.Bullets, next.Players)
	kills := ApplyCollisions(&next, collisions, now)

	next.SafeZone = game.UpdateSafeZone(e.cfg, next.SafeZone, now-next.MatchStartTime)
	ApplyZoneDamage(&next, e.cfg.ZoneDamage)

	next.PlayersAlive = CountAlive(next.Players)
	if CheckWinner(&next) {
		winner := "none"
		if next.Winner != nil {
			winner = *next.Winner
		}
		log.Info("Match ended", "winner", winner, "players", len(next.Players))
	}

	return next, kills
}
