package game

import (
	"math"

	"github.com/charmbracelet/log"
)

// HumanController applies the input snapshot to the human player
type HumanController struct {
	cfg Config
}

// NewHumanController creates a controller for the human player
func NewHumanController(cfg Config) *HumanController {
	return &HumanController{cfg: cfg}
}

// Kind implements Controller
func (c *HumanController) Kind() Kind {
	return KindHuman
}

// Update moves, aims, and fires for the living human. Diagonal input is not
// normalized.
func (c *HumanController) Update(state *GameState, in Input, now int64) []BulletState {
	player, ok := state.Human()
	if !ok || !player.Alive {
		return nil
	}

	step := c.cfg.PlayerSpeed
	pos := player.Position
	if in.MoveUp {
		pos.Y -= step
	}
	if in.MoveDown {
		pos.Y += step
	}
	if in.MoveLeft {
		pos.X -= step
	}
	if in.MoveRight {
		pos.X += step
	}
	player.Position = c.cfg.Map.ClampInset(pos, c.cfg.PlayerRadius)

	// Facing follows the cursor relative to the viewport centre
	center := c.cfg.Viewport.Center()
	player.Angle = math.Atan2(in.CursorY-center.Y, in.CursorX-center.X)

	if !in.Firing {
		return nil
	}

	if !player.CanFire(now) || player.AmmoCount() <= 0 {
		return nil
	}

	target := Position{
		X: player.Position.X + (in.CursorX - center.X),
		Y: player.Position.Y + (in.CursorY - center.Y),
	}
	bullet := NewBullet(player, target, c.cfg, state.NextBulletSeqID())
	player.ConsumeAmmo()
	player.LastShotAt = now

	log.Debug("Human fired", "player", player.ID, "weapon", player.Weapon, "ammoLeft", player.AmmoCount())
	return []BulletState{bullet}
}
