package game

import (
	"math"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/last-stand/game/shared"
)

// BotBehavior names the branch a bot took on its last update
type BotBehavior string

const (
	BotEvacuate BotBehavior = "evacuate"
	BotEngage   BotBehavior = "engage"
	BotWander   BotBehavior = "wander"
)

// NPCController drives bots: evacuate the storm first, then fight a nearby
// human, otherwise wander
type NPCController struct {
	cfg Config
	rng Random
}

// NewNPCController creates a new bot controller
func NewNPCController(cfg Config, rng Random) *NPCController {
	return &NPCController{cfg: cfg, rng: rng}
}

// Kind implements Controller
func (c *NPCController) Kind() Kind {
	return KindBot
}

// Update moves every living bot and returns the bullets they fired
func (c *NPCController) Update(state *GameState, _ Input, _ int64) []BulletState {
	var bullets []BulletState
	for i := range state.Players {
		bot := &state.Players[i]
		if bot.Kind != KindBot || !bot.Alive {
			continue
		}

		behavior, bullet := c.updateBot(bot, state)
		if bullet != nil {
			bullets = append(bullets, *bullet)
		}

		// Keep bots within bounds
		bot.Position = c.cfg.Map.ClampInset(bot.Position, c.cfg.PlayerRadius)

		// Loot variety without an explicit pickup
		if c.rng.Float64() < c.cfg.Bot.WeaponSwapChance {
			bot.Weapon = AllWeapons[c.rng.Intn(len(AllWeapons))]
			log.Debug("Bot swapped weapon", "bot", bot.ID, "weapon", bot.Weapon)
		}

		log.Debug("Bot updated", "bot", bot.ID, "behavior", behavior,
			"x", bot.Position.X, "y", bot.Position.Y)
	}
	return bullets
}

func (c *NPCController) updateBot(bot *PlayerState, state *GameState) (BotBehavior, *BulletState) {
	zone := state.SafeZone
	speed := c.cfg.PlayerSpeed

	// Move towards safe zone if near or past the edge
	if shared.Distance(bot.Position, zone.Center) > zone.Radius-c.cfg.Bot.EvacuateMargin {
		angle := shared.Angle(bot.Position, zone.Center)
		bot.Position = bot.Position.Add(shared.Heading(angle, speed*c.cfg.Bot.EvacuateSpeed))
		return BotEvacuate, nil
	}

	if target := c.findTarget(bot, state.Players); target != nil {
		angle := shared.Angle(bot.Position, target.Position)
		bot.Angle = angle
		bot.Position = bot.Position.Add(shared.Heading(angle, speed*c.cfg.Bot.EngageSpeed))

		if c.rng.Float64() < c.cfg.Bot.FireChance && bot.AmmoCount() > 0 {
			bullet := NewBullet(bot, target.Position, c.cfg, state.NextBulletSeqID())
			bot.ConsumeAmmo()
			log.Debug("Bot fired", "bot", bot.ID, "target", target.ID, "weapon", bot.Weapon)
			return BotEngage, &bullet
		}
		return BotEngage, nil
	}

	if c.rng.Float64() < c.cfg.Bot.TurnChance {
		bot.Angle = c.rng.Float64() * 2 * math.Pi
	}
	bot.Position = bot.Position.Add(shared.Heading(bot.Angle, speed*c.cfg.Bot.WanderSpeed))
	return BotWander, nil
}

// findTarget looks for the nearest living human within detection range
func (c *NPCController) findTarget(bot *PlayerState, players []PlayerState) *PlayerState {
	var nearest *PlayerState
	nearestDist := c.cfg.Bot.DetectionRadius

	for i := range players {
		p := &players[i]
		if p.ID == bot.ID || !p.Alive || p.Kind == KindBot {
			continue
		}
		if dist := shared.Distance(bot.Position, p.Position); dist < nearestDist {
			nearestDist = dist
			nearest = p
		}
	}
	return nearest
}
