package game

import (
	"fmt"
	"math"
)

// botNames are handed out in order; bots past the end get a synthetic name
var botNames = []string{
	"Alpha", "Bravo", "Charlie", "Delta", "Echo", "Foxtrot", "Golf", "Hotel",
	"India", "Juliet", "Kilo", "Lima", "Mike", "November", "Oscar", "Papa",
}

// CreatePlayer builds a fresh, living player at a random spawn point inset
// from the map edges
func CreatePlayer(rng Random, cfg Config, id, name string, kind Kind) PlayerState {
	margin := cfg.SpawnMargin
	spawn := Position{
		X: randomBetween(rng, margin, cfg.Map.Width-margin),
		Y: randomBetween(rng, margin, cfg.Map.Height-margin),
	}

	stock := cfg.HumanAmmo
	if kind == KindBot {
		stock = cfg.BotAmmo
	}
	ammo := make(map[AmmoType]int, len(AllAmmo))
	for _, a := range AllAmmo {
		ammo[a] = stock[a]
	}

	return PlayerState{
		ID:        id,
		Name:      name,
		Position:  spawn,
		Angle:     0,
		Health:    cfg.MaxHealth,
		MaxHealth: cfg.MaxHealth,
		Weapon:    Pistol,
		Ammo:      ammo,
		Kills:     0,
		Alive:     true,
		Color:     fmt.Sprintf("hsl(%d, 70%%, 60%%)", int(rng.Float64()*360)),
		Kind:      kind,
	}
}

// BotName returns the display name for the i-th bot
func BotName(i int) string {
	if i >= 0 && i < len(botNames) {
		return botNames[i]
	}
	return fmt.Sprintf("Bot%d", i)
}

// CreateBots generates count bots with stable ids bot-0..bot-(count-1)
func CreateBots(rng Random, cfg Config, count int) []PlayerState {
	bots := make([]PlayerState, 0, count)
	for i := 0; i < count; i++ {
		bots = append(bots, CreatePlayer(rng, cfg, fmt.Sprintf("bot-%d", i), BotName(i), KindBot))
	}
	return bots
}

// NewBullet spawns a bullet at the owner's position heading toward target.
// Velocity is already scaled for one frame.
func NewBullet(owner *PlayerState, target Position, cfg Config, seq uint64) BulletState {
	angle := math.Atan2(target.Y-owner.Position.Y, target.X-owner.Position.X)
	stats := StatsFor(owner.Weapon)
	return BulletState{
		ID:       fmt.Sprintf("%s-b%d", owner.ID, seq),
		OwnerID:  owner.ID,
		Position: owner.Position,
		Velocity: Position{X: math.Cos(angle) * cfg.BulletSpeed, Y: math.Sin(angle) * cfg.BulletSpeed},
		Damage:   stats.Damage,
		Weapon:   owner.Weapon,
	}
}
