package game

import (
	"fmt"

	"github.com/mark3labs/last-stand/game/shared"
)

// Item spawn weights. Grenades are a valid category but never spawned.
const (
	weaponItemChance = 0.4
	ammoItemChance   = 0.3
)

// Pickup records one collected item
type Pickup struct {
	PlayerID string
	ItemID   string
	Type     ItemType
}

// RollItemType draws an item category: 40% weapon, 30% ammo, 30% health
func RollItemType(rng Random) ItemType {
	r := rng.Float64()
	switch {
	case r < weaponItemChance:
		return ItemWeapon
	case r < weaponItemChance+ammoItemChance:
		return ItemAmmo
	default:
		return ItemHealth
	}
}

// SpawnItems creates the match's fixed pool of pickups
func SpawnItems(rng Random, cfg Config) []ItemState {
	items := make([]ItemState, 0, cfg.ItemSpawnCount)
	for i := 0; i < cfg.ItemSpawnCount; i++ {
		itemType := RollItemType(rng)
		items = append(items, ItemState{
			ID:   fmt.Sprintf("item-%d", i),
			Type: itemType,
			Position: Position{
				X: randomBetween(rng, cfg.ItemMargin, cfg.Map.Width-cfg.ItemMargin),
				Y: randomBetween(rng, cfg.ItemMargin, cfg.Map.Height-cfg.ItemMargin),
			},
		})
	}
	return items
}

// CollectItems marks every uncollected item touched by a living player as
// collected and applies its effect immediately
func CollectItems(rng Random, cfg Config, players []PlayerState, items []ItemState) []Pickup {
	var pickups []Pickup
	for pi := range players {
		player := &players[pi]
		if !player.Alive {
			continue
		}
		for ii := range items {
			item := &items[ii]
			if item.Collected {
				continue
			}
			if shared.Distance(player.Position, item.Position) >= cfg.PickupRadius {
				continue
			}
			item.Collected = true
			applyItem(rng, cfg, player, item.Type)
			pickups = append(pickups, Pickup{PlayerID: player.ID, ItemID: item.ID, Type: item.Type})
		}
	}
	return pickups
}

func applyItem(rng Random, cfg Config, player *PlayerState, itemType ItemType) {
	switch itemType {
	case ItemWeapon:
		player.Weapon = AllWeapons[rng.Intn(len(AllWeapons))]
	case ItemAmmo:
		player.AddAmmo(AllAmmo[rng.Intn(len(AllAmmo))], cfg.AmmoPickup)
	case ItemHealth:
		player.Heal(cfg.HealthPickup)
	}
}
