package game

import "github.com/mark3labs/last-stand/game/shared"

// BotTuning holds the decision policy constants for bots
type BotTuning struct {
	DetectionRadius  float64
	EvacuateMargin   float64
	EvacuateSpeed    float64 // multiplier of PlayerSpeed
	EngageSpeed      float64
	WanderSpeed      float64
	FireChance       float64 // per tick
	TurnChance       float64 // per tick
	WeaponSwapChance float64 // per tick
}

// Config is the gameplay configuration surface. It is read-only once an
// engine has been built from it.
type Config struct {
	Map      shared.Bounds
	Viewport shared.Bounds

	PlayerRadius float64
	PlayerSpeed  float64
	BulletSpeed  float64
	HitRadius    float64
	SpawnMargin  float64
	MaxHealth    int
	BotCount     int

	SafeZoneInitialRadius float64
	SafeZoneFinalRadius   float64
	ShrinkIntervals       []int64 // elapsed ms thresholds
	ShrinkRate            float64 // units per tick
	ShrinkDuration        int64
	ZoneDamage            int // per tick

	ItemSpawnCount int
	ItemMargin     float64
	PickupRadius   float64
	AmmoPickup     int
	HealthPickup   int

	HumanAmmo map[AmmoType]int
	BotAmmo   map[AmmoType]int

	Bot BotTuning
}

// DefaultConfig returns the standard match tuning
func DefaultConfig() Config {
	const playerRadius = 20.0
	return Config{
		Map:      shared.Bounds{Width: 2000, Height: 2000},
		Viewport: shared.Bounds{Width: 1200, Height: 800},

		PlayerRadius: playerRadius,
		PlayerSpeed:  3,
		BulletSpeed:  10,
		HitRadius:    playerRadius,
		SpawnMargin:  100,
		MaxHealth:    100,
		BotCount:     15,

		SafeZoneInitialRadius: 1000,
		SafeZoneFinalRadius:   100,
		ShrinkIntervals:       []int64{30000, 60000, 90000, 120000, 150000},
		ShrinkRate:            0.5,
		ShrinkDuration:        30000,
		ZoneDamage:            1,

		ItemSpawnCount: 50,
		ItemMargin:     50,
		PickupRadius:   playerRadius + 10,
		AmmoPickup:     30,
		HealthPickup:   50,

		HumanAmmo: map[AmmoType]int{AmmoRifle: 0, AmmoShotgun: 0, AmmoSniper: 0, AmmoPistol: 50},
		BotAmmo:   map[AmmoType]int{AmmoRifle: 100, AmmoShotgun: 50, AmmoSniper: 30, AmmoPistol: 50},

		Bot: BotTuning{
			DetectionRadius:  200,
			EvacuateMargin:   50,
			EvacuateSpeed:    0.8,
			EngageSpeed:      0.5,
			WanderSpeed:      0.3,
			FireChance:       0.1,
			TurnChance:       0.05,
			WeaponSwapChance: 0.001,
		},
	}
}
