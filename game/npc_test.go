package game

import (
	"math"
	"math/rand"
	"testing"
)

func botAt(id string, x, y float64) PlayerState {
	p := newTestPlayer(KindBot)
	p.ID = id
	p.Position = Position{X: x, Y: y}
	return p
}

func humanAt(x, y float64) PlayerState {
	p := newTestPlayer(KindHuman)
	p.ID = "human"
	p.Position = Position{X: x, Y: y}
	return p
}

func TestBotEngagesNearbyHuman(t *testing.T) {
	cfg := DefaultConfig()
	state := &GameState{
		Players:  []PlayerState{botAt("bot-0", 1000, 1000), humanAt(1100, 1000)},
		SafeZone: NewSafeZone(cfg),
		Phase:    PhasePlaying,
	}
	ctrl := NewNPCController(cfg, &scriptedRandom{floats: []float64{0.05}})

	bullets := ctrl.Update(state, Input{}, 0)

	if len(bullets) != 1 {
		t.Fatalf("expected one bullet, got %d", len(bullets))
	}
	bot := state.Players[0]
	if bot.Position != (Position{X: 1001.5, Y: 1000}) {
		t.Fatalf("bot should close in at half speed, got %+v", bot.Position)
	}
	if bot.Angle != 0 {
		t.Fatalf("bot should face the human, angle %v", bot.Angle)
	}
	if bot.Ammo[AmmoPistol] != 0 {
		t.Fatalf("expected ammo to be spent, have %d", bot.Ammo[AmmoPistol])
	}
	b := bullets[0]
	if b.OwnerID != "bot-0" || b.ID != "bot-0-b1" {
		t.Fatalf("unexpected bullet %s owner %s", b.ID, b.OwnerID)
	}
	if b.Velocity != (Position{X: cfg.BulletSpeed, Y: 0}) {
		t.Fatalf("bullet should head toward the human, velocity %+v", b.Velocity)
	}
	if state.NextBulletSeq != 1 {
		t.Fatalf("bullet sequence not advanced: %d", state.NextBulletSeq)
	}
}

func TestBotHoldsFireWithoutAmmo(t *testing.T) {
	cfg := DefaultConfig()
	bot := botAt("bot-0", 1000, 1000)
	bot.Ammo[AmmoPistol] = 0
	state := &GameState{
		Players:  []PlayerState{bot, humanAt(1100, 1000)},
		SafeZone: NewSafeZone(cfg),
	}
	ctrl := NewNPCController(cfg, &scriptedRandom{floats: []float64{0.0}})

	if bullets := ctrl.Update(state, Input{}, 0); len(bullets) != 0 {
		t.Fatalf("bot with empty bucket fired %d bullets", len(bullets))
	}
}

func TestBotEvacuatesBeforeFighting(t *testing.T) {
	cfg := DefaultConfig()
	bot := botAt("bot-0", 30, 1000)
	bot.Angle = 1.0
	state := &GameState{
		Players:  []PlayerState{bot, humanAt(60, 1000)},
		SafeZone: NewSafeZone(cfg),
	}
	ctrl := NewNPCController(cfg, &scriptedRandom{})

	bullets := ctrl.Update(state, Input{}, 0)

	if len(bullets) != 0 {
		t.Fatalf("evacuating bot fired")
	}
	got := state.Players[0]
	want := 30 + cfg.PlayerSpeed*cfg.Bot.EvacuateSpeed
	if math.Abs(got.Position.X-want) > 1e-9 || got.Position.Y != 1000 {
		t.Fatalf("bot should head for the centre, got %+v", got.Position)
	}
	if got.Angle != 1.0 {
		t.Fatalf("evacuation must not change facing, angle %v", got.Angle)
	}
}

func TestBotWandersWhenAlone(t *testing.T) {
	cfg := DefaultConfig()
	state := &GameState{
		Players:  []PlayerState{botAt("bot-0", 1000, 1000)},
		SafeZone: NewSafeZone(cfg),
	}
	// turn, new angle = pi/2, then no weapon swap
	ctrl := NewNPCController(cfg, &scriptedRandom{floats: []float64{0.01, 0.25, 0.99}})

	ctrl.Update(state, Input{}, 0)

	got := state.Players[0]
	if math.Abs(got.Angle-math.Pi/2) > 1e-9 {
		t.Fatalf("angle = %v, want pi/2", got.Angle)
	}
	step := cfg.PlayerSpeed * cfg.Bot.WanderSpeed
	if math.Abs(got.Position.X-1000) > 1e-9 || math.Abs(got.Position.Y-(1000+step)) > 1e-9 {
		t.Fatalf("unexpected wander step %+v", got.Position)
	}
}

func TestBotWeaponSwap(t *testing.T) {
	cfg := DefaultConfig()
	swap := cfg.Bot.WeaponSwapChance / 2

	tests := []struct {
		name       string
		players    []PlayerState
		rng        *scriptedRandom
		wantWeapon Weapon
		wantPos    Position
		wantShots  int
	}{
		{
			name:       "evacuate then clamp then swap",
			players:    []PlayerState{botAt("bot-0", 0, 1000)},
			rng:        &scriptedRandom{floats: []float64{swap}, ints: []int{1}},
			wantWeapon: AllWeapons[1],
			wantPos:    Position{X: math.Max(cfg.PlayerRadius, cfg.PlayerSpeed*cfg.Bot.EvacuateSpeed), Y: 1000},
		},
		{
			name:       "engage and fire before the swap",
			players:    []PlayerState{botAt("bot-0", 1000, 1000), humanAt(1100, 1000)},
			rng:        &scriptedRandom{floats: []float64{0.05, swap}, ints: []int{2}},
			wantWeapon: AllWeapons[2],
			wantPos:    Position{X: 1000 + cfg.PlayerSpeed*cfg.Bot.EngageSpeed, Y: 1000},
			wantShots:  1,
		},
		{
			name:       "wander then swap",
			players:    []PlayerState{botAt("bot-0", 1000, 1000)},
			rng:        &scriptedRandom{floats: []float64{0.99, swap}, ints: []int{0}},
			wantWeapon: AllWeapons[0],
			wantPos:    Position{X: 1000 + cfg.PlayerSpeed*cfg.Bot.WanderSpeed, Y: 1000},
		},
		{
			name:       "draw at the threshold keeps the weapon",
			players:    []PlayerState{botAt("bot-0", 1000, 1000)},
			rng:        &scriptedRandom{floats: []float64{0.99, cfg.Bot.WeaponSwapChance}, ints: []int{1}},
			wantWeapon: Pistol,
			wantPos:    Position{X: 1000 + cfg.PlayerSpeed*cfg.Bot.WanderSpeed, Y: 1000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := &GameState{Players: tt.players, SafeZone: NewSafeZone(cfg)}

			bullets := NewNPCController(cfg, tt.rng).Update(state, Input{}, 0)

			bot := state.Players[0]
			if bot.Weapon != tt.wantWeapon {
				t.Fatalf("weapon = %s, want %s", bot.Weapon, tt.wantWeapon)
			}
			if math.Abs(bot.Position.X-tt.wantPos.X) > 1e-9 || math.Abs(bot.Position.Y-tt.wantPos.Y) > 1e-9 {
				t.Fatalf("position = %+v, want %+v", bot.Position, tt.wantPos)
			}
			if len(bullets) != tt.wantShots {
				t.Fatalf("bullets = %d, want %d", len(bullets), tt.wantShots)
			}
			// the shot leaves with the weapon held before the swap
			for _, b := range bullets {
				if b.Weapon != Pistol {
					t.Fatalf("bullet weapon = %s, want %s", b.Weapon, Pistol)
				}
			}
			if len(tt.rng.floats) != 0 {
				t.Fatalf("%d scripted draws left unused", len(tt.rng.floats))
			}
		})
	}
}

func TestBotsIgnoreOtherBots(t *testing.T) {
	cfg := DefaultConfig()
	state := &GameState{
		Players:  []PlayerState{botAt("bot-0", 1000, 1000), botAt("bot-1", 1010, 1000)},
		SafeZone: NewSafeZone(cfg),
	}
	zeros := make([]float64, 16)
	ctrl := NewNPCController(cfg, &scriptedRandom{floats: zeros})

	if bullets := ctrl.Update(state, Input{}, 0); len(bullets) != 0 {
		t.Fatalf("bots fired at each other: %+v", bullets)
	}
}

func TestDeadBotsStayPut(t *testing.T) {
	cfg := DefaultConfig()
	bot := botAt("bot-0", 1000, 1000)
	bot.Alive = false
	state := &GameState{Players: []PlayerState{bot}, SafeZone: NewSafeZone(cfg)}

	NewNPCController(cfg, &scriptedRandom{floats: []float64{0.0, 0.0}}).Update(state, Input{}, 0)

	if state.Players[0].Position != bot.Position {
		t.Fatalf("dead bot moved to %+v", state.Players[0].Position)
	}
}

func TestBotFireRateIsAboutTenPercent(t *testing.T) {
	cfg := DefaultConfig()
	rng := rand.New(rand.NewSource(42))
	ctrl := NewNPCController(cfg, rng)

	const trials = 20000
	fired := 0
	for i := 0; i < trials; i++ {
		state := &GameState{
			Players:  []PlayerState{botAt("bot-0", 1000, 1000), humanAt(1150, 1000)},
			SafeZone: NewSafeZone(cfg),
		}
		fired += len(ctrl.Update(state, Input{}, 0))
	}

	rate := float64(fired) / trials
	if rate < 0.09 || rate > 0.11 {
		t.Fatalf("fire rate %.4f outside [0.09, 0.11]", rate)
	}
}
