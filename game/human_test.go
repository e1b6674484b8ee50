package game

import (
	"math"
	"testing"
)

func humanState(x, y float64) *GameState {
	h := humanAt(x, y)
	h.Ammo = map[AmmoType]int{AmmoPistol: 50}
	return &GameState{Players: []PlayerState{h}, Phase: PhasePlaying}
}

func TestHumanDiagonalMoveIsNotNormalized(t *testing.T) {
	cfg := DefaultConfig()
	state := humanState(500, 500)
	center := cfg.Viewport.Center()

	NewHumanController(cfg).Update(state, Input{MoveUp: true, MoveRight: true, CursorX: center.X, CursorY: center.Y}, 0)

	want := Position{X: 500 + cfg.PlayerSpeed, Y: 500 - cfg.PlayerSpeed}
	if state.Players[0].Position != want {
		t.Fatalf("position = %+v, want %+v", state.Players[0].Position, want)
	}
}

func TestHumanIsClampedToMap(t *testing.T) {
	cfg := DefaultConfig()
	state := humanState(cfg.PlayerRadius, cfg.PlayerRadius)

	NewHumanController(cfg).Update(state, Input{MoveUp: true, MoveLeft: true}, 0)

	want := Position{X: cfg.PlayerRadius, Y: cfg.PlayerRadius}
	if state.Players[0].Position != want {
		t.Fatalf("position = %+v, want %+v", state.Players[0].Position, want)
	}
}

func TestHumanAimsAtCursor(t *testing.T) {
	cfg := DefaultConfig()
	state := humanState(500, 500)
	center := cfg.Viewport.Center()

	NewHumanController(cfg).Update(state, Input{CursorX: center.X, CursorY: center.Y + 100}, 0)

	if math.Abs(state.Players[0].Angle-math.Pi/2) > 1e-9 {
		t.Fatalf("angle = %v, want pi/2", state.Players[0].Angle)
	}
}

func TestHumanFireCooldownAndAmmo(t *testing.T) {
	cfg := DefaultConfig()
	state := humanState(500, 500)
	center := cfg.Viewport.Center()
	ctrl := NewHumanController(cfg)
	in := Input{Firing: true, CursorX: center.X + 100, CursorY: center.Y}

	bullets := ctrl.Update(state, in, 10000)
	if len(bullets) != 1 {
		t.Fatalf("expected first shot, got %d bullets", len(bullets))
	}
	if bullets[0].ID != "human-b1" || bullets[0].Velocity != (Position{X: cfg.BulletSpeed, Y: 0}) {
		t.Fatalf("unexpected bullet %+v", bullets[0])
	}
	if state.Players[0].Ammo[AmmoPistol] != 49 || state.Players[0].LastShotAt != 10000 {
		t.Fatalf("shot not recorded: ammo %d last %d", state.Players[0].Ammo[AmmoPistol], state.Players[0].LastShotAt)
	}

	// pistol cooldown is 300ms and must strictly elapse
	if b := ctrl.Update(state, in, 10300); len(b) != 0 {
		t.Fatalf("fired during cooldown")
	}
	if b := ctrl.Update(state, in, 10301); len(b) != 1 {
		t.Fatalf("expected shot after cooldown")
	}

	state.Players[0].Ammo[AmmoPistol] = 0
	if b := ctrl.Update(state, in, 20000); len(b) != 0 {
		t.Fatalf("fired with no ammo")
	}
	if state.Players[0].Ammo[AmmoPistol] != 0 {
		t.Fatalf("ammo went negative: %d", state.Players[0].Ammo[AmmoPistol])
	}
}

func TestHumanFirstShotEarlyInMatch(t *testing.T) {
	cfg := DefaultConfig()
	state := humanState(500, 500)
	center := cfg.Viewport.Center()
	ctrl := NewHumanController(cfg)
	in := Input{Firing: true, CursorX: center.X + 100, CursorY: center.Y}

	if b := ctrl.Update(state, in, 200); len(b) != 1 {
		t.Fatalf("first shot at t=200 blocked, got %d bullets", len(b))
	}
	if state.Players[0].LastShotAt != 200 {
		t.Fatalf("shot time = %d, want 200", state.Players[0].LastShotAt)
	}
	if b := ctrl.Update(state, in, 216); len(b) != 0 {
		t.Fatalf("cooldown not applied after the first shot")
	}
	if b := ctrl.Update(state, in, 501); len(b) != 1 {
		t.Fatalf("expected second shot once the cooldown elapsed")
	}
}

func TestDeadHumanIgnoresInput(t *testing.T) {
	cfg := DefaultConfig()
	state := humanState(500, 500)
	state.Players[0].Alive = false

	bullets := NewHumanController(cfg).Update(state, Input{MoveDown: true, Firing: true}, 10000)

	if len(bullets) != 0 || state.Players[0].Position != (Position{X: 500, Y: 500}) {
		t.Fatalf("dead human acted: %+v, %d bullets", state.Players[0].Position, len(bullets))
	}
}
