package physics

import (
	"testing"

	"github.com/mark3labs/last-stand/game"
)

func player(id string, x, y float64) game.PlayerState {
	return game.PlayerState{ID: id, Position: game.Position{X: x, Y: y}, Alive: true, Health: 100, MaxHealth: 100}
}

func TestCheckCollisionIsStrict(t *testing.T) {
	a := &Collider{Position: game.Position{X: 0, Y: 0}, Radius: 20}
	touching := &Collider{Position: game.Position{X: 20, Y: 0}}
	inside := &Collider{Position: game.Position{X: 19.9, Y: 0}}

	if CheckCollision(a, touching) {
		t.Fatalf("colliders at exactly the radius should not overlap")
	}
	if !CheckCollision(a, inside) {
		t.Fatalf("expected overlap inside the radius")
	}
}

func TestResolveCollisionsSkipsOwnerAndDead(t *testing.T) {
	owner := player("owner", 100, 100)
	dead := player("dead", 100, 100)
	dead.Alive = false
	bullets := []game.BulletState{{ID: "owner-b1", OwnerID: "owner", Position: game.Position{X: 100, Y: 100}, Damage: 25}}

	if hits := ResolveCollisions(bullets, []game.PlayerState{owner, dead}, 20); len(hits) != 0 {
		t.Fatalf("expected no hits, got %+v", hits)
	}
}

func TestResolveCollisionsReportsEveryOverlap(t *testing.T) {
	players := []game.PlayerState{player("a", 100, 100), player("b", 110, 100), player("far", 500, 500)}
	bullets := []game.BulletState{
		{ID: "x-b1", OwnerID: "x", Position: game.Position{X: 105, Y: 100}, Damage: 35, Weapon: game.AssaultRifle},
		{ID: "x-b2", OwnerID: "x", Position: game.Position{X: 100, Y: 105}, Damage: 35, Weapon: game.AssaultRifle},
	}

	hits := ResolveCollisions(bullets, players, 20)

	// b1 overlaps a and b; b2 overlaps a and b
	if len(hits) != 4 {
		t.Fatalf("expected 4 hit records, got %d: %+v", len(hits), hits)
	}
	if hits[0].BulletID != "x-b1" || hits[0].PlayerID != "a" || hits[0].OwnerID != "x" || hits[0].Weapon != game.AssaultRifle {
		t.Fatalf("unexpected first record %+v", hits[0])
	}
	for _, h := range hits {
		if h.PlayerID == "far" {
			t.Fatalf("distant player reported as hit")
		}
	}
}
