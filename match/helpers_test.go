package match

import (
	"context"
	"sync"

	"github.com/mark3labs/last-stand/game"
)

func testPlayer(id string, kind game.Kind, x, y float64) game.PlayerState {
	return game.PlayerState{
		ID:        id,
		Name:      id,
		Position:  game.Position{X: x, Y: y},
		Health:    100,
		MaxHealth: 100,
		Weapon:    game.Pistol,
		Ammo:      map[game.AmmoType]int{game.AmmoPistol: 10},
		Alive:     true,
		Kind:      kind,
	}
}

func playingState(cfg game.Config, players ...game.PlayerState) game.GameState {
	return game.GameState{
		Players:  players,
		SafeZone: game.NewSafeZone(cfg),
		Phase:    game.PhasePlaying,
	}
}

type memoryStore struct {
	mu    sync.Mutex
	saves int
	last  *game.GameState
}

func (s *memoryStore) Save(_ context.Context, state game.GameState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves++
	s.last = &state
	return nil
}

func (s *memoryStore) Load(_ context.Context) (game.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return game.GameState{}, ErrNoSnapshot
	}
	return *s.last, nil
}

type recordingPublisher struct {
	mu    sync.Mutex
	kills []game.KillEvent
}

func (p *recordingPublisher) PublishKill(kill game.KillEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.kills = append(p.kills, kill)
	return nil
}

// fakeClock advances by step every time it is read
func fakeClock(start, step int64) game.TimeStamper {
	now := start - step
	return func() int64 {
		now += step
		return now
	}
}
