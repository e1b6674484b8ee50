package match

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/last-stand/game"
)

// SimulationResult summarizes a headless match
type SimulationResult struct {
	Final    game.GameState
	Kills    []game.KillEvent
	Ticks    int
	Duration int64 // simulated ms
}

// Simulate plays a match without a client: the human stands idle, bots run
// their policy, and the clock advances one frame per tick. It stops when the
// match ends or after maxTicks.
func Simulate(ctx context.Context, cfg game.Config, rng game.Random, humanName string, maxTicks int) (SimulationResult, error) {
	const start int64 = 0
	frame := int64(1000 / DefaultTickHz)

	m, err := NewManager(ctx, cfg, WithRandom(rng), WithTimeStamper(func() int64 { return start }))
	if err != nil {
		return SimulationResult{}, err
	}
	if err := m.StartMatch("player-sim", humanName); err != nil {
		return SimulationResult{}, fmt.Errorf("error starting simulation: %w", err)
	}

	ticks := 0
	for ticks < maxTicks {
		if err := ctx.Err(); err != nil {
			return SimulationResult{}, err
		}
		if _, err := m.Step(start + int64(ticks+1)*frame); err != nil {
			if errors.Is(err, ErrNotPlaying) {
				break
			}
			return SimulationResult{}, err
		}
		ticks++
	}

	return SimulationResult{
		Final:    m.GetState(),
		Kills:    m.KillHistory(),
		Ticks:    ticks,
		Duration: int64(ticks) * frame,
	}, nil
}
