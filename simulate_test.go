package main

import (
	"strings"
	"testing"

	"github.com/mark3labs/last-stand/game"
	"github.com/mark3labs/last-stand/match"
)

func TestRenderStandings(t *testing.T) {
	winner := "bot-1"
	result := match.SimulationResult{
		Final: game.GameState{
			Phase:  game.PhaseEnded,
			Winner: &winner,
			Players: []game.PlayerState{
				{ID: "player-sim", Name: "Iron Wolf 1234", Kind: game.KindHuman, Weapon: game.Pistol},
				{ID: "bot-1", Name: "Bravo", Kind: game.KindBot, Alive: true, Health: 40, Kills: 1, Weapon: game.Shotgun},
			},
		},
		Kills:    []game.KillEvent{{ID: "kill-1"}},
		Ticks:    3750,
		Duration: 60_000,
	}

	out := renderStandings(result)

	for _, want := range []string{"Winner: Bravo", "3750 ticks", "1:00", "Iron Wolf 1234", "shotgun", "dead"} {
		if !strings.Contains(out, want) {
			t.Errorf("standings missing %q:\n%s", want, out)
		}
	}

	bravoRow, humanRow := -1, -1
	for i, line := range strings.Split(out, "\n") {
		switch {
		case strings.Contains(line, "shotgun"):
			bravoRow = i
		case strings.Contains(line, "Iron Wolf 1234"):
			humanRow = i
		}
	}
	if bravoRow < 0 || humanRow < 0 || bravoRow > humanRow {
		t.Fatalf("survivor should be listed first:\n%s", out)
	}
}
