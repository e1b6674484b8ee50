package match

import (
	"github.com/mark3labs/last-stand/game"
	"github.com/samber/lo"
)

// CountAlive returns how many players are still alive
func CountAlive(players []game.PlayerState) int {
	return lo.CountBy(players, func(p game.PlayerState) bool {
		return p.Alive
	})
}

// CheckWinner ends the match once at most one of two or more registered
// players is alive, recording the survivor if there is one. It reports
// whether it changed the state; an ended match is left untouched.
func CheckWinner(state *game.GameState) bool {
	if state.Phase == game.PhaseEnded {
		return false
	}
	if len(state.Players) <= 1 {
		return false
	}

	alive := lo.Filter(state.Players, func(p game.PlayerState, _ int) bool {
		return p.Alive
	})
	if len(alive) > 1 {
		return false
	}

	state.Phase = game.PhaseEnded
	state.PlayersAlive = len(alive)
	if len(alive) == 1 {
		winner := alive[0].ID
		state.Winner = &winner
	}
	return true
}
