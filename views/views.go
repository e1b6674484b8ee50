package views

//go:generate templ generate

import (
	"fmt"
	"strconv"

	"github.com/mark3labs/last-stand/game"
)

// Fragment ids patched by the SSE streams
const (
	HUDID      = "hud"
	KillFeedID = "killfeed"
)

// SnapshotSignal is the client-only signal carrying the latest snapshot
const SnapshotSignal = "_snapshot"

// LoginProvider is one OAuth2 sign-in option
type LoginProvider struct {
	Name        string
	DisplayName string
	AuthURL     string
}

// FormatDuration renders milliseconds as m:ss
func FormatDuration(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	secs := ms / 1000
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// initialSignals seeds the input signals, with the cursor at the viewport centre
func initialSignals(cfg game.Config) string {
	return fmt.Sprintf("{up: false, down: false, left: false, right: false, shooting: false, mouseX: %s, mouseY: %s}",
		dimension(cfg.Viewport.Width/2), dimension(cfg.Viewport.Height/2))
}

func dimension(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func weaponStyle(w game.Weapon) map[string]string {
	return map[string]string{"color": game.StatsFor(w).Color}
}
