package views

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/mark3labs/last-stand/game"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func TestFormatDuration(t *testing.T) {
	tests := map[int64]string{
		-5:      "0:00",
		0:       "0:00",
		59_999:  "0:59",
		61_000:  "1:01",
		600_000: "10:00",
	}
	for ms, want := range tests {
		if got := FormatDuration(ms); got != want {
			t.Errorf("FormatDuration(%d) = %q, want %q", ms, got, want)
		}
	}
}

func TestHUDShowsDurationAndWinner(t *testing.T) {
	winner := "player-1"
	state := game.GameState{
		Phase:          game.PhaseEnded,
		MatchStartTime: 1000,
		PlayersAlive:   1,
		Winner:         &winner,
		Players: []game.PlayerState{{
			ID: "player-1", Name: "Ace <3", Kind: game.KindHuman, Alive: true,
			Health: 80, MaxHealth: 100, Weapon: game.Sniper, Ammo: map[game.AmmoType]int{game.AmmoSniper: 4}, Kills: 3,
		}},
	}

	html := render(t, HUD(state, 126_000))

	for _, want := range []string{`id="hud"`, "2:05", "80/100", "Kills: 3", "Ace &lt;3 wins", ">4<", `style="color:#9C27B0;"`} {
		if !strings.Contains(html, want) {
			t.Errorf("HUD missing %q in %s", want, html)
		}
	}
	if strings.Contains(html, "Ace <3") {
		t.Fatalf("player name was not escaped")
	}
}

func TestHUDWithoutSurvivors(t *testing.T) {
	html := render(t, HUD(game.GameState{Phase: game.PhaseEnded}, 0))
	if !strings.Contains(html, "No survivors") {
		t.Fatalf("expected a wipe message, got %s", html)
	}
}

func TestKillFeedEscapesNames(t *testing.T) {
	html := render(t, KillFeed([]game.KillEvent{
		{ID: "kill-1", Killer: "<b>Ace</b>", Victim: "Bravo", Weapon: game.Shotgun},
	}))

	if !strings.Contains(html, `id="killfeed"`) || !strings.Contains(html, "&lt;b&gt;Ace&lt;/b&gt;") || !strings.Contains(html, "[shotgun]") {
		t.Fatalf("unexpected kill feed %s", html)
	}
}

func TestIndexEmbedsFragments(t *testing.T) {
	cfg := game.DefaultConfig()
	html := render(t, Index("Ace", cfg, game.GameState{Phase: game.PhaseWaiting}, nil, 0))

	for _, want := range []string{`id="arena"`, `id="hud"`, `id="killfeed"`, "@get('/gamestate')", "@get('/killfeed')", "mouseX: 600"} {
		if !strings.Contains(html, want) {
			t.Errorf("index missing %q", want)
		}
	}
}

func TestLoginListsProviders(t *testing.T) {
	html := render(t, Login([]LoginProvider{{Name: "github", DisplayName: "GitHub", AuthURL: "https://example.com/auth?a=1&b=2"}}))

	if !strings.Contains(html, "Sign in with GitHub") || !strings.Contains(html, "a=1&amp;b=2") || !strings.Contains(html, `href="/guest"`) {
		t.Fatalf("unexpected login page %s", html)
	}
}
