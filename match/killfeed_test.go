package match

import (
	"fmt"
	"testing"

	"github.com/mark3labs/last-stand/game"
)

func TestKillFeedKeepsNewestFive(t *testing.T) {
	var feed KillFeed
	for i := 0; i < 7; i++ {
		feed.Add(game.KillEvent{ID: fmt.Sprintf("kill-%d", i)})
	}

	recent := feed.Recent()
	if len(recent) != KillFeedSize {
		t.Fatalf("expected %d entries, got %d", KillFeedSize, len(recent))
	}
	if recent[0].ID != "kill-2" || recent[4].ID != "kill-6" {
		t.Fatalf("unexpected window %s..%s", recent[0].ID, recent[4].ID)
	}
	if len(feed.All()) != 7 {
		t.Fatalf("history should keep every kill")
	}

	recent[0].ID = "mutated"
	if feed.Recent()[0].ID != "kill-2" {
		t.Fatalf("Recent must return a copy")
	}

	feed.Reset()
	if len(feed.Recent()) != 0 {
		t.Fatalf("reset feed still has entries")
	}
}
