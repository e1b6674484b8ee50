package match

import "github.com/mark3labs/last-stand/game"

// KillFeedSize is how many recent kills are shown
const KillFeedSize = 5

// KillFeed keeps the kill history of the current match
type KillFeed struct {
	entries []game.KillEvent
}

// Add appends kills in order
func (f *KillFeed) Add(kills ...game.KillEvent) {
	f.entries = append(f.entries, kills...)
}

// Recent returns a copy of the newest KillFeedSize kills, oldest first
func (f *KillFeed) Recent() []game.KillEvent {
	start := len(f.entries) - KillFeedSize
	if start < 0 {
		start = 0
	}
	return append([]game.KillEvent(nil), f.entries[start:]...)
}

// All returns a copy of every kill this match
func (f *KillFeed) All() []game.KillEvent {
	return append([]game.KillEvent(nil), f.entries...)
}

// Reset clears the history
func (f *KillFeed) Reset() {
	f.entries = nil
}
