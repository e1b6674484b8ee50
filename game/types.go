package game

import (
	"time"

	"github.com/mark3labs/last-stand/game/shared"
)

// Position represents a 2D world position
type Position = shared.Position

// Kind selects which controller drives a player
type Kind string

const (
	KindHuman Kind = "human"
	KindBot   Kind = "bot"
)

// Phase is the lifecycle phase of a match
type Phase string

const (
	PhaseWaiting  Phase = "waiting"
	PhaseStarting Phase = "starting" // reserved, never entered
	PhasePlaying  Phase = "playing"
	PhaseEnded    Phase = "ended"
)

// ItemType is the category of a ground pickup
type ItemType string

const (
	ItemWeapon  ItemType = "weapon"
	ItemAmmo    ItemType = "ammo"
	ItemHealth  ItemType = "health"
	ItemGrenade ItemType = "grenade"
)

// PlayerState represents the state of a player in the match
type PlayerState struct {
	ID         string           `json:"id" msgpack:"id"`
	Name       string           `json:"name" msgpack:"name"`
	Position   Position         `json:"position" msgpack:"position"`
	Angle      float64          `json:"angle" msgpack:"angle"`
	Health     int              `json:"health" msgpack:"health"`
	MaxHealth  int              `json:"maxHealth" msgpack:"maxHealth"`
	Weapon     Weapon           `json:"weapon" msgpack:"weapon"`
	Ammo       map[AmmoType]int `json:"ammo" msgpack:"ammo"`
	Kills      int              `json:"kills" msgpack:"kills"`
	Alive      bool             `json:"isAlive" msgpack:"isAlive"`
	Color      string           `json:"color" msgpack:"color"`
	Kind       Kind             `json:"kind" msgpack:"kind"`
	LastShotAt int64            `json:"lastShotAt" msgpack:"lastShotAt"` // 0 until the first shot
}

// IsBot reports whether the player is driven by the bot controller
func (p *PlayerState) IsBot() bool {
	return p.Kind == KindBot
}

// BulletState represents a projectile in flight
type BulletState struct {
	ID       string   `json:"id" msgpack:"id"`
	OwnerID  string   `json:"ownerId" msgpack:"ownerId"`
	Position Position `json:"position" msgpack:"position"`
	Velocity Position `json:"velocity" msgpack:"velocity"`
	Damage   int      `json:"damage" msgpack:"damage"`
	Weapon   Weapon   `json:"weapon" msgpack:"weapon"`
}

// ItemState represents a pickup on the ground. Collected items stay in the
// collection and are skipped.
type ItemState struct {
	ID        string   `json:"id" msgpack:"id"`
	Type      ItemType `json:"type" msgpack:"type"`
	Position  Position `json:"position" msgpack:"position"`
	Collected bool     `json:"collected" msgpack:"collected"`
}

// SafeZone is the shrinking survival circle
type SafeZone struct {
	Center          Position `json:"center" msgpack:"center"`
	Radius          float64  `json:"radius" msgpack:"radius"`
	NextRadius      float64  `json:"nextRadius" msgpack:"nextRadius"`
	ShrinkStartTime int64    `json:"shrinkStartTime" msgpack:"shrinkStartTime"`
	ShrinkDuration  int64    `json:"shrinkDuration" msgpack:"shrinkDuration"`
}

// GameState represents the state of the entire match
type GameState struct {
	Players        []PlayerState `json:"players" msgpack:"players"`
	Bullets        []BulletState `json:"bullets" msgpack:"bullets"`
	Items          []ItemState   `json:"items" msgpack:"items"`
	SafeZone       SafeZone      `json:"safeZone" msgpack:"safeZone"`
	Phase          Phase         `json:"gamePhase" msgpack:"gamePhase"`
	MatchStartTime int64         `json:"matchStartTime" msgpack:"matchStartTime"`
	Winner         *string       `json:"winner" msgpack:"winner"`
	PlayersAlive   int           `json:"playersAlive" msgpack:"playersAlive"`
	NextBulletSeq  uint64        `json:"nextBulletSeq" msgpack:"nextBulletSeq"`
}

// Player returns a pointer into the state for the given id
func (s *GameState) Player(id string) (*PlayerState, bool) {
	for i := range s.Players {
		if s.Players[i].ID == id {
			return &s.Players[i], true
		}
	}
	return nil, false
}

// Human returns the human-controlled player, if one is registered
func (s *GameState) Human() (*PlayerState, bool) {
	for i := range s.Players {
		if s.Players[i].Kind == KindHuman {
			return &s.Players[i], true
		}
	}
	return nil, false
}

// Clone returns a deep copy that shares no mutable memory with s
func (s GameState) Clone() GameState {
	out := s
	out.Players = make([]PlayerState, len(s.Players))
	for i, p := range s.Players {
		out.Players[i] = p.Clone()
	}
	out.Bullets = append([]BulletState(nil), s.Bullets...)
	out.Items = append([]ItemState(nil), s.Items...)
	if s.Winner != nil {
		w := *s.Winner
		out.Winner = &w
	}
	return out
}

// Clone returns a copy with its own ammo map
func (p PlayerState) Clone() PlayerState {
	out := p
	out.Ammo = make(map[AmmoType]int, len(p.Ammo))
	for k, v := range p.Ammo {
		out.Ammo[k] = v
	}
	return out
}

// Input is the per-tick control snapshot for the human player
type Input struct {
	MoveUp    bool    `json:"up"`
	MoveDown  bool    `json:"down"`
	MoveLeft  bool    `json:"left"`
	MoveRight bool    `json:"right"`
	Firing    bool    `json:"shooting"`
	CursorX   float64 `json:"mouseX"`
	CursorY   float64 `json:"mouseY"`
}

// KillEvent is emitted when a bullet kills a player
type KillEvent struct {
	ID        string `json:"id" msgpack:"id"`
	KillerID  string `json:"killerId" msgpack:"killerId"`
	Killer    string `json:"killer" msgpack:"killer"`
	VictimID  string `json:"victimId" msgpack:"victimId"`
	Victim    string `json:"victim" msgpack:"victim"`
	Weapon    Weapon `json:"weapon" msgpack:"weapon"`
	Timestamp int64  `json:"timestamp" msgpack:"timestamp"`
}

// TimeStamper is a utility function type for getting current time
type TimeStamper func() int64

// DefaultTimeStamper returns the current time in milliseconds
func DefaultTimeStamper() int64 {
	return time.Now().UnixMilli()
}
