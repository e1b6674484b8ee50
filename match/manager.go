package match

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/last-stand/game"
	"github.com/nats-io/nats.go/jetstream"
)

var (
	// ErrMatchInProgress is returned when starting over a running match
	ErrMatchInProgress = errors.New("match already in progress")
	// ErrNotPlaying is returned when stepping a match that is not playing
	ErrNotPlaying = errors.New("match is not playing")
	// ErrEmptyPlayerID is returned when starting without a human id
	ErrEmptyPlayerID = errors.New("playerID cannot be empty")
	// ErrNoWatcher is returned when the store cannot be watched
	ErrNoWatcher = errors.New("store does not support watching")
)

// DefaultTickHz is the frame rate the runner ticks at
const DefaultTickHz = 60

// Option configures a Manager
type Option func(*Manager)

// WithStore publishes every snapshot into store
func WithStore(store Store) Option {
	return func(m *Manager) { m.store = store }
}

// WithKillPublisher fans kill events out through p
func WithKillPublisher(p KillPublisher) Option {
	return func(m *Manager) { m.kills = p }
}

// WithRandom replaces the random source, for reproducible matches
func WithRandom(rng game.Random) Option {
	return func(m *Manager) { m.rng = rng }
}

// WithTimeStamper replaces the clock
func WithTimeStamper(ts game.TimeStamper) Option {
	return func(m *Manager) { m.getTime = ts }
}

// WithTickRate sets the runner frequency
func WithTickRate(hz int) Option {
	return func(m *Manager) {
		if hz > 0 {
			m.tickHz = hz
		}
	}
}

// Manager owns the single live match: it serializes ticks, republishes the
// snapshot after each one, and keeps the kill feed
type Manager struct {
	state   game.GameState
	mutex   sync.RWMutex
	ctx     context.Context
	cfg     game.Config
	rng     game.Random
	engine  *Engine
	store   Store
	kills   KillPublisher
	input   game.Input
	feed    KillFeed
	getTime game.TimeStamper
	tickHz  int
	running bool
}

// NewManager creates a new match manager in the waiting phase
func NewManager(ctx context.Context, cfg game.Config, opts ...Option) (*Manager, error) {
	m := &Manager{
		ctx:     ctx,
		cfg:     cfg,
		getTime: game.DefaultTimeStamper,
		tickHz:  DefaultTickHz,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.rng == nil {
		m.rng = game.NewRandom(0)
	}
	m.engine = NewEngine(cfg, m.rng)
	m.state = m.freshState()

	if err := m.saveState(); err != nil {
		return nil, fmt.Errorf("failed to save initial game state: %w", err)
	}

	log.Info("Match manager initialized", "tickHz", m.tickHz, "bots", cfg.BotCount)
	return m, nil
}

func (m *Manager) freshState() game.GameState {
	return game.GameState{
		Players:        []game.PlayerState{},
		Bullets:        []game.BulletState{},
		Items:          game.SpawnItems(m.rng, m.cfg),
		SafeZone:       game.NewSafeZone(m.cfg),
		Phase:          game.PhaseWaiting,
		MatchStartTime: m.getTime(),
	}
}

// StartMatch registers the human plus the configured bots and enters the
// playing phase
func (m *Manager) StartMatch(humanID, humanName string) error {
	if humanID == "" {
		return ErrEmptyPlayerID
	}

	m.mutex.Lock()
	if m.state.Phase == game.PhasePlaying {
		m.mutex.Unlock()
		return ErrMatchInProgress
	}
	if m.state.Phase == game.PhaseEnded {
		m.state = m.freshState()
		m.feed.Reset()
	}

	human := game.CreatePlayer(m.rng, m.cfg, humanID, humanName, game.KindHuman)
	players := append([]game.PlayerState{human}, game.CreateBots(m.rng, m.cfg, m.cfg.BotCount)...)

	m.state.Players = players
	m.state.Phase = game.PhasePlaying
	m.state.MatchStartTime = m.getTime()
	m.state.PlayersAlive = len(players)
	m.input = game.Input{}
	m.mutex.Unlock()

	log.Info("Match started", "human", humanID, "name", humanName, "bots", m.cfg.BotCount)
	return m.saveState()
}

// ResetMatch discards the current match and returns to waiting
func (m *Manager) ResetMatch() error {
	m.mutex.Lock()
	m.state = m.freshState()
	m.feed.Reset()
	m.input = game.Input{}
	m.mutex.Unlock()

	log.Info("Match reset")
	return m.saveState()
}

// SetInput stores the control snapshot consumed by the next tick. Input is
// only accepted while the match is playing.
func (m *Manager) SetInput(in game.Input) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.state.Phase != game.PhasePlaying {
		return ErrNotPlaying
	}
	m.input = in
	return nil
}

// Step runs exactly one tick at now and republishes the snapshot
func (m *Manager) Step(now int64) ([]game.KillEvent, error) {
	return m.step(now, false)
}

// step is Step for callers that may own the runner slot. A runner that finds
// the match no longer playing gives up the slot under the same lock that
// observed the phase.
func (m *Manager) step(now int64, runner bool) ([]game.KillEvent, error) {
	m.mutex.Lock()
	if m.state.Phase != game.PhasePlaying {
		if runner {
			m.running = false
		}
		m.mutex.Unlock()
		return nil, ErrNotPlaying
	}
	next, kills := m.engine.Tick(m.state, m.input, now)
	m.state = next
	m.feed.Add(kills...)
	m.mutex.Unlock()

	if m.kills != nil {
		for _, kill := range kills {
			if err := m.kills.PublishKill(kill); err != nil {
				log.Error("Error publishing kill", "kill", kill.ID, "err", err)
			}
		}
	}

	if err := m.saveState(); err != nil {
		log.Error("Error saving game state after tick", "err", err)
	}
	return kills, nil
}

// Run ticks at the configured rate until the match leaves the playing phase
// or ctx is cancelled. Only one runner is active at a time.
func (m *Manager) Run(ctx context.Context) error {
	m.mutex.Lock()
	if m.running {
		m.mutex.Unlock()
		return nil
	}
	m.running = true
	m.mutex.Unlock()

	ticker := time.NewTicker(time.Second / time.Duration(m.tickHz))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.releaseRunner()
			return ctx.Err()
		case <-ticker.C:
			if _, err := m.step(m.getTime(), true); err != nil {
				if errors.Is(err, ErrNotPlaying) {
					log.Info("Match runner stopped", "phase", m.Phase())
					return nil
				}
				m.releaseRunner()
				return err
			}
		}
	}
}

func (m *Manager) releaseRunner() {
	m.mutex.Lock()
	m.running = false
	m.mutex.Unlock()
}

// Phase returns the current match phase
func (m *Manager) Phase() game.Phase {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.state.Phase
}

// GetState returns a copy of the current game state
func (m *Manager) GetState() game.GameState {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.state.Clone()
}

// KillFeed returns the most recent kills for display
func (m *Manager) KillFeed() []game.KillEvent {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.feed.Recent()
}

// KillHistory returns every kill of the current match
func (m *Manager) KillHistory() []game.KillEvent {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.feed.All()
}

// Config returns the gameplay configuration
func (m *Manager) Config() game.Config {
	return m.cfg
}

// WatchState creates a watcher for snapshot changes when the store is a KV
// bucket
func (m *Manager) WatchState(ctx context.Context) (jetstream.KeyWatcher, error) {
	kvStore, ok := m.store.(*KVStore)
	if !ok {
		return nil, ErrNoWatcher
	}
	return kvStore.Watch(ctx)
}

// saveState publishes a copy of the snapshot without holding the lock
func (m *Manager) saveState() error {
	if m.store == nil {
		return nil
	}
	stateCopy := m.GetState()
	if err := m.store.Save(m.ctx, stateCopy); err != nil {
		return fmt.Errorf("error saving game state: %w", err)
	}
	return nil
}
