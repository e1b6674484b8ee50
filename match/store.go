package match

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/last-stand/game"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/vmihailenco/msgpack/v5"
)

// StateKey is the KV key holding the live snapshot
const StateKey = "current"

// Store receives every published snapshot
type Store interface {
	Save(ctx context.Context, state game.GameState) error
	Load(ctx context.Context) (game.GameState, error)
}

// ErrNoSnapshot is returned by Load before anything has been saved
var ErrNoSnapshot = errors.New("no snapshot saved")

// KVStore publishes snapshots into a JetStream key-value bucket, msgpack
// encoded, so watchers see each tick as one atomic value
type KVStore struct {
	kv  jetstream.KeyValue
	key string
}

// NewKVStore creates (or reuses) the bucket and returns a store bound to it
func NewKVStore(ctx context.Context, js jetstream.JetStream, bucket string) (*KVStore, error) {
	kv, err := js.CreateOrUpdateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:      bucket,
		Description: "live match snapshot",
		History:     1,
		Storage:     jetstream.MemoryStorage,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create KV bucket %q: %w", bucket, err)
	}
	return &KVStore{kv: kv, key: StateKey}, nil
}

// Save encodes and puts the snapshot
func (s *KVStore) Save(ctx context.Context, state game.GameState) error {
	data, err := EncodeState(state)
	if err != nil {
		return err
	}
	if _, err := s.kv.Put(ctx, s.key, data); err != nil {
		return fmt.Errorf("error saving game state to KV: %w", err)
	}
	return nil
}

// Load reads back the latest snapshot
func (s *KVStore) Load(ctx context.Context) (game.GameState, error) {
	entry, err := s.kv.Get(ctx, s.key)
	if errors.Is(err, jetstream.ErrKeyNotFound) {
		return game.GameState{}, ErrNoSnapshot
	}
	if err != nil {
		return game.GameState{}, fmt.Errorf("error loading game state from KV: %w", err)
	}
	return DecodeState(entry.Value())
}

// Watch creates a watcher for snapshot changes. The caller reads its
// Updates() channel and must Stop it.
func (s *KVStore) Watch(ctx context.Context) (jetstream.KeyWatcher, error) {
	watcher, err := s.kv.Watch(ctx, s.key, jetstream.UpdatesOnly())
	if err != nil {
		return nil, fmt.Errorf("failed to create KV watcher: %w", err)
	}
	return watcher, nil
}

// EncodeState serializes a snapshot for the KV bucket
func EncodeState(state game.GameState) ([]byte, error) {
	data, err := msgpack.Marshal(&state)
	if err != nil {
		return nil, fmt.Errorf("error encoding game state: %w", err)
	}
	return data, nil
}

// DecodeState parses a snapshot written by EncodeState
func DecodeState(data []byte) (game.GameState, error) {
	var state game.GameState
	if err := msgpack.Unmarshal(data, &state); err != nil {
		return game.GameState{}, fmt.Errorf("error decoding game state: %w", err)
	}
	return state, nil
}
