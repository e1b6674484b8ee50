package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

const (
	EnvTickHz      = "LASTSTAND_TICK_HZ"
	EnvBots        = "LASTSTAND_BOTS"
	EnvSeed        = "LASTSTAND_SEED"
	EnvNATSDir     = "LASTSTAND_NATS_DIR"
	EnvKVBucket    = "LASTSTAND_KV_BUCKET"
	EnvBroadcastMS = "LASTSTAND_BROADCAST_MS"
)

// Settings are the server-side knobs. Gameplay tuning lives in game.Config.
type Settings struct {
	TickHz    int
	Bots      int
	Seed      int64
	NATSDir   string
	KVBucket  string
	Broadcast time.Duration
}

// Defaults returns the settings used when nothing is configured
func Defaults() Settings {
	return Settings{
		TickHz:    60,
		Bots:      15,
		Seed:      0,
		NATSDir:   "pb_data/nats",
		KVBucket:  "laststand",
		Broadcast: 50 * time.Millisecond,
	}
}

// Load reads an optional .env file and then the environment. A missing
// .env is not an error.
func Load(filenames ...string) (Settings, error) {
	if err := godotenv.Load(filenames...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("error loading environment file: %w", err)
		}
		log.Debug("No .env file found, using process environment")
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds settings from any key lookup, starting from Defaults
func FromLookup(lookup func(string) (string, bool)) (Settings, error) {
	s := Defaults()
	var errs []error

	if v, ok := lookup(EnvTickHz); ok {
		hz, err := cast.ToIntE(v)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("%s: %w", EnvTickHz, err))
		case hz <= 0:
			errs = append(errs, fmt.Errorf("%s: must be positive, got %d", EnvTickHz, hz))
		default:
			s.TickHz = hz
		}
	}
	if v, ok := lookup(EnvBots); ok {
		bots, err := cast.ToIntE(v)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("%s: %w", EnvBots, err))
		case bots < 0:
			errs = append(errs, fmt.Errorf("%s: must not be negative, got %d", EnvBots, bots))
		default:
			s.Bots = bots
		}
	}
	if v, ok := lookup(EnvSeed); ok {
		seed, err := cast.ToInt64E(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvSeed, err))
		} else {
			s.Seed = seed
		}
	}
	if v, ok := lookup(EnvNATSDir); ok && v != "" {
		s.NATSDir = v
	}
	if v, ok := lookup(EnvKVBucket); ok && v != "" {
		s.KVBucket = v
	}
	if v, ok := lookup(EnvBroadcastMS); ok {
		ms, err := cast.ToIntE(v)
		if err != nil || ms <= 0 {
			errs = append(errs, fmt.Errorf("%s: invalid interval %q", EnvBroadcastMS, v))
		} else {
			s.Broadcast = time.Duration(ms) * time.Millisecond
		}
	}

	if err := errors.Join(errs...); err != nil {
		return Settings{}, err
	}
	return s, nil
}
