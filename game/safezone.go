package game

import (
	"math"

	"github.com/mark3labs/last-stand/game/shared"
)

// NewSafeZone returns a full-size zone centred on the map
func NewSafeZone(cfg Config) SafeZone {
	return SafeZone{
		Center:         cfg.Map.Center(),
		Radius:         cfg.SafeZoneInitialRadius,
		NextRadius:     cfg.SafeZoneInitialRadius,
		ShrinkDuration: cfg.ShrinkDuration,
	}
}

// TargetRadius returns the staged radius for the elapsed match time and the
// threshold that opened that stage
func TargetRadius(cfg Config, elapsed int64) (float64, int64) {
	target := cfg.SafeZoneInitialRadius
	var stageStart int64
	if len(cfg.ShrinkIntervals) == 0 {
		return target, stageStart
	}
	step := (cfg.SafeZoneInitialRadius - cfg.SafeZoneFinalRadius) / float64(len(cfg.ShrinkIntervals))
	for i, threshold := range cfg.ShrinkIntervals {
		if elapsed > threshold {
			target = cfg.SafeZoneInitialRadius - step*float64(i+1)
			stageStart = threshold
		}
	}
	return target, stageStart
}

// UpdateSafeZone eases the radius toward the staged target. The radius never
// grows and never passes the target.
func UpdateSafeZone(cfg Config, zone SafeZone, elapsed int64) SafeZone {
	target, stageStart := TargetRadius(cfg, elapsed)
	if target < zone.NextRadius {
		zone.NextRadius = target
		zone.ShrinkStartTime = stageStart
	}
	if zone.Radius > zone.NextRadius {
		zone.Radius = math.Max(zone.NextRadius, zone.Radius-cfg.ShrinkRate)
	}
	return zone
}

// OutsideZone returns the ids of living players beyond the zone radius
func OutsideZone(players []PlayerState, zone SafeZone) []string {
	var ids []string
	for i := range players {
		p := &players[i]
		if !p.Alive {
			continue
		}
		if shared.Distance(p.Position, zone.Center) > zone.Radius {
			ids = append(ids, p.ID)
		}
	}
	return ids
}
