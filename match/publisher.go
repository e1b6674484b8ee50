package match

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/last-stand/game"
	"github.com/nats-io/nats.go"
)

// KillSubject is the NATS subject kill events are published on
const KillSubject = "laststand.kills"

// KillPublisher fans kill events out to presentation consumers
type KillPublisher interface {
	PublishKill(kill game.KillEvent) error
}

// NATSKillPublisher publishes kill events as JSON on a core NATS subject
type NATSKillPublisher struct {
	nc      *nats.Conn
	subject string
}

// NewNATSKillPublisher creates a publisher on KillSubject
func NewNATSKillPublisher(nc *nats.Conn) *NATSKillPublisher {
	return &NATSKillPublisher{nc: nc, subject: KillSubject}
}

// PublishKill implements KillPublisher
func (p *NATSKillPublisher) PublishKill(kill game.KillEvent) error {
	data, err := json.Marshal(kill)
	if err != nil {
		return fmt.Errorf("error marshaling kill event: %w", err)
	}
	if err := p.nc.Publish(p.subject, data); err != nil {
		return fmt.Errorf("error publishing kill event: %w", err)
	}
	return nil
}
