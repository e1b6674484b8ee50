package routes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/last-stand/match"
	"github.com/nats-io/nats.go"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/router"
)

// SetupRoutes initializes all routes with NATS and the match manager.
// broadcast caps how often a stream pushes snapshots to one client.
func SetupRoutes(ctx context.Context, router *router.Router[*core.RequestEvent], nc *nats.Conn, manager *match.Manager, broadcast time.Duration) error {

	err := errors.Join(
		setupIndexRoutes(ctx, router, nc, manager, broadcast),
		setupAuthRoutes(router),
	)
	if err != nil {
		return fmt.Errorf("error setting up routes: %w", err)
	}

	return nil
}
