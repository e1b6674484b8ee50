package routes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/last-stand/game"
	"github.com/mark3labs/last-stand/match"
	"github.com/mark3labs/last-stand/middleware"
	"github.com/mark3labs/last-stand/utils"
	"github.com/mark3labs/last-stand/views"
	"github.com/nats-io/nats.go"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/router"
	datastar "github.com/starfederation/datastar/sdk/go"
)

func setupIndexRoutes(ctx context.Context, router *router.Router[*core.RequestEvent], nc *nats.Conn, manager *match.Manager, broadcast time.Duration) error {
	if manager == nil {
		return errors.New("index routes need a match manager")
	}
	if nc == nil {
		return errors.New("index routes need a NATS connection")
	}

	// Create a group for protected routes
	protected := router.Group("")
	protected.BindFunc(middleware.AuthGuard)

	router.GET("/guest", func(e *core.RequestEvent) error {
		id := middleware.JoinAsGuest(e)
		log.Info("Guest joined", "guest", id)
		return e.Redirect(http.StatusFound, "/")
	})

	protected.GET("/", func(e *core.RequestEvent) error {
		identity, _ := middleware.PlayerIdentity(e)
		name := identity.Name
		if name == "" {
			name = "Guest"
		}
		return views.Index(name, manager.Config(), manager.GetState(), manager.KillFeed(), game.DefaultTimeStamper()).
			Render(e.Request.Context(), e.Response)
	})

	// POST route for the human's control snapshot
	protected.POST("/input", func(e *core.RequestEvent) error {
		in := game.Input{}
		if err := datastar.ReadSignals(e.Request, &in); err != nil {
			log.Warn("Error reading input signals", "err", err)
			return e.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		if err := manager.SetInput(in); err != nil {
			if errors.Is(err, match.ErrNotPlaying) {
				return e.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
			}
			return err
		}
		return e.JSON(http.StatusOK, map[string]bool{"success": true})
	})

	protected.POST("/start", func(e *core.RequestEvent) error {
		identity, ok := middleware.PlayerIdentity(e)
		if !ok {
			return e.JSON(http.StatusUnauthorized, map[string]string{"error": "no player identity"})
		}
		name := identity.Name
		if name == "" {
			name = utils.GenerateCallsign(nil)
		}

		if err := manager.StartMatch(identity.ID, name); err != nil {
			if errors.Is(err, match.ErrMatchInProgress) {
				return e.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
			}
			return fmt.Errorf("error starting match: %w", err)
		}

		// The runner outlives this request
		go func() {
			if err := manager.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("Match runner failed", "err", err)
			}
		}()

		return e.JSON(http.StatusOK, map[string]string{"playerId": identity.ID, "name": name})
	})

	protected.POST("/reset", func(e *core.RequestEvent) error {
		if err := manager.ResetMatch(); err != nil {
			return fmt.Errorf("error resetting match: %w", err)
		}
		return e.JSON(http.StatusOK, map[string]bool{"success": true})
	})

	// GET route for the snapshot stream
	protected.GET("/gamestate", func(e *core.RequestEvent) error {
		sse := datastar.NewSSE(e.Response, e.Request)
		reqCtx := e.Request.Context()

		if err := sendState(sse, manager.GetState()); err != nil {
			return err
		}

		watcher, err := manager.WatchState(reqCtx)
		if err != nil {
			if !errors.Is(err, match.ErrNoWatcher) {
				return err
			}
			return pollState(reqCtx, sse, manager, broadcast)
		}
		defer watcher.Stop()

		var lastSent time.Time
		for {
			select {
			case <-reqCtx.Done():
				return nil
			case entry, ok := <-watcher.Updates():
				if !ok {
					return nil
				}
				if entry == nil {
					continue
				}
				state, err := match.DecodeState(entry.Value())
				if err != nil {
					log.Error("Error decoding snapshot", "err", err)
					continue
				}
				// Ticks arrive faster than clients need them. The terminal
				// snapshot always goes through.
				if state.Phase == game.PhasePlaying && time.Since(lastSent) < broadcast {
					continue
				}
				if err := sendState(sse, state); err != nil {
					log.Debug("Snapshot stream closed", "err", err)
					return nil
				}
				lastSent = time.Now()
			}
		}
	})

	// GET route for the kill feed, driven by kill events on NATS
	protected.GET("/killfeed", func(e *core.RequestEvent) error {
		sse := datastar.NewSSE(e.Response, e.Request)
		reqCtx := e.Request.Context()

		if err := sse.MergeFragmentTempl(views.KillFeed(manager.KillFeed())); err != nil {
			return err
		}

		msgs := make(chan *nats.Msg, 64)
		sub, err := nc.ChanSubscribe(match.KillSubject, msgs)
		if err != nil {
			return fmt.Errorf("error subscribing to kill events: %w", err)
		}
		defer sub.Unsubscribe()

		for {
			select {
			case <-reqCtx.Done():
				return nil
			case msg := <-msgs:
				var kill game.KillEvent
				if err := json.Unmarshal(msg.Data, &kill); err != nil {
					log.Warn("Dropping malformed kill event", "err", err)
					continue
				}
				log.Debug("Kill feed update", "killer", kill.Killer, "victim", kill.Victim)
				if err := sse.MergeFragmentTempl(views.KillFeed(manager.KillFeed())); err != nil {
					return nil
				}
			}
		}
	})

	return nil
}

func pollState(ctx context.Context, sse *datastar.ServerSentEventGenerator, manager *match.Manager, every time.Duration) error {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := sendState(sse, manager.GetState()); err != nil {
				return nil
			}
		}
	}
}

// sendState pushes the snapshot signal and the HUD fragment
func sendState(sse *datastar.ServerSentEventGenerator, state game.GameState) error {
	payload, err := json.Marshal(map[string]game.GameState{views.SnapshotSignal: state})
	if err != nil {
		return fmt.Errorf("error marshaling game state: %w", err)
	}
	if err := sse.MergeSignals(payload); err != nil {
		return err
	}
	return sse.MergeFragmentTempl(views.HUD(state, game.DefaultTimeStamper()))
}
