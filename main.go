package main

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/delaneyj/toolbelt/embeddednats"
	"github.com/mark3labs/last-stand/config"
	"github.com/mark3labs/last-stand/game"
	"github.com/mark3labs/last-stand/match"
	"github.com/mark3labs/last-stand/middleware"
	"github.com/mark3labs/last-stand/routes"
	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatal("Error loading configuration", "err", err)
	}

	cfg := game.DefaultConfig()
	cfg.BotCount = settings.Bots

	app := pocketbase.New()
	app.RootCmd.AddCommand(newSimulateCommand(cfg, settings))

	middleware.AddCookieSessionMiddleware(app)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		ns, err := embeddednats.New(ctx, embeddednats.WithNATSServerOptions(&server.Options{
			JetStream: true,
			StoreDir:  settings.NATSDir,
			Port:      server.RANDOM_PORT,
		}))
		if err != nil {
			return err
		}
		ns.WaitForServer()

		nc, err := ns.Client()
		if err != nil {
			return err
		}

		js, err := jetstream.New(nc)
		if err != nil {
			return err
		}

		store, err := match.NewKVStore(ctx, js, settings.KVBucket)
		if err != nil {
			return err
		}

		manager, err := match.NewManager(ctx, cfg,
			match.WithStore(store),
			match.WithKillPublisher(match.NewNATSKillPublisher(nc)),
			match.WithTickRate(settings.TickHz),
			match.WithRandom(game.NewRandom(settings.Seed)),
		)
		if err != nil {
			return err
		}

		if err := routes.SetupRoutes(ctx, se.Router, nc, manager, settings.Broadcast); err != nil {
			return err
		}

		app.OnTerminate().BindFunc(func(e *core.TerminateEvent) error {
			cancel()
			nc.Close()
			ns.Close()
			return e.Next()
		})

		log.Info("Last Stand ready", "bucket", settings.KVBucket, "tickHz", settings.TickHz, "bots", cfg.BotCount)
		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
