// cmd/lander-sim/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jl-wynen/lunarlander-bot/pkg/bot"
	"github.com/jl-wynen/lunarlander-bot/pkg/config"
	"github.com/jl-wynen/lunarlander-bot/pkg/engine"
	"github.com/jl-wynen/lunarlander-bot/pkg/entity"
	"github.com/jl-wynen/lunarlander-bot/pkg/event"
	"github.com/jl-wynen/lunarlander-bot/pkg/logging"
	"github.com/jl-wynen/lunarlander-bot/pkg/render"
	"github.com/jl-wynen/lunarlander-bot/pkg/telemetry"
)

const landerID = "lander-1"

func main() {
	logger := logging.NewLogger()
	ctx := context.Background()

	envCfg, err := config.LoadEnvironmentConfig()
	if err != nil {
		logger.Error(ctx, "Invalid environment configuration", err)
		os.Exit(1)
	}

	configPath := flag.String("config", envCfg.ConfigPath, "Path to configuration file")
	createDefault := flag.Bool("default", false, "Create default configuration file")
	episodes := flag.Int("episodes", envCfg.Episodes, "Number of episodes to run")
	seed := flag.Uint64("seed", envCfg.Seed, "Terrain seed of the first episode")
	doRender := flag.Bool("render", envCfg.Render, "Render episodes to the terminal")
	telemetryPath := flag.String("telemetry", envCfg.TelemetryPath, "Telemetry SQLite path (empty disables recording)")
	flag.Parse()

	if *createDefault {
		if err := config.SaveConfig(config.DefaultConfig(), *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
		logger.Info(ctx, "Created default configuration file",
			"config_path", *configPath,
		)
		return
	}

	var gameConfig *config.GameConfig
	if _, err := os.Stat(*configPath); os.IsNotExist(err) {
		logger.Info(ctx, "Configuration file not found, using default configuration",
			"config_path", *configPath,
		)
		gameConfig = config.DefaultConfig()
	} else {
		gameConfig, err = config.LoadConfig(*configPath)
		if err != nil {
			logger.Error(ctx, "Failed to load configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
	}

	var recorder *telemetry.Recorder
	if *telemetryPath != "" {
		recorder, err = telemetry.NewRecorder(*telemetryPath)
		if err != nil {
			logger.Error(ctx, "Failed to open telemetry recorder", err,
				"telemetry_path", *telemetryPath,
			)
			os.Exit(1)
		}
		defer recorder.Close()
	}

	var renderer render.Renderer = render.NewNullRenderer()
	if *doRender {
		renderer = render.NewTerminalRenderer(120, 30)
	}

	landed, crashed := 0, 0
	for ep := 0; ep < *episodes; ep++ {
		epCfg := *gameConfig
		epCfg.Terrain.Seed = *seed + uint64(ep)

		outcome, err := runEpisode(ctx, logger, &epCfg, recorder, renderer)
		if err != nil {
			logger.Error(ctx, "Episode failed", err, "episode", ep)
			os.Exit(1)
		}
		switch outcome {
		case entity.StatusLanded:
			landed++
		case entity.StatusCrashed:
			crashed++
		}
	}

	fmt.Printf("episodes=%d landed=%d crashed=%d timed_out=%d\n",
		*episodes, landed, crashed, *episodes-landed-crashed)
}

// runEpisode runs a single episode to completion and returns the
// lander's final status.
func runEpisode(
	ctx context.Context,
	logger *logging.Logger,
	cfg *config.GameConfig,
	recorder *telemetry.Recorder,
	renderer render.Renderer,
) (entity.Status, error) {
	ctx = logging.WithEpisodeID(ctx, "")
	bus := event.NewEventBus()
	bus.Subscribe(event.Touchdown, func(e event.Event) {
		le := e.(*event.LanderEvent)
		logger.Info(ctx, "Touchdown", "lander", le.LanderID, "tick", le.Tick,
			"vx", le.VX, "vy", le.VY)
	})
	bus.Subscribe(event.Crash, func(e event.Event) {
		le := e.(*event.LanderEvent)
		logger.Warn(ctx, "Crash", "lander", le.LanderID, "tick", le.Tick,
			"vx", le.VX, "vy", le.VY)
	})

	game := engine.NewGame(cfg, bus)
	lander := game.AddLander(landerID, float64(cfg.World.Width)/2)
	controller := bot.New(cfg.Autopilot, cfg.Physics)

	var epRecord *telemetry.Episode
	if recorder != nil {
		var err error
		epRecord, err = recorder.StartEpisode(landerID, cfg.Terrain.Seed)
		if err != nil {
			return entity.StatusFlying, err
		}
	}

	game.Start()
	siteAnnounced := false
	for game.Status == engine.GameStatusActive {
		input := game.Snapshot(landerID)
		before := controller.State()

		instructions, err := controller.Run(input)
		if err != nil {
			return entity.StatusFlying, logging.WrapError(err, "controller tick %d", game.CurrentTick)
		}

		if after := controller.State(); after != before {
			bus.Publish(event.NewPhaseEvent(controller, landerID, game.CurrentTick,
				before.String(), after.String()))
			if recorder != nil {
				if err := recorder.RecordPhaseChange(epRecord, game.CurrentTick,
					before.String(), after.String()); err != nil {
					return entity.StatusFlying, err
				}
			}
		}
		if site, ok := controller.LandingSite(); ok && !siteAnnounced {
			siteAnnounced = true
			bus.Publish(event.NewSiteEvent(controller, landerID, game.CurrentTick, site))
			logger.Info(ctx, "Landing site selected", "site", site)
		}

		if recorder != nil {
			me := input.Players[landerID]
			if err := recorder.RecordTick(epRecord, telemetry.TickSample{
				Tick:    game.CurrentTick,
				X:       me.X,
				Y:       me.Y,
				VX:      me.VX,
				VY:      me.VY,
				Heading: me.Heading,
				Fuel:    me.Fuel,
				Phase:   before.String(),
				Main:    instructions.Main,
				Left:    instructions.Left,
				Right:   instructions.Right,
			}); err != nil {
				return entity.StatusFlying, err
			}
		}

		game.Update(cfg.Episode.TimeStep, map[string]bot.Instructions{
			landerID: instructions,
		})
		renderer.RenderFrame(game)
	}

	if recorder != nil {
		if err := recorder.FinishEpisode(epRecord, lander.Status.String(),
			game.CurrentTick, lander.Fuel); err != nil {
			return entity.StatusFlying, err
		}
	}

	logger.Info(ctx, "Episode finished",
		"seed", cfg.Terrain.Seed,
		"ticks", game.CurrentTick,
		"outcome", lander.Status.String(),
		"fuel_remaining", lander.Fuel,
	)
	return lander.Status, nil
}
