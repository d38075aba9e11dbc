// pkg/engine/game.go
package engine

import (
	"math"

	"github.com/jl-wynen/lunarlander-bot/pkg/bot"
	"github.com/jl-wynen/lunarlander-bot/pkg/config"
	"github.com/jl-wynen/lunarlander-bot/pkg/entity"
	"github.com/jl-wynen/lunarlander-bot/pkg/event"
	"github.com/jl-wynen/lunarlander-bot/pkg/physics"
	"github.com/jl-wynen/lunarlander-bot/pkg/terrain"
)

// GameStatus tracks the lifecycle of an episode
type GameStatus int

const (
	GameStatusWaiting GameStatus = iota
	GameStatusActive
	GameStatusEnded
)

// Game owns the simulation state for one episode: the terrain, the
// landers, and the tick clock. Controllers live outside the game; the
// harness feeds their Instructions into Update each tick.
type Game struct {
	Config      *config.GameConfig
	Terrain     terrain.Profile
	Landers     map[string]*entity.Lander
	Asteroids   []*entity.Asteroid
	EventBus    *event.Bus
	Status      GameStatus
	CurrentTick uint64
	ElapsedTime float64 // seconds
}

// NewGame creates a new episode: generates terrain from the configured
// seed and registers no landers yet (see AddLander).
func NewGame(cfg *config.GameConfig, bus *event.Bus) *Game {
	return &Game{
		Config: cfg,
		Terrain: terrain.Generate(
			cfg.World.Width,
			cfg.Terrain.MaxHeight,
			cfg.Terrain.PadWidth,
			cfg.Terrain.Seed,
		),
		Landers:  make(map[string]*entity.Lander),
		EventBus: bus,
		Status:   GameStatusWaiting,
	}
}

// AddLander spawns a lander at the given x position and the configured
// spawn height, with a full fuel load.
func (g *Game) AddLander(id string, x float64) *entity.Lander {
	lander := entity.NewLander(id, physics.Vector2D{
		X: x,
		Y: g.Config.Episode.SpawnHeight,
	}, g.Config.Episode.InitialFuel)
	g.Landers[id] = lander
	return lander
}

// Start marks the episode active and announces it on the event bus.
func (g *Game) Start() {
	g.Status = GameStatusActive
	g.EventBus.Publish(event.NewEpisodeEvent(event.EpisodeStarted, g, g.Config.Terrain.Seed, g.CurrentTick))
}

// Update advances the simulation by one tick, applying each lander's
// control instructions. Landers without an entry in commands coast.
func (g *Game) Update(deltaTime float64, commands map[string]bot.Instructions) {
	if g.Status != GameStatusActive {
		return
	}

	for id, lander := range g.Landers {
		if lander.Status != entity.StatusFlying {
			continue
		}
		g.updateLander(lander, deltaTime, commands[id])
	}

	for _, asteroid := range g.Asteroids {
		asteroid.Update(deltaTime)
	}

	g.CurrentTick++
	g.ElapsedTime += deltaTime
	g.checkEpisodeEnd()
}

// updateLander integrates one lander and classifies ground contact.
func (g *Game) updateLander(lander *entity.Lander, deltaTime float64, cmd bot.Instructions) {
	turn := 0.0
	if cmd.Left {
		turn += 1
	}
	if cmd.Right {
		turn -= 1
	}

	hadFuel := lander.Fuel > 0
	lander.Thrusting = cmd.Main && hadFuel
	physics.UpdateMovement(&lander.MovementState, deltaTime, cmd.Main, turn, g.Config.Physics)
	if hadFuel && lander.Fuel <= 0 {
		g.EventBus.Publish(event.NewLanderEvent(event.FuelExhausted, g, lander.ID,
			g.CurrentTick, lander.Position.X, lander.Velocity.X, lander.Velocity.Y))
	}

	// Wrap the x position around the play area.
	width := float64(g.Config.World.Width)
	lander.Position.X = math.Mod(lander.Position.X, width)
	if lander.Position.X < 0 {
		lander.Position.X += width
	}

	ground := g.Terrain.HeightAt(int(lander.Position.X))
	if lander.Position.Y > ground {
		return
	}

	// Ground contact: clamp to the surface and classify.
	lander.Position.Y = ground
	limits := g.Config.Landing
	tilt := lander.Heading
	if g.Config.Physics.HeadingPeriod > 0 {
		tilt = physics.NormalizeHeading(tilt, g.Config.Physics.HeadingPeriod)
	}
	safe := math.Abs(lander.Velocity.Y) <= limits.MaxVerticalSpeed &&
		math.Abs(lander.Velocity.X) <= limits.MaxHorizontalSpeed &&
		math.Abs(tilt) <= limits.MaxTilt

	eventType := event.Crash
	lander.Status = entity.StatusCrashed
	if safe {
		eventType = event.Touchdown
		lander.Status = entity.StatusLanded
	}
	g.EventBus.Publish(event.NewLanderEvent(eventType, g, lander.ID,
		g.CurrentTick, lander.Position.X, lander.Velocity.X, lander.Velocity.Y))
	lander.Velocity = physics.Vector2D{}
}

// checkEpisodeEnd ends the episode once every lander is down or the
// time limit is reached.
func (g *Game) checkEpisodeEnd() {
	if g.Config.Episode.TimeLimit > 0 && g.ElapsedTime >= g.Config.Episode.TimeLimit {
		g.endEpisode()
		return
	}
	for _, lander := range g.Landers {
		if lander.Status == entity.StatusFlying {
			return
		}
	}
	g.endEpisode()
}

func (g *Game) endEpisode() {
	g.Status = GameStatusEnded
	g.EventBus.Publish(event.NewEpisodeEvent(event.EpisodeEnded, g, g.Config.Terrain.Seed, g.CurrentTick))
}

// Snapshot builds the per-tick controller input for the given player.
// The players map is rebuilt each call so controllers cannot alias the
// engine's mutable state.
func (g *Game) Snapshot(playerID string) bot.TickInput {
	players := make(map[string]bot.PlayerState, len(g.Landers))
	for id, lander := range g.Landers {
		players[id] = bot.PlayerState{
			X:       lander.Position.X,
			Y:       lander.Position.Y,
			VX:      lander.Velocity.X,
			VY:      lander.Velocity.Y,
			Heading: lander.Heading,
			Fuel:    lander.Fuel,
		}
	}

	asteroids := make([]bot.AsteroidState, len(g.Asteroids))
	for i, a := range g.Asteroids {
		asteroids[i] = bot.AsteroidState{
			X:      a.Position.X,
			Y:      a.Position.Y,
			VX:     a.Velocity.X,
			VY:     a.Velocity.Y,
			Radius: a.Radius,
		}
	}

	return bot.TickInput{
		T:         g.ElapsedTime,
		DT:        g.Config.Episode.TimeStep,
		PlayerID:  playerID,
		Players:   players,
		Terrain:   g.Terrain,
		Asteroids: asteroids,
	}
}
