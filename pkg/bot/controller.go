// Package bot implements the per-tick autopilot that flies a lander to
// a safe touchdown: it picks the widest flat terrain stretch as the
// landing site, cancels horizontal drift, and times its braking burns
// from a constant-thrust stopping-height prediction.
package bot

import (
	"errors"
	"fmt"
	"math"

	"github.com/jl-wynen/lunarlander-bot/pkg/physics"
	"github.com/jl-wynen/lunarlander-bot/pkg/terrain"
	"github.com/jl-wynen/lunarlander-bot/pkg/validation"
)

// ErrCraftMissing is returned when the players map has no entry for the
// controller's own craft. That is a contract bug in the caller, not a
// recoverable flight condition.
var ErrCraftMissing = errors.New("own craft not present in players map")

// Controller is the maneuver state machine for a single craft. One
// Controller is created per craft at episode start and discarded at
// episode end; it is not safe for concurrent use, which is fine because
// the simulation delivers exactly one tick at a time.
type Controller struct {
	cfg   Config
	model physics.FlightModel

	state State

	// Landing site, chosen once and kept for the controller's lifetime.
	siteFound  bool
	site       int
	siteHeight float64

	// Active rotation goal; cleared when reached.
	hasTarget bool
	target    float64

	// Terrain maximum, cached on the first tick.
	haveTerrainMax bool
	terrainMax     float64
}

// New creates a controller with the given tuning and physics constants
func New(cfg Config, phys physics.Config) *Controller {
	return &Controller{
		cfg:   cfg,
		model: physics.NewFlightModel(phys),
		state: StateInitialManoeuvre,
	}
}

// State returns the controller's current behavioral mode.
func (c *Controller) State() State {
	return c.state
}

// LandingSite returns the chosen landing site index, if one has been
// selected yet.
func (c *Controller) LandingSite() (int, bool) {
	return c.site, c.siteFound
}

// Run evaluates one simulation tick and returns the control output.
// State transitions decided on this tick take effect on the next one.
// Run returns an error only for malformed input; a terrain with no
// qualifying landing site is not an error, the controller simply keeps
// hovering and searching.
func (c *Controller) Run(in TickInput) (Instructions, error) {
	me, err := c.ownCraft(in)
	if err != nil {
		return Instructions{}, err
	}

	if !c.haveTerrainMax && len(in.Terrain) > 0 {
		c.terrainMax = in.Terrain.Max()
		c.haveTerrainMax = true
	}

	var ins Instructions
	var next State
	switch c.state {
	case StateInitialManoeuvre:
		ins, next = c.stepInitialManoeuvre(me)
	case StateSearchLandingSite:
		ins, next = c.stepSearchLandingSite(me, in.Terrain)
	case StateAlignWithSite:
		ins, next = c.stepAlignWithSite(me)
	default:
		ins, next = c.stepLand(me)
	}
	c.state = next
	return ins, nil
}

// ownCraft extracts and validates the controller's own kinematics.
func (c *Controller) ownCraft(in TickInput) (PlayerState, error) {
	if err := validation.ValidatePlayerID(in.PlayerID); err != nil {
		return PlayerState{}, fmt.Errorf("invalid tick input: %w", err)
	}
	if err := validation.ValidateTiming(in.T, in.DT); err != nil {
		return PlayerState{}, fmt.Errorf("invalid tick input: %w", err)
	}
	me, ok := in.Players[in.PlayerID]
	if !ok {
		return PlayerState{}, fmt.Errorf("%w: %q", ErrCraftMissing, in.PlayerID)
	}
	if err := validation.CheckFinite("own craft kinematics",
		me.X, me.Y, me.VX, me.VY, me.Heading); err != nil {
		return PlayerState{}, fmt.Errorf("invalid tick input: %w", err)
	}
	return me, nil
}

// stepInitialManoeuvre cancels excess horizontal drift, then rotates
// the craft upright. Drift cancellation wins over orientation: a fast
// craft fires the engine instead of rotating.
func (c *Controller) stepInitialManoeuvre(me PlayerState) (Instructions, State) {
	var ins Instructions
	if math.Abs(me.VX) > c.cfg.SafeHorizontalSpeed {
		ins.Main = true
		return ins, StateInitialManoeuvre
	}
	if !c.hasTarget {
		c.setTarget(0)
	}
	cmd := c.steer(me.Heading)
	applyRotation(&ins, cmd)
	if cmd == physics.RotateNone {
		return ins, StateSearchLandingSite
	}
	return ins, StateInitialManoeuvre
}

// stepSearchLandingSite looks for a landing site once per tick until
// one is found, holding a safe altitude in the meantime. Degenerate
// terrain with no qualifying site keeps the craft loitering here for
// the rest of the episode.
func (c *Controller) stepSearchLandingSite(me PlayerState, profile terrain.Profile) (Instructions, State) {
	var ins Instructions
	if !c.siteFound {
		if site, ok := profile.FindLandingSite(c.cfg.MinSiteWidth); ok {
			c.site = site
			c.siteHeight = profile.HeightAt(site)
			c.siteFound = true
		}
	}
	if !c.siteFound {
		if me.VY < 0 && c.mustHoldAltitude(me) {
			ins.Main = true
		}
		return ins, StateSearchLandingSite
	}
	return ins, StateAlignWithSite
}

// stepAlignWithSite steers horizontal drift out while keeping altitude
// until the craft is nearly above the chosen site.
func (c *Controller) stepAlignWithSite(me PlayerState) (Instructions, State) {
	var ins Instructions
	diff := float64(c.site) - me.X
	if math.Abs(diff) < c.cfg.CommitDistance {
		return ins, StateLand
	}
	if me.VY < 0 && c.mustHoldAltitude(me) {
		ins.Main = true
	}
	if math.Abs(diff) > c.cfg.AlignDistance {
		c.cancelDrift(&ins, me, c.cfg.AlignBankAngle)
	}
	return ins, StateAlignWithSite
}

// stepLand is the terminal phase: shallow-bank drift cancellation plus
// descent braking against the stopping-height prediction. The engine
// fires when any trigger is satisfied; the triggers are cumulative, not
// mutually exclusive.
func (c *Controller) stepLand(me PlayerState) (Instructions, State) {
	var ins Instructions
	c.cancelDrift(&ins, me, c.cfg.LandBankAngle)

	stop := c.model.StopHeight(me.Y, me.VY, me.Heading)
	if math.IsInf(stop, -1) || stop < c.siteHeight+c.cfg.BrakeMargin {
		// Waiting any longer would put the arrest point inside the
		// safety margin above the pad.
		ins.Main = true
	}
	if me.Y-c.siteHeight < c.cfg.FinalApproachBand {
		ins.Main = true
	}
	if me.VY < -c.cfg.MaxDescentRate {
		ins.Main = true
	}
	return ins, StateLand
}

// mustHoldAltitude reports whether the craft should burn to keep a safe
// hover height above the terrain maximum. A stop-height prediction of
// negative infinity means thrust cannot arrest the descent at all, so
// the conservative answer is to fire.
func (c *Controller) mustHoldAltitude(me PlayerState) bool {
	stop := c.model.StopHeight(me.Y, me.VY, me.Heading)
	return math.IsInf(stop, -1) || stop > c.terrainMax+c.cfg.HoverMargin
}

// cancelDrift banks the craft against its horizontal velocity and burns
// until the drift is below DriftEpsilon, then rotates back upright. The
// bank target is only picked when no rotation goal is active, so an
// in-progress rotation is never retargeted mid-turn.
func (c *Controller) cancelDrift(ins *Instructions, me PlayerState, bank float64) {
	if math.Abs(me.VX) > c.cfg.DriftEpsilon {
		if !c.hasTarget {
			if me.VX > 0 {
				c.setTarget(bank)
			} else {
				c.setTarget(-bank)
			}
		}
		ins.Main = true
	} else if !c.hasTarget {
		c.setTarget(0)
	}
	applyRotation(ins, c.steer(me.Heading))
}

// steer issues the bang-bang rotation command toward the active goal
// and clears the goal once it is reached.
func (c *Controller) steer(heading float64) physics.RotationCommand {
	if !c.hasTarget {
		return physics.RotateNone
	}
	cmd := c.model.RotationCommand(heading, c.target, c.cfg.RotationTolerance)
	if cmd == physics.RotateNone {
		c.hasTarget = false
	}
	return cmd
}

func (c *Controller) setTarget(heading float64) {
	c.target = heading
	c.hasTarget = true
}

// applyRotation maps a rotation command onto the output booleans. At
// most one of Left/Right is ever set.
func applyRotation(ins *Instructions, cmd physics.RotationCommand) {
	switch cmd {
	case physics.RotateLeft:
		ins.Left = true
	case physics.RotateRight:
		ins.Right = true
	}
}
