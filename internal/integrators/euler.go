package integrators

import (
	"math"

	"github.com/san-kum/pendsim/internal/dynamo"
	"github.com/san-kum/pendsim/internal/physics"
)

// Euler advances the pendulum with the forward Euler method and records
// every resulting sample.
type Euler struct {
	params   dynamo.Params
	cfg      dynamo.Config
	thetaRad float64
	state    dynamo.State
	history  *dynamo.History
}

// NewEuler sets up a run at time zero with the mass point at the release
// angle. Parameters are accepted unchecked.
func NewEuler(p dynamo.Params, cfg dynamo.Config) *Euler {
	capacity := 1
	if cfg.Dt > 0 && cfg.TimeLimit > 0 {
		capacity = int(math.Ceil(cfg.TimeLimit/cfg.Dt)) + 2
	}

	e := &Euler{
		params:   p,
		cfg:      cfg,
		thetaRad: physics.Radians(p.Theta),
		state:    dynamo.State{Vel: p.V0},
		history:  dynamo.NewHistory(capacity),
	}
	e.history.Append(0, physics.Position(p.Length, e.thetaRad, 0))
	return e
}

// Step advances the state by one Dt and returns the appended entry.
// The velocity is decremented by the computed acceleration; this sign
// convention matches the wall hop model and must not be flipped.
func (e *Euler) Step() dynamo.Entry {
	dt := e.cfg.Dt
	s := &e.state

	s.Accel = physics.TangentialAccel(e.params.Gravity, e.thetaRad, s.Phi)
	s.Vel -= dt * s.Accel
	s.AngVel = s.Vel / e.params.Length
	s.Phi += dt * s.AngVel

	last, _ := e.history.Last()
	s.Time = last.Time + dt

	entry := dynamo.Entry{
		Time:   s.Time,
		Sample: physics.Position(e.params.Length, e.thetaRad, s.Phi),
	}
	e.history.Append(entry.Time, entry.Sample)
	return entry
}

func (e *Euler) State() dynamo.State      { return e.state }
func (e *Euler) History() *dynamo.History { return e.history }
func (e *Euler) Params() dynamo.Params    { return e.params }
func (e *Euler) Config() dynamo.Config    { return e.cfg }
