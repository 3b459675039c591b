package dynamo

// Params holds the physical parameters of the pendulum.
type Params struct {
	Mass    float64 // kg, not used by the dynamics
	Length  float64 // m
	Theta   float64 // initial angle, degrees
	V0      float64 // initial tangential speed, m/s
	Gravity float64 // m/s^2
}

// Config holds the fixed stepping parameters of a run.
type Config struct {
	Dt        float64
	TimeLimit float64
}

func DefaultConfig() Config {
	return Config{
		Dt:        0.001,
		TimeLimit: 5.0,
	}
}

// State is the kinematic state of the mass point. Accel and Vel are
// tangential quantities along the arc, Phi is the angular displacement
// from the initial angle in radians.
type State struct {
	Accel  float64
	Vel    float64
	AngVel float64
	Phi    float64
	Time   float64
}

// Sample is the Cartesian position of the mass point.
type Sample struct {
	X, Y float64
}

// Entry is a time-stamped Sample.
type Entry struct {
	Time   float64
	Sample Sample
}

type Observer interface {
	OnStep(s State, e Entry)
}

type Metric interface {
	Name() string
	Observe(s State, e Entry)
	Value() float64
	Reset()
}

// Sink consumes a finished trajectory, e.g. to render it.
type Sink interface {
	Consume(entries []Entry) error
}
