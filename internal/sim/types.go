package sim

import (
	"errors"

	"github.com/san-kum/pendsim/internal/dynamo"
)

var ErrStopped = errors.New("sim: run already stopped")

// Stepper advances a single integration run. *integrators.Euler
// implements it.
type Stepper interface {
	Step() dynamo.Entry
	State() dynamo.State
	History() *dynamo.History
	Config() dynamo.Config
}

type Phase int

const (
	Running Phase = iota
	Stopped
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// StopReason records which half of the termination predicate failed.
type StopReason int

const (
	StopNone StopReason = iota
	StopTimeLimit
	StopVelocity
)

func (r StopReason) String() string {
	switch r {
	case StopTimeLimit:
		return "time_limit"
	case StopVelocity:
		return "velocity"
	default:
		return "none"
	}
}

type Result struct {
	Steps     int
	Samples   int
	FinalTime float64
	Final     dynamo.State
	Reason    StopReason
	Metrics   map[string]float64
}
