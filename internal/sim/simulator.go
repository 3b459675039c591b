package sim

import (
	"fmt"

	"github.com/san-kum/pendsim/internal/dynamo"
)

type Simulator struct {
	integ     Stepper
	metrics   []dynamo.Metric
	observers []dynamo.Observer
	sink      dynamo.Sink
	phase     Phase
}

func New(integ Stepper) *Simulator {
	return &Simulator{
		integ:     integ,
		metrics:   make([]dynamo.Metric, 0),
		observers: make([]dynamo.Observer, 0),
		phase:     Running,
	}
}

func (s *Simulator) AddMetric(m dynamo.Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o dynamo.Observer) { s.observers = append(s.observers, o) }

// SetSink attaches a consumer for the finished trajectory. A nil sink
// disables it.
func (s *Simulator) SetSink(k dynamo.Sink) { s.sink = k }

func (s *Simulator) Phase() Phase { return s.phase }

// Run steps the integrator until the latest sample reaches the time limit
// or the tangential velocity is no longer positive. The predicate is
// checked before every step, so a run that starts with a non-positive
// velocity records only the initial sample.
func (s *Simulator) Run() (*Result, error) {
	if s.phase == Stopped {
		return nil, ErrStopped
	}
	cfg := s.integ.Config()
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	result := &Result{
		Metrics: make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	hist := s.integ.History()
	if first, ok := hist.Last(); ok {
		for _, m := range s.metrics {
			m.Observe(s.integ.State(), first)
		}
	}

	for {
		last, _ := hist.Last()
		if reason := stopReason(last.Time, s.integ.State().Vel, cfg); reason != StopNone {
			result.Reason = reason
			break
		}

		entry := s.integ.Step()
		x := s.integ.State()

		for _, obs := range s.observers {
			obs.OnStep(x, entry)
		}
		for _, m := range s.metrics {
			m.Observe(x, entry)
		}
		result.Steps++
	}
	s.phase = Stopped

	result.Final = s.integ.State()
	result.Samples = hist.Len()
	if last, ok := hist.Last(); ok {
		result.FinalTime = last.Time
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	if s.sink != nil {
		if err := s.sink.Consume(hist.Entries()); err != nil {
			return result, fmt.Errorf("%w: %w", dynamo.ErrSinkFailed, err)
		}
	}

	return result, nil
}

func stopReason(t, vel float64, cfg dynamo.Config) StopReason {
	if !(t < cfg.TimeLimit) {
		return StopTimeLimit
	}
	if !(vel > 0) {
		return StopVelocity
	}
	return StopNone
}

func validateConfig(cfg dynamo.Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.TimeLimit <= 0 {
		return fmt.Errorf("time limit must be positive, got %f", cfg.TimeLimit)
	}
	return nil
}
