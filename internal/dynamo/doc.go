// Package dynamo provides the core types shared by the pendulum simulation.
//
// The package defines the data model of a run:
//
//   - [Params]: physical parameters of the pendulum (immutable)
//   - [Config]: fixed step size and time limit
//   - [State]: kinematic state advanced by the integrator
//   - [History]: append-only time series of mass point positions
//   - [Observer], [Metric], [Sink]: hooks attached to a run
//
// # Example
//
//	integ := integrators.NewEuler(params, cfg)
//	s := sim.New(integ)
//	s.AddObserver(export.NewTextWriter(os.Stdout))
//	result, _ := s.Run()
//
// # Thread Safety
//
// None of the types are safe for concurrent use. A run is a plain
// sequential loop owned by a single goroutine.
package dynamo
