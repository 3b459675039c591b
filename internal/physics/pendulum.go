package physics

import (
	"math"

	"github.com/san-kum/pendsim/internal/dynamo"
)

// Radians converts a degree-valued angle.
func Radians(deg float64) float64 {
	return deg / 180 * math.Pi
}

// Position returns the mass point for arm length l, release angle
// thetaRad and angular displacement phi.
func Position(l, thetaRad, phi float64) dynamo.Sample {
	return dynamo.Sample{
		X: -l * math.Cos(thetaRad-phi),
		Y: -l * math.Sin(thetaRad-phi),
	}
}

func TangentialAccel(g, thetaRad, phi float64) float64 {
	return g * math.Cos(thetaRad-phi)
}

// Energy is the mechanical energy of the mass point with the pivot as
// the potential reference.
func Energy(p dynamo.Params, s dynamo.State, pos dynamo.Sample) float64 {
	// KE = 0.5 * m * v^2
	// PE = m * g * y
	ke := 0.5 * p.Mass * s.Vel * s.Vel
	pe := p.Mass * p.Gravity * pos.Y
	return ke + pe
}

// Height is how far the arm has swung along its hop, L sin(phi).
func Height(l, phi float64) float64 {
	return l * math.Sin(phi)
}
