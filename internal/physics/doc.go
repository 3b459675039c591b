// Package physics provides the geometry and force terms of the simple
// pendulum used by the wall hop model.
//
// The pivot sits at the origin. The mass point lies on a circle of radius
// L at angle (theta - phi), where theta is the release angle and phi the
// accumulated angular displacement:
//
//	x = -L cos(theta - phi)
//	y = -L sin(theta - phi)
//
// All functions are pure; none of them keep state between calls.
package physics
