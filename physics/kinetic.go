package physics

import (
	"math"

	"github.com/lixenwraith/ramen-sumo/constants"
	"github.com/lixenwraith/ramen-sumo/core"
)

// Integrate advances position by velocity: x += vx*dt
// Vertical and angular axes are integrated only when extended is set
func Integrate(k *core.Kinetic, dt float64, extended bool) {
	k.X += k.VX * dt
	if extended {
		k.Y += k.VY * dt
		k.Angle += k.AngularVel * dt
	}
}

// DecayFactor returns the frame-rate independent friction multiplier for dt
// At the reference rate the per-tick multiplier is exactly FrictionPerTick
func DecayFactor(dt float64) float64 {
	return math.Pow(constants.FrictionPerTick, dt*constants.FrictionReferenceHz)
}

// ApplyFriction decays horizontal (and angular, when extended) velocity
func ApplyFriction(k *core.Kinetic, dt float64, extended bool) {
	f := DecayFactor(dt)
	k.VX *= f
	if extended {
		k.AngularVel *= f
	}
}

// ApplyGravity adds downward acceleration to vertical velocity
func ApplyGravity(k *core.Kinetic, dt float64) {
	k.VY += constants.Gravity * dt
}

// Ground keeps a body resting on the table surface, returns true if it is on the table
// Airborne bodies (Y < 0) are left alone
func Ground(k *core.Kinetic) bool {
	if k.Y < 0 {
		return false
	}
	k.Y = 0
	if k.VY > 0 {
		k.VY = 0
	}
	return true
}

// ApplyImpulse adds horizontal velocity delta (momentum transfer)
func ApplyImpulse(k *core.Kinetic, vx float64) {
	k.VX += vx
}

// SetImpulse overrides horizontal velocity (hard redirect)
func SetImpulse(k *core.Kinetic, vx float64) {
	k.VX = vx
}

// ClampX confines X to [minX, maxX], returns true if clamping occurred
func ClampX(k *core.Kinetic, minX, maxX float64) bool {
	if k.X < minX {
		k.X = minX
		return true
	}
	if k.X > maxX {
		k.X = maxX
		return true
	}
	return false
}

// Boundary reports which edge x sits on: -1 left, +1 right, 0 inside
func Boundary(x, minX, maxX float64) int {
	switch {
	case x <= minX:
		return -1
	case x >= maxX:
		return 1
	default:
		return 0
	}
}
