package physics

import (
	"math"

	"github.com/lixenwraith/ramen-sumo/core"
)

// CollisionProfile defines knockback parameters of a contact
type CollisionProfile struct {
	Base         float64 // Knockback magnitude at zero relative speed (px/s)
	SpeedScaled  bool    // Scale Base by 1 + relativeSpeed/SpeedDivisor
	SpeedDivisor float64 // Relative speed giving a 2x knockback
}

// Knockback returns the separation speed for a contact between velocities va and vb
func (p *CollisionProfile) Knockback(va, vb float64) float64 {
	if !p.SpeedScaled || p.SpeedDivisor <= 0 {
		return math.Abs(p.Base)
	}
	rel := math.Abs(va - vb)
	return math.Abs(p.Base * (1 + rel/p.SpeedDivisor))
}

// Contact reports penetration depth between two bodies whose contact distance is threshold
// Returns touching=false when the bodies are at or beyond threshold
func Contact(xa, xb, threshold float64) (overlap float64, touching bool) {
	dist := math.Abs(xa - xb)
	if dist >= threshold {
		return 0, false
	}
	return threshold - dist, true
}

// Separate pushes two overlapping bodies apart
// left must be the body with the smaller X; overlap is split equally and velocities
// are overridden to ±knockback
func Separate(left, right *core.Kinetic, overlap, knockback float64) {
	SetImpulse(left, -knockback)
	SetImpulse(right, knockback)
	left.X -= overlap / 2
	right.X += overlap / 2
}

// Order returns the two bodies sorted by X, left first
func Order(a, b *core.Kinetic) (left, right *core.Kinetic) {
	if a.X <= b.X {
		return a, b
	}
	return b, a
}
