package engine

import (
	"github.com/lixenwraith/ramen-sumo/core"
)

// Side identifies one of the two contestants
type Side int

const (
	// SideA starts on the left and pushes right
	SideA Side = iota
	// SideB starts on the right and pushes left
	SideB
)

// Sides lists both sides in index order
var Sides = [2]Side{SideA, SideB}

// Valid reports whether s indexes a contestant
func (s Side) Valid() bool { return s == SideA || s == SideB }

// Opponent returns the other side
func (s Side) Opponent() Side {
	if s == SideA {
		return SideB
	}
	return SideA
}

// Direction is the sign of a push toward the opponent
func (s Side) Direction() float64 {
	if s == SideA {
		return 1
	}
	return -1
}

// String returns "A" or "B"
func (s Side) String() string {
	switch s {
	case SideA:
		return "A"
	case SideB:
		return "B"
	default:
		return "?"
	}
}

// Contestant is one ramen cup
type Contestant struct {
	core.Kinetic

	Water    float64
	ColorTag string

	// Charge attack sub-state
	ChargeElapsed float64
	Charging      bool
	FullyCharged  bool
	BlinkPhase    float64 // Render hint, advances while fully charged

	Modifier TypeModifier
}

// newContestant creates a cup at rest with a full bowl
func newContestant(x, maxWater float64, color string, mod TypeModifier) Contestant {
	return Contestant{
		Kinetic:  core.Kinetic{X: x},
		Water:    maxWater,
		ColorTag: color,
		Modifier: mod,
	}
}

// drain removes water, flooring at 0
func (c *Contestant) drain(amount float64) {
	if amount <= 0 {
		return
	}
	c.Water -= amount
	if c.Water < 0 {
		c.Water = 0
	}
}

// clearCharge drops any latched or accumulating charge
func (c *Contestant) clearCharge() {
	c.ChargeElapsed = 0
	c.FullyCharged = false
	c.BlinkPhase = 0
}
