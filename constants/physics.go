package constants

import "math"

// Friction and gravity
const (
	// FrictionPerTick is the velocity multiplier applied once per reference tick
	FrictionPerTick = 0.85

	// FrictionReferenceHz is the tick rate FrictionPerTick is defined against
	FrictionReferenceHz = 60.0

	// Gravity is the downward acceleration of the knockout flourish (px/s²)
	Gravity = 500.0
)

// Collision tuning
const (
	// ContactSlack shrinks the contact distance below two radii so cups visibly touch
	ContactSlack = 6.0

	// KnockbackSpeedDivisor scales knockback by 1 + relativeSpeed/divisor
	KnockbackSpeedDivisor = 200.0

	// BaseSpill is the water lost by each cup per collision before modifiers
	BaseSpill = 8.0

	// CollisionCooldown suppresses re-triggering while cups still overlap (seconds)
	CollisionCooldown = 0.25
)

// Knockout flourish
const (
	KnockoutVelocityX = 500.0
	KnockoutVelocityY = -200.0
	KnockoutSpin      = 2 * math.Pi
)

// Charge attack
const (
	// ChargeThreshold is the hold time required for a charged push (seconds)
	ChargeThreshold = 3.0

	// BlinkRate advances the fully-charged blink phase (radians per second)
	BlinkRate = 8.0
)
