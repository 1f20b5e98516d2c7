package engine

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/ramen-sumo/constants"
	"github.com/lixenwraith/ramen-sumo/physics"
)

// WinCondition selects how a term is decided
type WinCondition int

const (
	// ByWaterAtTimeout ends a term when the clock runs out; more water wins
	ByWaterAtTimeout WinCondition = iota
	// ByBoundaryKnockout ends a term when a cup is driven to a table edge
	// A timeout still falls back to the water comparison
	ByBoundaryKnockout
)

// String returns the config name of the win condition
func (w WinCondition) String() string {
	switch w {
	case ByWaterAtTimeout:
		return "water"
	case ByBoundaryKnockout:
		return "knockout"
	default:
		return fmt.Sprintf("win(%d)", int(w))
	}
}

// ParseWinCondition resolves "water" or "knockout"
func ParseWinCondition(s string) (WinCondition, error) {
	switch s {
	case "water", "timeout":
		return ByWaterAtTimeout, nil
	case "knockout", "ko", "boundary":
		return ByBoundaryKnockout, nil
	default:
		return ByWaterAtTimeout, fmt.Errorf("unknown win condition %q", s)
	}
}

// Arena is the immutable table geometry
type Arena struct {
	Left, Right float64
	CupRadius   float64
	MaxWater    float64
}

// MinX is the smallest legal cup center
func (a Arena) MinX() float64 { return a.Left + a.CupRadius }

// MaxX is the largest legal cup center
func (a Arena) MaxX() float64 { return a.Right - a.CupRadius }

// ContactDistance is the center distance below which two cups collide
func (a Arena) ContactDistance() float64 { return a.CupRadius*2 - constants.ContactSlack }

// Config fixes arena geometry and match policy for the lifetime of an engine
type Config struct {
	Arena Arena

	WinCondition       WinCondition
	ExtendedKinematics bool // Vertical pop and spin on knockout

	RoundTime     float64 // Term clock (seconds)
	ResultTime    float64 // Result window after a timeout (seconds)
	KnockoutDelay float64 // Flourish window after a knockout (seconds)
	MaxTerms      int

	Knockback         physics.CollisionProfile
	PushPower         float64
	ChargedPower      float64
	BaseSpill         float64
	CollisionCooldown float64
	ChargeThreshold   float64

	StartX    [2]float64
	ColorTags [2]string

	// Roster is the modifier set drawn from each term
	Roster []TypeModifier
	// Seed feeds the default RandomPicker
	Seed int64
}

// DefaultArena returns the standard table
func DefaultArena() Arena {
	return Arena{
		Left:      constants.ArenaLeft,
		Right:     constants.ArenaRight,
		CupRadius: constants.CupRadius,
		MaxWater:  constants.MaxWater,
	}
}

// DefaultConfig returns the tuned preset for a win condition
func DefaultConfig(win WinCondition) Config {
	cfg := Config{
		Arena:             DefaultArena(),
		WinCondition:      win,
		ResultTime:        constants.ResultTime,
		KnockoutDelay:     constants.KnockoutDelay,
		MaxTerms:          constants.MaxTerms,
		BaseSpill:         constants.BaseSpill,
		CollisionCooldown: constants.CollisionCooldown,
		ChargeThreshold:   constants.ChargeThreshold,
		StartX:            [2]float64{constants.StartXA, constants.StartXB},
		ColorTags:         [2]string{constants.ColorTagA, constants.ColorTagB},
		Roster:            append([]TypeModifier(nil), AllModifiers...),
		Seed:              1,
	}

	switch win {
	case ByBoundaryKnockout:
		cfg.ExtendedKinematics = true
		cfg.RoundTime = constants.KnockoutRoundTime
		cfg.Knockback = physics.CollisionProfile{
			Base:         constants.KnockoutBase,
			SpeedScaled:  true,
			SpeedDivisor: constants.KnockbackSpeedDivisor,
		}
		cfg.PushPower = constants.KnockoutPushPower
		cfg.ChargedPower = constants.KnockoutChargedPower
	default:
		cfg.RoundTime = constants.WaterRoundTime
		cfg.Knockback = physics.CollisionProfile{Base: constants.WaterKnockbackBase}
		cfg.PushPower = constants.WaterPushPower
		cfg.ChargedPower = constants.WaterChargedPower
	}

	return cfg
}

// Sentinel validation errors
var (
	ErrArenaTooNarrow = errors.New("arena too narrow for two cups")
	ErrInvalidTiming  = errors.New("round, result and knockout times must be positive")
	ErrInvalidTerms   = errors.New("match needs at least one term")
)

// Validate checks the configuration for values the engine cannot run with
func (c *Config) Validate() error {
	a := c.Arena
	if a.CupRadius <= 0 || a.MaxWater <= 0 {
		return fmt.Errorf("cup radius %g and max water %g must be positive", a.CupRadius, a.MaxWater)
	}
	if a.MaxX()-a.MinX() < a.ContactDistance() {
		return fmt.Errorf("%w: bounds [%g, %g], radius %g", ErrArenaTooNarrow, a.Left, a.Right, a.CupRadius)
	}
	if c.RoundTime <= 0 || c.ResultTime <= 0 || c.KnockoutDelay <= 0 {
		return ErrInvalidTiming
	}
	if c.MaxTerms < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidTerms, c.MaxTerms)
	}
	for i, x := range c.StartX {
		if x <= a.MinX() || x >= a.MaxX() {
			return fmt.Errorf("start position %d (%g) outside playable range (%g, %g)", i, x, a.MinX(), a.MaxX())
		}
	}
	if c.StartX[SideA] >= c.StartX[SideB] {
		return fmt.Errorf("side A must start left of side B: %g >= %g", c.StartX[SideA], c.StartX[SideB])
	}
	if c.PushPower < 0 || c.ChargedPower < 0 || c.BaseSpill < 0 || c.CollisionCooldown < 0 || c.ChargeThreshold < 0 {
		return fmt.Errorf("power, spill, cooldown and charge threshold must not be negative")
	}
	return nil
}
