package engine

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/lixenwraith/ramen-sumo/constants"
)

// TypeModifier is a per-contestant trait that scales push cost and spill damage
type TypeModifier int

const (
	ModifierNormal TypeModifier = iota
	ModifierSturdy
	ModifierSplashy
	ModifierBalanced
)

// AllModifiers is the full roster
var AllModifiers = []TypeModifier{ModifierNormal, ModifierSturdy, ModifierSplashy, ModifierBalanced}

// String returns the lowercase modifier name
func (m TypeModifier) String() string {
	switch m {
	case ModifierNormal:
		return "normal"
	case ModifierSturdy:
		return "sturdy"
	case ModifierSplashy:
		return "splashy"
	case ModifierBalanced:
		return "balanced"
	default:
		return fmt.Sprintf("modifier(%d)", int(m))
	}
}

// PushCost returns the water consumed by one push
func (m TypeModifier) PushCost() float64 {
	switch m {
	case ModifierSturdy:
		return constants.PushCostSturdy
	case ModifierSplashy:
		return constants.PushCostSplashy
	case ModifierBalanced:
		return constants.PushCostBalanced
	default:
		return constants.PushCostNormal
	}
}

// SpillMultiplier scales the water lost in a collision
func (m TypeModifier) SpillMultiplier() float64 {
	switch m {
	case ModifierSturdy:
		return constants.SpillSturdy
	case ModifierSplashy:
		return constants.SpillSplashy
	case ModifierBalanced:
		return constants.SpillBalanced
	default:
		return constants.SpillNormal
	}
}

// ParseTypeModifier resolves a modifier by name (case-insensitive)
func ParseTypeModifier(s string) (TypeModifier, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, m := range AllModifiers {
		if m.String() == name {
			return m, nil
		}
	}
	return ModifierNormal, fmt.Errorf("unknown type modifier %q", s)
}

// ModifierPicker draws the modifier of a contestant at the start of each term
type ModifierPicker interface {
	Pick(side Side, roster []TypeModifier) TypeModifier
}

// RandomPicker draws uniformly from the roster using a seeded source
type RandomPicker struct {
	rng *rand.Rand
}

// NewRandomPicker creates a picker with a deterministic seed
func NewRandomPicker(seed int64) *RandomPicker {
	return &RandomPicker{rng: rand.New(rand.NewSource(seed))}
}

// Pick returns a random roster entry, or ModifierNormal for an empty roster
func (p *RandomPicker) Pick(_ Side, roster []TypeModifier) TypeModifier {
	if len(roster) == 0 {
		return ModifierNormal
	}
	return roster[p.rng.Intn(len(roster))]
}

// FixedPicker assigns the same modifier to each side every term, ignoring the roster
type FixedPicker [2]TypeModifier

// Pick returns the fixed modifier for side
func (p FixedPicker) Pick(side Side, _ []TypeModifier) TypeModifier {
	if !side.Valid() {
		return ModifierNormal
	}
	return p[side]
}
