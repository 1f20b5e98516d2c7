// Package bot drives one side of a match with a simple deterministic policy
package bot

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/ramen-sumo/constants"
	"github.com/lixenwraith/ramen-sumo/engine"
)

// Match is the subset of the engine a bot reads and drives
type Match interface {
	Phase() engine.Phase
	Config() engine.Config
	Contestant(engine.Side) engine.Contestant
	Push(engine.Side, bool)
	BeginCharge(engine.Side)
	EndCharge(engine.Side)
}

// Profile tunes the bot
type Profile struct {
	PushInterval float64
	Jitter       float64
	ChargeRange  float64
	StrikeRange  float64
	PanicMargin  float64
	WaterReserve float64
}

// DefaultProfile returns the standard CPU tuning
func DefaultProfile() Profile {
	return Profile{
		PushInterval: constants.BotPushInterval,
		Jitter:       constants.BotJitter,
		ChargeRange:  constants.BotChargeRange,
		StrikeRange:  constants.BotStrikeRange,
		PanicMargin:  constants.BotPanicMargin,
		WaterReserve: constants.BotWaterReserve,
	}
}

// Bot controls a single side; the same seed replays the same decisions
type Bot struct {
	side    engine.Side
	profile Profile
	rng     *rand.Rand
	wait    float64
}

// New creates a bot for side
func New(side engine.Side, profile Profile, seed int64) *Bot {
	return &Bot{
		side:    side,
		profile: profile,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Side returns the controlled side
func (b *Bot) Side() engine.Side { return b.side }

// Tick advances the bot by dt and issues at most one action
func (b *Bot) Tick(m Match, dt float64) {
	if m.Phase() != engine.PhasePlay {
		b.wait = 0
		return
	}

	arena := m.Config().Arena
	me := m.Contestant(b.side)
	opp := m.Contestant(b.side.Opponent())
	gap := math.Abs(opp.X - me.X)

	if me.Charging {
		// Hold a full charge until close, bail out early if the opponent closes in first
		if (me.FullyCharged && gap <= b.profile.StrikeRange) || (!me.FullyCharged && gap <= b.profile.StrikeRange/2) {
			m.EndCharge(b.side)
			b.wait = b.interval()
		}
		return
	}

	rate := 1.0
	if b.cornered(arena, me) {
		rate = 2.0
	}
	b.wait -= dt * rate
	if b.wait > 0 {
		return
	}
	b.wait = b.interval()

	switch {
	case gap > b.profile.ChargeRange:
		m.BeginCharge(b.side)
	case me.Water > b.profile.WaterReserve || gap <= arena.ContactDistance()*1.5:
		m.Push(b.side, false)
	}
}

// cornered reports whether the cup sits near the edge behind it
func (b *Bot) cornered(a engine.Arena, c engine.Contestant) bool {
	if b.side == engine.SideA {
		return c.X-a.MinX() < b.profile.PanicMargin
	}
	return a.MaxX()-c.X < b.profile.PanicMargin
}

// interval draws the next push delay
func (b *Bot) interval() float64 {
	j := b.profile.Jitter * (b.rng.Float64()*2 - 1)
	return b.profile.PushInterval * (1 + j)
}
