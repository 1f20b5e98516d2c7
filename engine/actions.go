package engine

import "github.com/lixenwraith/ramen-sumo/physics"

// Push shoves a cup toward its opponent
// charged applies the charged power only if the cup is fully charged; the charge is consumed either way
// Outside PhasePlay the call is ignored
func (e *Engine) Push(side Side, charged bool) {
	if e.phase != PhasePlay || !side.Valid() {
		return
	}

	c := &e.contestants[side]
	power := e.cfg.PushPower
	ev := EventPush
	if charged && c.FullyCharged {
		power = e.cfg.ChargedPower
		ev |= EventChargedPush
	}

	physics.ApplyImpulse(&c.Kinetic, side.Direction()*power)
	c.drain(c.Modifier.PushCost())
	c.clearCharge()

	e.pending |= ev
	e.notify(CauseAction, side)
}

// BeginCharge starts accumulating hold time
// Ignored outside PhasePlay or when already charging
func (e *Engine) BeginCharge(side Side) {
	if e.phase != PhasePlay || !side.Valid() {
		return
	}

	c := &e.contestants[side]
	if c.Charging {
		return
	}
	c.Charging = true
	c.ChargeElapsed = 0

	e.pending |= EventChargeStart
	e.notify(CauseAction, side)
}

// EndCharge releases a held charge as a push carrying the latched charged flag
// Ignored outside PhasePlay or when not charging
func (e *Engine) EndCharge(side Side) {
	if e.phase != PhasePlay || !side.Valid() {
		return
	}

	c := &e.contestants[side]
	if !c.Charging {
		return
	}
	c.Charging = false
	e.Push(side, c.FullyCharged)
}

// ToggleCharge begins a charge, or releases it if one is held
// Terminals report no key release, so drivers bind a single key to this
func (e *Engine) ToggleCharge(side Side) {
	if !side.Valid() {
		return
	}
	if e.contestants[side].Charging {
		e.EndCharge(side)
		return
	}
	e.BeginCharge(side)
}
