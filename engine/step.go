package engine

import (
	"github.com/lixenwraith/ramen-sumo/constants"
	"github.com/lixenwraith/ramen-sumo/physics"
)

// Step advances the simulation by dt seconds
// Non-positive or NaN dt is ignored; End never changes
func (e *Engine) Step(dt float64) {
	if !(dt > 0) {
		return
	}

	switch e.phase {
	case PhasePlay:
		e.stepPlay(dt)
	case PhaseResult:
		e.stepResult(dt)
	default:
		return
	}

	e.notify(CauseStep, SideA)
}

// stepPlay runs physics and rules for one frame
func (e *Engine) stepPlay(dt float64) {
	ext := e.cfg.ExtendedKinematics
	minX, maxX := e.cfg.Arena.MinX(), e.cfg.Arena.MaxX()

	for i := range e.contestants {
		c := &e.contestants[i]

		// === Movement ===
		physics.Integrate(&c.Kinetic, dt, ext)

		// === Friction, gravity ===
		physics.ApplyFriction(&c.Kinetic, dt, ext)
		if ext {
			physics.ApplyGravity(&c.Kinetic, dt)
			physics.Ground(&c.Kinetic)
		}

		// === Charge ===
		e.advanceCharge(c, dt)

		// === Edge limits ===
		physics.ClampX(&c.Kinetic, minX, maxX)
	}

	// === Collision ===
	if e.collide() {
		// Overlap resolution may push a cup past an edge
		for i := range e.contestants {
			physics.ClampX(&e.contestants[i].Kinetic, minX, maxX)
		}
	}

	// === Knockout ===
	if e.cfg.WinCondition == ByBoundaryKnockout && e.checkKnockout() {
		return
	}

	e.collisionCooldown -= dt
	if e.collisionCooldown < 0 {
		e.collisionCooldown = 0
	}

	e.timeLeft -= dt
	if e.timeLeft <= 0 {
		e.timeLeft = 0
		e.endTermByWater()
	}
}

// advanceCharge accumulates hold time and latches the full charge
func (e *Engine) advanceCharge(c *Contestant, dt float64) {
	if c.Charging {
		c.ChargeElapsed += dt
		if c.ChargeElapsed >= e.cfg.ChargeThreshold && !c.FullyCharged {
			c.FullyCharged = true
			e.pending |= EventFullyCharged
		}
	}
	if c.FullyCharged {
		c.BlinkPhase += dt * constants.BlinkRate
	}
}

// collide resolves cup contact, returns true if a collision fired this frame
func (e *Engine) collide() bool {
	if e.collisionCooldown > 0 {
		return false
	}

	a := &e.contestants[SideA]
	b := &e.contestants[SideB]

	overlap, touching := physics.Contact(a.X, b.X, e.cfg.Arena.ContactDistance())
	if !touching {
		return false
	}

	knock := e.cfg.Knockback.Knockback(a.VX, b.VX)
	left, right := physics.Order(&a.Kinetic, &b.Kinetic)
	physics.Separate(left, right, overlap, knock)

	for i := range e.contestants {
		c := &e.contestants[i]
		c.drain(e.cfg.BaseSpill * c.Modifier.SpillMultiplier())
	}

	e.collisionCooldown = e.cfg.CollisionCooldown
	e.pending |= EventCollision
	return true
}

// checkKnockout ends the term if a cup sits on a table edge, returns true on knockout
func (e *Engine) checkKnockout() bool {
	minX, maxX := e.cfg.Arena.MinX(), e.cfg.Arena.MaxX()

	for _, s := range Sides {
		c := &e.contestants[s]
		edge := physics.Boundary(c.X, minX, maxX)
		if edge == 0 {
			continue
		}

		// Pin exactly on the edge and send the loser flying outward
		if edge < 0 {
			c.X = minX
		} else {
			c.X = maxX
		}
		dir := float64(edge)
		c.VX = dir * constants.KnockoutVelocityX
		if e.cfg.ExtendedKinematics {
			c.VY = constants.KnockoutVelocityY
			c.AngularVel = dir * constants.KnockoutSpin
		}

		winner := s.Opponent()
		e.termWins[winner]++
		e.finishTerm(outcomeFor(winner), ReasonKnockout, e.cfg.KnockoutDelay)
		e.flourish = true
		e.knockedOut = s
		e.pending |= EventKnockout
		return true
	}
	return false
}

// endTermByWater awards the term to the fuller cup; equal water awards nobody
func (e *Engine) endTermByWater() {
	a := e.contestants[SideA].Water
	b := e.contestants[SideB].Water

	winner := OutcomeDraw
	switch {
	case a > b:
		e.termWins[SideA]++
		winner = OutcomeWinA
	case b > a:
		e.termWins[SideB]++
		winner = OutcomeWinB
	}
	e.finishTerm(winner, ReasonTimeout, e.cfg.ResultTime)
}

// finishTerm records the term and opens the result window
func (e *Engine) finishTerm(winner Outcome, reason Reason, window float64) {
	if !e.transition(PhaseResult) {
		return
	}
	e.terms = append(e.terms, TermResult{
		Term:   e.currentTerm,
		Winner: winner,
		Reason: reason,
		Water:  [2]float64{e.contestants[SideA].Water, e.contestants[SideB].Water},
	})
	for i := range e.contestants {
		e.contestants[i].Charging = false
	}
	e.timeLeft = window
	e.pending |= EventTermEnd
}

// stepResult counts the result window down and advances the match when it expires
func (e *Engine) stepResult(dt float64) {
	if e.flourish {
		e.stepFlourish(dt)
	}

	e.timeLeft -= dt
	if e.timeLeft > 0 {
		return
	}
	e.timeLeft = 0

	if e.currentTerm+1 >= e.cfg.MaxTerms {
		if e.transition(PhaseEnd) {
			e.flourish = false
			e.pending |= EventMatchEnd
		}
		return
	}

	if e.transition(PhasePlay) {
		e.currentTerm++
		e.beginTerm()
		e.pending |= EventTermStart
	}
}

// stepFlourish animates the knockout pop and spin; X stays pinned to the table
func (e *Engine) stepFlourish(dt float64) {
	ext := e.cfg.ExtendedKinematics
	minX, maxX := e.cfg.Arena.MinX(), e.cfg.Arena.MaxX()

	for _, s := range Sides {
		c := &e.contestants[s]
		physics.Integrate(&c.Kinetic, dt, ext)
		physics.ApplyFriction(&c.Kinetic, dt, ext)
		if ext {
			physics.ApplyGravity(&c.Kinetic, dt)
			if s != e.knockedOut {
				physics.Ground(&c.Kinetic)
			}
		}
		physics.ClampX(&c.Kinetic, minX, maxX)
	}
}
