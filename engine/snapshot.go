package engine

// Snapshot is a read-only copy of the match for presentation
type Snapshot struct {
	Phase             Phase
	WinCondition      WinCondition
	Arena             Arena
	TimeLeft          float64
	CurrentTerm       int
	MaxTerms          int
	TermWins          [2]int
	CollisionCooldown float64
	Contestants       [2]Contestant
	Outcome           Outcome
	Terms             []TermResult
}

// Snapshot copies the current match state
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Phase:             e.phase,
		WinCondition:      e.cfg.WinCondition,
		Arena:             e.cfg.Arena,
		TimeLeft:          e.timeLeft,
		CurrentTerm:       e.currentTerm,
		MaxTerms:          e.cfg.MaxTerms,
		TermWins:          e.termWins,
		CollisionCooldown: e.collisionCooldown,
		Contestants:       e.contestants,
		Outcome:           e.Outcome(),
		Terms:             e.Terms(),
	}
}

// Phase returns the current phase
func (e *Engine) Phase() Phase { return e.phase }

// TimeLeft returns the term clock, or the result countdown while in PhaseResult
func (e *Engine) TimeLeft() float64 { return e.timeLeft }

// CurrentTerm returns the 0-based term index
func (e *Engine) CurrentTerm() int { return e.currentTerm }

// TermWins returns the term tally of both sides
func (e *Engine) TermWins() [2]int { return e.termWins }

// Contestant returns a copy of one side's state
func (e *Engine) Contestant(side Side) Contestant {
	if !side.Valid() {
		return Contestant{}
	}
	return e.contestants[side]
}

// Config returns the engine configuration
func (e *Engine) Config() Config {
	cfg := e.cfg
	cfg.Roster = append([]TypeModifier(nil), e.cfg.Roster...)
	return cfg
}

// Terms returns a copy of the completed term history
func (e *Engine) Terms() []TermResult {
	if len(e.terms) == 0 {
		return nil
	}
	out := make([]TermResult, len(e.terms))
	copy(out, e.terms)
	return out
}

// Outcome returns the match result; pending until PhaseEnd
func (e *Engine) Outcome() Outcome {
	if e.phase != PhaseEnd {
		return OutcomePending
	}
	switch a, b := e.termWins[SideA], e.termWins[SideB]; {
	case a > b:
		return OutcomeWinA
	case b > a:
		return OutcomeWinB
	default:
		return OutcomeDraw
	}
}
