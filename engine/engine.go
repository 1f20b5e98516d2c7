package engine

// Engine is the sumo match state machine
// Not safe for concurrent use; a single driver owns it and calls Step and the actions
type Engine struct {
	cfg      Config
	picker   ModifierPicker
	observer func(Update)

	phase             Phase
	timeLeft          float64
	currentTerm       int
	termWins          [2]int
	collisionCooldown float64
	contestants       [2]Contestant
	terms             []TermResult

	// Knockout flourish runs during the following result window
	flourish   bool
	knockedOut Side

	// Events raised by the operation in progress, flushed by notify
	pending Events
}

// Option configures an Engine
type Option func(*Engine)

// WithPicker injects the per-term modifier selection
func WithPicker(p ModifierPicker) Option {
	return func(e *Engine) {
		if p != nil {
			e.picker = p
		}
	}
}

// WithObserver installs the state change hook
func WithObserver(fn func(Update)) Option {
	return func(e *Engine) {
		e.observer = fn
	}
}

// New creates an engine with the first term ready to play
// cfg is expected to have passed Validate
func New(cfg Config, opts ...Option) *Engine {
	cfg.Roster = append([]TypeModifier(nil), cfg.Roster...)
	e := &Engine{cfg: cfg}
	for _, opt := range opts {
		opt(e)
	}
	if e.picker == nil {
		e.picker = NewRandomPicker(cfg.Seed)
	}
	e.reset()
	return e
}

// SetObserver replaces the state change hook, nil disables it
func (e *Engine) SetObserver(fn func(Update)) {
	e.observer = fn
}

// Start (re)initializes the whole match and notifies the observer
func (e *Engine) Start() {
	e.reset()
	e.pending |= EventTermStart
	e.notify(CauseStart, SideA)
}

// Restart discards the current match and starts a new one
func (e *Engine) Restart() {
	e.Start()
}

// reset replaces all match state with a fresh first term
func (e *Engine) reset() {
	e.currentTerm = 0
	e.termWins = [2]int{}
	e.terms = nil
	e.pending = 0
	e.beginTerm()
}

// beginTerm puts both cups back at their marks with full bowls and fresh modifiers
func (e *Engine) beginTerm() {
	for _, s := range Sides {
		mod := e.picker.Pick(s, e.cfg.Roster)
		e.contestants[s] = newContestant(e.cfg.StartX[s], e.cfg.Arena.MaxWater, e.cfg.ColorTags[s], mod)
	}
	e.phase = PhasePlay
	e.timeLeft = e.cfg.RoundTime
	e.collisionCooldown = 0
	e.flourish = false
}

// transition moves to a new phase if the state machine allows it
func (e *Engine) transition(to Phase) bool {
	if !CanTransition(e.phase, to) {
		return false
	}
	e.phase = to
	return true
}

// notify flushes pending events to the observer
func (e *Engine) notify(cause Cause, actor Side) {
	ev := e.pending
	e.pending = 0
	if e.observer == nil {
		return
	}
	e.observer(Update{
		Cause:  cause,
		Events: ev,
		Actor:  actor,
		Phase:  e.phase,
		Term:   e.currentTerm,
	})
}
