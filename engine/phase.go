package engine

// Phase is the match state machine phase
type Phase int

const (
	// PhasePlay runs physics and accepts input
	PhasePlay Phase = iota
	// PhaseResult shows a finished term; only the flourish and the result countdown advance
	PhaseResult
	// PhaseEnd is terminal
	PhaseEnd
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhasePlay:
		return "Play"
	case PhaseResult:
		return "Result"
	case PhaseEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// validTransitions lists the phases reachable from each phase
var validTransitions = map[Phase][]Phase{
	PhasePlay:   {PhaseResult},
	PhaseResult: {PhasePlay, PhaseEnd},
	PhaseEnd:    {},
}

// CanTransition reports whether from -> to is a legal phase change
// Restart is not a transition; it replaces the match wholesale
func CanTransition(from, to Phase) bool {
	for _, p := range validTransitions[from] {
		if p == to {
			return true
		}
	}
	return false
}
