package engine

import "strings"

// Events is a bitmask of what happened during one engine operation
type Events uint32

const (
	EventTermStart Events = 1 << iota
	EventPush
	EventChargedPush
	EventChargeStart
	EventFullyCharged
	EventCollision
	EventKnockout
	EventTermEnd
	EventMatchEnd
)

var eventNames = []struct {
	ev   Events
	name string
}{
	{EventTermStart, "term_start"},
	{EventPush, "push"},
	{EventChargedPush, "charged_push"},
	{EventChargeStart, "charge_start"},
	{EventFullyCharged, "fully_charged"},
	{EventCollision, "collision"},
	{EventKnockout, "knockout"},
	{EventTermEnd, "term_end"},
	{EventMatchEnd, "match_end"},
}

// Has reports whether all bits of ev are set
func (e Events) Has(ev Events) bool { return e&ev == ev }

// String joins the set event names with '|'
func (e Events) String() string {
	if e == 0 {
		return "none"
	}
	var parts []string
	for _, n := range eventNames {
		if e&n.ev != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// Cause identifies the operation that produced an Update
type Cause int

const (
	CauseStart Cause = iota
	CauseStep
	CauseAction
)

// String returns the cause name
func (c Cause) String() string {
	switch c {
	case CauseStart:
		return "start"
	case CauseStep:
		return "step"
	case CauseAction:
		return "action"
	default:
		return "unknown"
	}
}

// Update is delivered to the observer after every state change
type Update struct {
	Cause  Cause
	Events Events
	Actor  Side // Valid only for CauseAction
	Phase  Phase
	Term   int
}

// Outcome is the result of a term or a whole match
type Outcome int

const (
	OutcomePending Outcome = iota
	OutcomeWinA
	OutcomeWinB
	OutcomeDraw
)

// String returns a short description of the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeWinA:
		return "A wins"
	case OutcomeWinB:
		return "B wins"
	case OutcomeDraw:
		return "draw"
	default:
		return "pending"
	}
}

// outcomeFor maps a winning side to its outcome
func outcomeFor(s Side) Outcome {
	if s == SideA {
		return OutcomeWinA
	}
	return OutcomeWinB
}

// Reason tells how a term ended
type Reason int

const (
	ReasonTimeout Reason = iota
	ReasonKnockout
)

// String returns the reason name
func (r Reason) String() string {
	if r == ReasonKnockout {
		return "knockout"
	}
	return "timeout"
}

// TermResult records one completed term
type TermResult struct {
	Term   int
	Winner Outcome
	Reason Reason
	Water  [2]float64 // Water of both sides when the term ended
}
