package constants

// Knockout variant preset
const (
	KnockoutRoundTime    = 50.0
	KnockoutBase         = 220.0
	KnockoutPushPower    = 160.0
	KnockoutChargedPower = 240.0
)

// Water variant preset
const (
	WaterRoundTime     = 30.0
	WaterKnockbackBase = 160.0
	WaterPushPower     = 120.0
	WaterChargedPower  = 240.0
)

// Shared match lifecycle
const (
	// MaxTerms is the number of terms in a match
	MaxTerms = 3

	// ResultTime is the result window after a timed-out term (seconds)
	ResultTime = 10.0

	// KnockoutDelay is the flourish window after a knockout (seconds)
	KnockoutDelay = 0.8
)

// Push water cost per modifier
const (
	PushCostNormal   = 0.6
	PushCostSturdy   = 0.3
	PushCostSplashy  = 0.6
	PushCostBalanced = 0.45
)

// Spill multipliers per modifier
const (
	SpillNormal   = 1.0
	SpillSturdy   = 0.5
	SpillSplashy  = 1.5
	SpillBalanced = 1.0
)
