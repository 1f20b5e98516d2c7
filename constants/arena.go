package constants

// Arena geometry in pixel space
const (
	// ArenaLeft is the left table edge
	ArenaLeft = 80.0

	// ArenaRight is the right table edge
	ArenaRight = 560.0

	// CupRadius is the half-width of a ramen cup
	CupRadius = 28.0

	// MaxWater is the full soup level of a cup
	MaxWater = 100.0
)

// Starting positions and presentation tags
const (
	StartXA = 200.0
	StartXB = 440.0

	ColorTagA = "#e74c3c"
	ColorTagB = "#27ae60"
)
