package constants

// HUD text
const (
	TitleText    = " RAMEN SUMO "
	AudioStr     = " ♪ "
	StartPrompt  = "Press SPACE to start"
	RestartHint  = "SPACE restart   Q quit"
	ControlsHelp = "A: d push  a charge | B: j push  l charge | m mute | r restart | q quit"
	CPULabel     = "CPU"
)

// Layout
const (
	// GaugeWidth is the number of cells in a water gauge
	GaugeWidth = 20

	// ArenaMarginX is the blank columns kept on each side of the table
	ArenaMarginX = 4

	// PixelsPerRow maps vertical arena pixels to terminal rows for the knockout pop
	PixelsPerRow = 16.0

	// LowTimeWarning is the term clock value below which the timer turns red (seconds)
	LowTimeWarning = 5.0

	// MinScreenWidth and MinScreenHeight are the smallest usable terminal size
	MinScreenWidth  = 40
	MinScreenHeight = 14
)

// Cup glyphs by quarter turn; index 0 is upright
var CupGlyphs = [4]string{`\~/`, `<~|`, `/~\`, `|~>`}
