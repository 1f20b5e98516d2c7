package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB palette
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbText       = tcell.NewRGBColor(192, 202, 245) // Default foreground
	RgbDim        = tcell.NewRGBColor(110, 115, 140) // Help and debug rows
	RgbTable      = tcell.NewRGBColor(160, 110, 60)  // Wooden table top
	RgbTableEdge  = tcell.NewRGBColor(220, 80, 60)   // Table edge markers
	RgbWaterFull  = tcell.NewRGBColor(80, 170, 255)  // Gauge fill
	RgbWaterEmpty = tcell.NewRGBColor(50, 55, 75)    // Gauge track
	RgbTimer      = tcell.NewRGBColor(255, 255, 255) // Term clock
	RgbTimerLow   = tcell.NewRGBColor(255, 80, 80)   // Term clock under the warning threshold
	RgbCharge     = tcell.NewRGBColor(255, 215, 0)   // Charge indicators
	RgbOverlayBg  = tcell.NewRGBColor(40, 42, 60)    // Result and end panels
	RgbWinner     = tcell.NewRGBColor(50, 255, 50)   // Winner text
	RgbMuted      = tcell.NewRGBColor(255, 60, 60)   // Mute indicator background
	RgbUnmuted    = tcell.NewRGBColor(60, 200, 60)   // Sound indicator background

	// Cup colors used when a color tag cannot be parsed
	RgbFallbackA = tcell.NewRGBColor(231, 76, 60)
	RgbFallbackB = tcell.NewRGBColor(39, 174, 96)
)

// ParseColorTag resolves a color tag such as "#e74c3c" or "red"
// Unparseable tags yield fallback
func ParseColorTag(tag string, fallback tcell.Color) tcell.Color {
	if tag == "" {
		return fallback
	}
	c := tcell.GetColor(tag)
	if c == tcell.ColorDefault {
		return fallback
	}
	return c
}
