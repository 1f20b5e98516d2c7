package render

import (
	"math"

	"github.com/lixenwraith/ramen-sumo/constants"
	"github.com/lixenwraith/ramen-sumo/engine"
)

// Smallest usable terminal
const (
	MinWidth  = constants.MinScreenWidth
	MinHeight = constants.MinScreenHeight
)

// Layout maps arena pixel space onto terminal cells
type Layout struct {
	Width, Height int
	Arena         engine.Arena

	// Table spans columns [TableLeft, TableRight] on row TableY
	TableLeft, TableRight int
	TableY                int

	HeaderY int
	GaugeY  int
	FooterY int
	DebugY  int
}

// NewLayout computes the layout for a screen size
func NewLayout(w, h int, arena engine.Arena) Layout {
	return Layout{
		Width:      w,
		Height:     h,
		Arena:      arena,
		TableLeft:  constants.ArenaMarginX,
		TableRight: w - 1 - constants.ArenaMarginX,
		TableY:     h/2 + 3,
		HeaderY:    0,
		GaugeY:     2,
		FooterY:    h - 1,
		DebugY:     h - 2,
	}
}

// Column maps an arena x coordinate to a screen column
func (l Layout) Column(x float64) int {
	span := l.Arena.Right - l.Arena.Left
	if span <= 0 {
		return l.TableLeft
	}
	frac := (x - l.Arena.Left) / span
	return l.TableLeft + int(math.Round(frac*float64(l.TableRight-l.TableLeft)))
}

// CupRow returns the row of a cup lifted y pixels; negative y is up
func (l Layout) CupRow(y float64) int {
	return l.TableY - 1 + int(math.Round(y/constants.PixelsPerRow))
}

// GlyphFor returns the cup glyph for a rotation angle in radians
func GlyphFor(angle float64) string {
	q := int(math.Round(angle/(math.Pi/2))) % 4
	if q < 0 {
		q += 4
	}
	return constants.CupGlyphs[q]
}
