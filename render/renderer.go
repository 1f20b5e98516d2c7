package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ramen-sumo/engine"
)

// View is everything drawn in one frame
type View struct {
	Snapshot engine.Snapshot
	Waiting  bool // Before the first start
	Muted    bool
	HasAudio bool
	CPU      [2]bool
	Debug    string // Empty hides the debug row
}

// Renderer draws the match onto a tcell screen
type Renderer struct {
	screen tcell.Screen
	base   tcell.Style

	// Parsed cup colors keyed by tag
	colors map[string]tcell.Color
}

// NewRenderer creates a renderer for screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		base:   tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText),
		colors: make(map[string]tcell.Color),
	}
}

// Draw renders a full frame and shows it
func (r *Renderer) Draw(v View) {
	w, h := r.screen.Size()
	r.screen.SetStyle(r.base)
	r.screen.Clear()

	if w < MinWidth || h < MinHeight {
		r.centered(h/2, "terminal too small", r.base.Foreground(RgbTimerLow))
		r.screen.Show()
		return
	}

	lay := NewLayout(w, h, v.Snapshot.Arena)

	r.drawHeader(lay, v)
	r.drawGauges(lay, v)
	r.drawTable(lay)
	r.drawCups(lay, v.Snapshot)

	switch {
	case v.Waiting:
		r.drawStart(lay)
	case v.Snapshot.Phase == engine.PhaseResult:
		r.drawResult(lay, v.Snapshot)
	case v.Snapshot.Phase == engine.PhaseEnd:
		r.drawEnd(lay, v.Snapshot)
	}

	r.drawFooter(lay, v)
	r.screen.Show()
}

// cupColor returns the parsed color for a side's tag
func (r *Renderer) cupColor(side engine.Side, tag string) tcell.Color {
	if c, ok := r.colors[tag]; ok {
		return c
	}
	fallback := RgbFallbackA
	if side == engine.SideB {
		fallback = RgbFallbackB
	}
	c := ParseColorTag(tag, fallback)
	r.colors[tag] = c
	return c
}

// text writes s starting at (x, y), clipped to the screen, and returns the next column
func (r *Renderer) text(x, y int, s string, style tcell.Style) int {
	w, h := r.screen.Size()
	if y < 0 || y >= h {
		return x
	}
	for _, ch := range s {
		if x >= 0 && x < w {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
	return x
}

// centered writes s centered on row y
func (r *Renderer) centered(y int, s string, style tcell.Style) {
	w, _ := r.screen.Size()
	r.text((w-runeLen(s))/2, y, s, style)
}

// fill paints a rectangle with spaces
func (r *Renderer) fill(x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			r.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
