package render

import (
	"math"

	"github.com/lixenwraith/ramen-sumo/engine"
)

// drawTable draws the table top with its edges
func (r *Renderer) drawTable(lay Layout) {
	st := r.base.Foreground(RgbTable)
	for x := lay.TableLeft; x <= lay.TableRight; x++ {
		r.screen.SetContent(x, lay.TableY, '═', nil, st)
	}
	edge := r.base.Foreground(RgbTableEdge)
	r.screen.SetContent(lay.TableLeft, lay.TableY, '╞', nil, edge)
	r.screen.SetContent(lay.TableRight, lay.TableY, '╡', nil, edge)
}

// drawCups draws both cups, lifted and rotated during the knockout flourish
func (r *Renderer) drawCups(lay Layout, s engine.Snapshot) {
	for _, side := range engine.Sides {
		c := s.Contestants[side]
		st := r.base.Foreground(r.cupColor(side, c.ColorTag)).Bold(true)
		if c.FullyCharged && math.Sin(c.BlinkPhase) > 0 {
			st = st.Reverse(true)
		}
		if c.Water <= 0 {
			st = st.Dim(true)
		}

		glyph := GlyphFor(c.Angle)
		col := lay.Column(c.X) - 1
		row := lay.CupRow(c.Y)
		if row < lay.GaugeY+3 {
			continue
		}
		r.text(col, row, glyph, st)
	}
}
