package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ramen-sumo/constants"
	"github.com/lixenwraith/ramen-sumo/engine"
)

// drawHeader draws title, policy, term, clock, score and the audio indicator
func (r *Renderer) drawHeader(lay Layout, v View) {
	s := v.Snapshot
	y := lay.HeaderY

	x := r.text(0, y, constants.TitleText, r.base.Reverse(true))
	x = r.text(x+1, y, s.WinCondition.String(), r.base.Foreground(RgbDim))

	term := s.CurrentTerm + 1
	if term > s.MaxTerms {
		term = s.MaxTerms
	}
	x = r.text(x+2, y, fmt.Sprintf("TERM %d/%d", term, s.MaxTerms), r.base)

	if s.Phase == engine.PhasePlay && !v.Waiting {
		clock := r.base.Foreground(RgbTimer)
		if s.TimeLeft < constants.LowTimeWarning {
			clock = r.base.Foreground(RgbTimerLow)
		}
		x = r.text(x+2, y, fmt.Sprintf("%5.1fs", s.TimeLeft), clock)
	}

	ca := r.cupColor(engine.SideA, s.Contestants[engine.SideA].ColorTag)
	cb := r.cupColor(engine.SideB, s.Contestants[engine.SideB].ColorTag)
	x = r.text(x+2, y, fmt.Sprintf("A %d", s.TermWins[engine.SideA]), r.base.Foreground(ca).Bold(true))
	x = r.text(x, y, " - ", r.base)
	r.text(x, y, fmt.Sprintf("%d B", s.TermWins[engine.SideB]), r.base.Foreground(cb).Bold(true))

	if v.HasAudio {
		bg := RgbUnmuted
		if v.Muted {
			bg = RgbMuted
		}
		r.text(lay.Width-runeLen(constants.AudioStr), y, constants.AudioStr, r.base.Foreground(tcell.ColorBlack).Background(bg))
	}
}

// drawGauges draws one water gauge row per side
func (r *Renderer) drawGauges(lay Layout, v View) {
	s := v.Snapshot
	for i, side := range engine.Sides {
		c := s.Contestants[side]
		y := lay.GaugeY + i
		color := r.cupColor(side, c.ColorTag)

		label := side.String()
		if v.CPU[side] {
			label += " " + constants.CPULabel
		}
		x := r.text(1, y, fmt.Sprintf("%-5s", label), r.base.Foreground(color).Bold(true))
		x = r.text(x, y, fmt.Sprintf("%-9s", c.Modifier), r.base.Foreground(RgbDim))
		x = r.gauge(x, y, c.Water, s.Arena.MaxWater)
		x = r.text(x+1, y, fmt.Sprintf("%5.1f", c.Water), r.base)

		switch {
		case c.FullyCharged:
			st := r.base.Foreground(RgbCharge).Bold(true)
			if math.Sin(c.BlinkPhase) > 0 {
				st = st.Reverse(true)
			}
			r.text(x+2, y, " CHARGED ", st)
		case c.Charging:
			r.text(x+2, y, fmt.Sprintf("charging %.1fs", c.ChargeElapsed), r.base.Foreground(RgbCharge))
		}
	}
}

// gauge draws a filled bar and returns the next column
func (r *Renderer) gauge(x, y int, value, full float64) int {
	filled := 0
	if full > 0 {
		filled = int(math.Round(value / full * constants.GaugeWidth))
	}
	filled = min(constants.GaugeWidth, max0(filled))

	x = r.text(x, y, "[", r.base)
	x = r.text(x, y, strings.Repeat("█", filled), r.base.Foreground(RgbWaterFull))
	x = r.text(x, y, strings.Repeat("░", constants.GaugeWidth-filled), r.base.Foreground(RgbWaterEmpty))
	return r.text(x, y, "]", r.base)
}

// drawFooter draws the controls help and the optional debug row
func (r *Renderer) drawFooter(lay Layout, v View) {
	r.text(0, lay.FooterY, constants.ControlsHelp, r.base.Foreground(RgbDim))
	if v.Debug != "" {
		r.text(0, lay.DebugY, v.Debug, r.base.Foreground(RgbDim).Italic(true))
	}
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
