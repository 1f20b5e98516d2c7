package render

import (
	"fmt"

	"github.com/lixenwraith/ramen-sumo/constants"
	"github.com/lixenwraith/ramen-sumo/engine"
)

// drawStart draws the title prompt shown before the first match
func (r *Renderer) drawStart(lay Layout) {
	y := lay.TableY - 6
	st := r.base.Background(RgbOverlayBg)
	r.panel(y, 3)
	r.centered(y+1, constants.StartPrompt, st.Bold(true))
}

// drawResult announces the finished term and the countdown to the next one
func (r *Renderer) drawResult(lay Layout, s engine.Snapshot) {
	if len(s.Terms) == 0 {
		return
	}
	last := s.Terms[len(s.Terms)-1]

	y := lay.TableY - 7
	st := r.base.Background(RgbOverlayBg)
	r.panel(y, 4)

	r.centered(y+1, termHeadline(last), st.Foreground(RgbWinner).Bold(true))
	next := "match ends"
	if last.Term+1 < s.MaxTerms {
		next = "next term"
	}
	r.centered(y+2, fmt.Sprintf("%s in %.1fs", next, s.TimeLeft), st)
}

// drawEnd shows the match outcome and the term history
func (r *Renderer) drawEnd(lay Layout, s engine.Snapshot) {
	rows := len(s.Terms) + 4
	y := max(lay.GaugeY+3, lay.TableY-2-rows)
	st := r.base.Background(RgbOverlayBg)
	r.panel(y, rows)

	head := fmt.Sprintf("MATCH OVER: %s  (%d-%d)", s.Outcome, s.TermWins[engine.SideA], s.TermWins[engine.SideB])
	r.centered(y+1, head, st.Foreground(RgbWinner).Bold(true))

	for i, tr := range s.Terms {
		line := fmt.Sprintf("Term %d  %-7s %-8s  %5.1f / %5.1f", tr.Term+1, tr.Winner, tr.Reason, tr.Water[engine.SideA], tr.Water[engine.SideB])
		r.centered(y+2+i, line, st)
	}
	r.centered(y+rows-1, constants.RestartHint, st.Foreground(RgbDim))
}

// panel fills a full-width band of rows
func (r *Renderer) panel(y, rows int) {
	r.fill(2, y, max(0, r.width()-4), rows, r.base.Background(RgbOverlayBg))
}

func (r *Renderer) width() int {
	w, _ := r.screen.Size()
	return w
}

// termHeadline describes a finished term
func termHeadline(tr engine.TermResult) string {
	switch tr.Winner {
	case engine.OutcomeWinA, engine.OutcomeWinB:
		return fmt.Sprintf("TERM %d: %s BY %s", tr.Term+1, tr.Winner, tr.Reason)
	default:
		return fmt.Sprintf("TERM %d: NO WINNER (%s)", tr.Term+1, tr.Reason)
	}
}
