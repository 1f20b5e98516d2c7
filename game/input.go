package game

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/ramen-sumo/constants"
	"github.com/lixenwraith/ramen-sumo/engine"
)

// HandleEvent applies one terminal event, returns false to quit
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.handleKey(ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

func (g *Game) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	switch r := unicode.ToLower(ev.Rune()); r {
	case constants.KeyQuit:
		return false

	case constants.KeyStart:
		if g.waiting || g.engine.Phase() == engine.PhaseEnd {
			g.start()
		}

	case constants.KeyRestart:
		g.start()

	case constants.KeyMute:
		if m, ok := g.player.(muter); ok {
			g.log.Debug("mute toggled", zap.Bool("muted", m.ToggleMute()))
		}

	case constants.KeyPushA:
		g.human(engine.SideA, func(s engine.Side) { g.engine.Push(s, false) })
	case constants.KeyChargeA:
		g.human(engine.SideA, g.engine.ToggleCharge)
	case constants.KeyPushB:
		g.human(engine.SideB, func(s engine.Side) { g.engine.Push(s, false) })
	case constants.KeyChargeB:
		g.human(engine.SideB, g.engine.ToggleCharge)
	}
	return true
}

// human runs an action for side unless a bot controls it or the match has not started
func (g *Game) human(side engine.Side, action func(engine.Side)) {
	if g.waiting || g.bots[side] != nil {
		return
	}
	action(side)
}
