package game

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/ramen-sumo/audio"
	"github.com/lixenwraith/ramen-sumo/engine"
)

// onUpdate turns engine events into sounds, metrics and log entries
func (g *Game) onUpdate(u engine.Update) {
	ev := u.Events
	if ev == 0 {
		return
	}
	g.lastEvent.Store(ev.String())

	if ev.Has(engine.EventTermStart) {
		a := g.engine.Contestant(engine.SideA)
		b := g.engine.Contestant(engine.SideB)
		g.log.Info("term started",
			zap.Int("term", u.Term),
			zap.String("modifier_a", a.Modifier.String()),
			zap.String("modifier_b", b.Modifier.String()),
		)
	}

	if ev.Has(engine.EventPush) {
		g.pushes.Add(1)
		if ev.Has(engine.EventChargedPush) {
			g.chargedPushes.Add(1)
			g.player.Play(audio.SoundCharged)
			g.log.Debug("charged push", zap.String("side", u.Actor.String()))
		} else {
			g.player.Play(audio.SoundPush)
		}
	}

	if ev.Has(engine.EventFullyCharged) {
		g.log.Debug("fully charged", zap.Int("term", u.Term))
	}

	if ev.Has(engine.EventCollision) {
		g.collisions.Add(1)
		g.player.Play(audio.SoundSplash)
	}

	switch {
	case ev.Has(engine.EventKnockout):
		g.knockouts.Add(1)
		g.player.Play(audio.SoundKnockout)
	case ev.Has(engine.EventTermEnd):
		g.player.Play(audio.SoundTermEnd)
	}

	if ev.Has(engine.EventTermEnd) {
		g.termsPlayed.Add(1)
		if terms := g.engine.Terms(); len(terms) > 0 {
			tr := terms[len(terms)-1]
			g.log.Info("term ended",
				zap.Int("term", tr.Term),
				zap.String("winner", tr.Winner.String()),
				zap.String("reason", tr.Reason.String()),
				zap.Float64("water_a", tr.Water[engine.SideA]),
				zap.Float64("water_b", tr.Water[engine.SideB]),
			)
		}
	}

	if ev.Has(engine.EventMatchEnd) {
		g.player.Play(audio.SoundMatchEnd)
		wins := g.engine.TermWins()
		g.log.Info("match ended",
			zap.String("outcome", g.engine.Outcome().String()),
			zap.Int("wins_a", wins[engine.SideA]),
			zap.Int("wins_b", wins[engine.SideB]),
		)
	}
}
