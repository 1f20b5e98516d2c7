package main

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/ramen-sumo/bot"
	"github.com/lixenwraith/ramen-sumo/constants"
	"github.com/lixenwraith/ramen-sumo/engine"
	"github.com/lixenwraith/ramen-sumo/trace"
)

// Result is the outcome of one headless match
type Result struct {
	Outcome   engine.Outcome
	TermWins  [2]int
	Terms     []engine.TermResult
	Frames    int
	Elapsed   float64
	Truncated bool
}

// Simulate plays bot against bot at a fixed step, optionally recording to tracePath
func Simulate(cfg engine.Config, id uuid.UUID, tracePath string, log *zap.Logger) (Result, error) {
	log = log.With(zap.String("match_id", id.String()))

	var events engine.Events
	e := engine.New(cfg, engine.WithObserver(func(u engine.Update) { events |= u.Events }))

	var rec *trace.Recorder
	if tracePath != "" {
		r, err := trace.Create(tracePath, trace.NewHeader(id, cfg))
		if err != nil {
			return Result{}, err
		}
		rec = r
	}

	bots := [2]*bot.Bot{
		bot.New(engine.SideA, bot.DefaultProfile(), cfg.Seed+1),
		bot.New(engine.SideB, bot.DefaultProfile(), cfg.Seed+2),
	}

	e.Start()
	log.Info("simulation started", zap.String("win", cfg.WinCondition.String()), zap.Int64("seed", cfg.Seed))

	const dt = constants.SimFrameStep
	frames := 0
	for ; frames < constants.SimMaxFrames && e.Phase() != engine.PhaseEnd; frames++ {
		events = 0
		for _, b := range bots {
			b.Tick(e, dt)
		}
		e.Step(dt)

		if events.Has(engine.EventTermEnd) {
			terms := e.Terms()
			tr := terms[len(terms)-1]
			log.Info("term ended",
				zap.Int("term", tr.Term),
				zap.String("winner", tr.Winner.String()),
				zap.String("reason", tr.Reason.String()),
				zap.Float64("water_a", tr.Water[engine.SideA]),
				zap.Float64("water_b", tr.Water[engine.SideB]),
			)
		}

		if rec != nil {
			if err := rec.WriteFrame(trace.FrameFrom(frames, float64(frames+1)*dt, e.Snapshot(), events)); err != nil {
				_ = rec.Close(trace.SummaryFrom(rec.Frames(), e.Snapshot()))
				return Result{}, err
			}
		}
	}

	snap := e.Snapshot()
	res := Result{
		Outcome:   snap.Outcome,
		TermWins:  snap.TermWins,
		Terms:     snap.Terms,
		Frames:    frames,
		Elapsed:   float64(frames) * dt,
		Truncated: snap.Phase != engine.PhaseEnd,
	}

	if rec != nil {
		if err := rec.Close(trace.SummaryFrom(rec.Frames(), snap)); err != nil {
			return res, err
		}
		log.Info("trace written", zap.String("path", tracePath), zap.Int("frames", rec.Frames()))
	}

	log.Info("simulation finished",
		zap.String("outcome", res.Outcome.String()),
		zap.Int("frames", res.Frames),
		zap.Bool("truncated", res.Truncated),
	)
	return res, nil
}

// summarize prints the header and summary of a recorded trace
func summarize(path string, w io.Writer) error {
	tr, err := trace.ReadFile(path)
	if err != nil {
		return err
	}
	h := tr.Header
	fmt.Fprintf(w, "match %s  win=%s  terms=%d  seed=%d  frames=%d\n", h.MatchID, h.WinCondition, h.MaxTerms, h.Seed, len(tr.Frames))
	if tr.Summary == nil {
		fmt.Fprintln(w, "no summary: trace was cut short")
		return nil
	}
	for _, t := range tr.Summary.Terms {
		fmt.Fprintf(w, "  term %d  %-7s %-8s  %5.1f / %5.1f\n", t.Term+1, t.Winner, t.Reason, t.Water[0], t.Water[1])
	}
	fmt.Fprintf(w, "%s  %d-%d\n", tr.Summary.Outcome, tr.Summary.TermWins[0], tr.Summary.TermWins[1])
	return nil
}
