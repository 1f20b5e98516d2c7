// Package game runs a match in a terminal: input mapping, frame loop, sound and metrics
package game

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/ramen-sumo/audio"
	"github.com/lixenwraith/ramen-sumo/bot"
	"github.com/lixenwraith/ramen-sumo/constants"
	"github.com/lixenwraith/ramen-sumo/core"
	"github.com/lixenwraith/ramen-sumo/engine"
	"github.com/lixenwraith/ramen-sumo/render"
	"github.com/lixenwraith/ramen-sumo/status"
)

// muter is implemented by players that can be silenced at runtime
type muter interface {
	ToggleMute() bool
	Muted() bool
}

// Game owns the engine and everything around it
// All methods run on the Run goroutine
type Game struct {
	screen   tcell.Screen
	engine   *engine.Engine
	renderer *render.Renderer
	player   audio.Player
	baseLog  *zap.Logger
	log      *zap.Logger
	metrics  *status.Registry
	bots     [2]*bot.Bot
	debug    bool

	matchID uuid.UUID
	waiting bool

	// Cached metric handles
	frames        *atomic.Int64
	pushes        *atomic.Int64
	chargedPushes *atomic.Int64
	collisions    *atomic.Int64
	knockouts     *atomic.Int64
	termsPlayed   *atomic.Int64
	frameDelta    *status.AtomicFloat
	matchIDMetric *status.AtomicString
	lastEvent     *status.AtomicString
}

// Option configures a Game
type Option func(*Game)

// WithPlayer routes sound cues to p
func WithPlayer(p audio.Player) Option {
	return func(g *Game) {
		if p != nil {
			g.player = p
		}
	}
}

// WithLogger sets the structured logger
func WithLogger(l *zap.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.baseLog = l
		}
	}
}

// WithCPU hands the marked sides to bots seeded from seed
func WithCPU(cpu [2]bool, seed int64) Option {
	return func(g *Game) {
		for _, s := range engine.Sides {
			if cpu[s] {
				g.bots[s] = bot.New(s, bot.DefaultProfile(), seed+int64(s)+1)
			}
		}
	}
}

// WithDebug shows the metrics row
func WithDebug(on bool) Option {
	return func(g *Game) { g.debug = on }
}

// WithMetrics shares a registry with the caller
func WithMetrics(r *status.Registry) Option {
	return func(g *Game) {
		if r != nil {
			g.metrics = r
		}
	}
}

// nopPlayer discards sounds
type nopPlayer struct{}

func (nopPlayer) Play(audio.SoundType) {}

// New creates a game waiting for the start key
// engineOpts are passed through to engine.New
func New(screen tcell.Screen, cfg engine.Config, opts []Option, engineOpts ...engine.Option) *Game {
	g := &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		player:   nopPlayer{},
		baseLog:  zap.NewNop(),
		metrics:  status.NewRegistry(),
		waiting:  true,
	}
	for _, opt := range opts {
		opt(g)
	}

	g.frames = g.metrics.Ints.Get(status.KeyFrames)
	g.pushes = g.metrics.Ints.Get(status.KeyPushes)
	g.chargedPushes = g.metrics.Ints.Get(status.KeyChargedPushes)
	g.collisions = g.metrics.Ints.Get(status.KeyCollisions)
	g.knockouts = g.metrics.Ints.Get(status.KeyKnockouts)
	g.termsPlayed = g.metrics.Ints.Get(status.KeyTermsPlayed)
	g.frameDelta = g.metrics.Floats.Get(status.KeyFrameDelta)
	g.matchIDMetric = g.metrics.Strings.Get(status.KeyMatchID)
	g.lastEvent = g.metrics.Strings.Get(status.KeyLastEvent)

	g.log = g.baseLog
	g.engine = engine.New(cfg, append(engineOpts, engine.WithObserver(g.onUpdate))...)
	return g
}

// Engine exposes the match for inspection
func (g *Game) Engine() *engine.Engine { return g.engine }

// MatchID returns the id of the running match, zero before the first start
func (g *Game) MatchID() uuid.UUID { return g.matchID }

// Waiting reports whether the start screen is shown
func (g *Game) Waiting() bool { return g.waiting }

// Run drives the frame loop until quit or ctx cancellation
func (g *Game) Run(ctx context.Context) error {
	events := make(chan tcell.Event, constants.EventBufferSize)
	done := make(chan struct{})
	defer close(done)

	core.Go(func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	g.Draw()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			if !g.HandleEvent(ev) {
				g.log.Info("quit requested")
				return nil
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			g.Update(min(dt, constants.MaxFrameStep))
			g.Draw()
		}
	}
}

// Update advances bots and the engine by dt seconds
func (g *Game) Update(dt float64) {
	if g.waiting {
		return
	}
	g.frames.Add(1)
	g.frameDelta.Set(dt)

	for _, b := range g.bots {
		if b != nil {
			b.Tick(g.engine, dt)
		}
	}
	g.engine.Step(dt)
}

// Draw renders the current frame
func (g *Game) Draw() {
	v := render.View{
		Snapshot: g.engine.Snapshot(),
		Waiting:  g.waiting,
	}
	for _, s := range engine.Sides {
		v.CPU[s] = g.bots[s] != nil
	}
	if m, ok := g.player.(muter); ok {
		v.HasAudio = true
		v.Muted = m.Muted()
	}
	if g.debug {
		v.Debug = g.metrics.Line()
	}
	g.renderer.Draw(v)
}

// start begins a fresh match under a new id
func (g *Game) start() {
	g.matchID = uuid.New()
	g.metrics.ResetMatch()
	g.matchIDMetric.Store(g.matchID.String())
	g.log = g.baseLog.With(zap.String("match_id", g.matchID.String()))
	g.waiting = false

	cfg := g.engine.Config()
	g.log.Info("match started",
		zap.String("win", cfg.WinCondition.String()),
		zap.Int("max_terms", cfg.MaxTerms),
		zap.Float64("round_time", cfg.RoundTime),
		zap.Bool("cpu_a", g.bots[engine.SideA] != nil),
		zap.Bool("cpu_b", g.bots[engine.SideB] != nil),
	)
	g.engine.Restart()
}
