package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/lixenwraith/ramen-sumo/audio"
	"github.com/lixenwraith/ramen-sumo/config"
	"github.com/lixenwraith/ramen-sumo/core"
	"github.com/lixenwraith/ramen-sumo/game"
	"github.com/lixenwraith/ramen-sumo/logger"
)

var (
	envFileFlag = flag.String("env", config.DefaultEnvFile, "Path to an optional .env file")
	winFlag     = flag.String("win", "", "Win condition: water, knockout")
	termsFlag   = flag.Int("terms", 0, "Terms per match")
	cpuFlag     = flag.String("cpu", "", "CPU controlled side: none, a, b, both")
	seedFlag    = flag.Int64("seed", 0, "Seed for modifier draws and bots")
	muteFlag    = flag.Bool("mute", false, "Disable audio")
	debugFlag   = flag.Bool("debug", false, "Show the metrics row and log at debug level")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ramen-sumo: %v\n", err)
		os.Exit(1)
	}
}

// overrides maps explicitly set flags onto their SUMO_* keys
func overrides() map[string]string {
	o := make(map[string]string)
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "win":
			o[config.EnvWin] = *winFlag
		case "terms":
			o[config.EnvTerms] = strconv.Itoa(*termsFlag)
		case "cpu":
			o[config.EnvCPU] = *cpuFlag
		case "seed":
			o[config.EnvSeed] = strconv.FormatInt(*seedFlag, 10)
		case "mute":
			o[config.EnvAudioEnabled] = strconv.FormatBool(!*muteFlag)
		case "debug":
			if *debugFlag {
				o[config.EnvLogLevel] = "debug"
			}
		}
	})
	return o
}

func run() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdin and stdout must be a terminal; use sumo-sim for headless runs")
	}

	settings, err := config.Load(*envFileFlag, overrides())
	if err != nil {
		return err
	}

	log, err := logger.NewFile(settings.LogFile, settings.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	sm := audio.NewSoundManager(settings.Audio)
	if err := sm.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		log.Warn("audio initialization failed, continuing without audio", zap.Error(err))
	}
	defer sm.Cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashScreen(screen)
	defer screen.Fini()

	// Panic recovery: restore the terminal even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g := game.New(screen, settings.Match, []game.Option{
		game.WithPlayer(sm),
		game.WithLogger(log),
		game.WithCPU(settings.CPU, settings.Match.Seed),
		game.WithDebug(*debugFlag),
	})

	log.Info("ramen-sumo started",
		zap.String("win", settings.Match.WinCondition.String()),
		zap.Int64("seed", settings.Match.Seed),
	)

	if err := g.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
