package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"

	"github.com/lixenwraith/ramen-sumo/config"
	"github.com/lixenwraith/ramen-sumo/logger"
)

var (
	envFileFlag = flag.String("env", config.DefaultEnvFile, "Path to an optional .env file")
	winFlag     = flag.String("win", "", "Win condition: water, knockout")
	termsFlag   = flag.Int("terms", 0, "Terms per match")
	seedFlag    = flag.Int64("seed", 0, "Seed for modifier draws and bots")
	traceFlag   = flag.String("trace", "", "Write a msgpack frame trace to this file")
	readFlag    = flag.String("read", "", "Print the summary of an existing trace and exit")
	levelFlag   = flag.String("log-level", "", "Log level: debug, info, warn, error")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "sumo-sim: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *readFlag != "" {
		return summarize(*readFlag, os.Stdout)
	}

	o := make(map[string]string)
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "win":
			o[config.EnvWin] = *winFlag
		case "terms":
			o[config.EnvTerms] = strconv.Itoa(*termsFlag)
		case "seed":
			o[config.EnvSeed] = strconv.FormatInt(*seedFlag, 10)
		case "log-level":
			o[config.EnvLogLevel] = *levelFlag
		}
	})

	settings, err := config.Load(*envFileFlag, o)
	if err != nil {
		return err
	}

	log, err := logger.NewConsole(settings.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	res, err := Simulate(settings.Match, uuid.New(), *traceFlag, log)
	if err != nil {
		return err
	}

	fmt.Printf("%s  %d-%d  (%d frames, %.1fs simulated)\n",
		res.Outcome, res.TermWins[0], res.TermWins[1], res.Frames, res.Elapsed)
	if res.Truncated {
		return errors.New("match did not finish within the frame limit")
	}
	return nil
}
