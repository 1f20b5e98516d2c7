// Package config assembles game settings from an optional .env file and SUMO_* environment variables
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/lixenwraith/ramen-sumo/audio"
	"github.com/lixenwraith/ramen-sumo/engine"
)

// Environment keys
const (
	EnvWin          = "SUMO_WIN"
	EnvTerms        = "SUMO_TERMS"
	EnvRoundTime    = "SUMO_ROUND_TIME"
	EnvRoster       = "SUMO_ROSTER"
	EnvSeed         = "SUMO_SEED"
	EnvAudioEnabled = "SUMO_AUDIO_ENABLED"
	EnvMasterVolume = "SUMO_MASTER_VOLUME"
	EnvSampleRate   = "SUMO_SAMPLE_RATE"
	EnvSFXVolumes   = "SUMO_SFX_VOLUMES"
	EnvLogFile      = "SUMO_LOG_FILE"
	EnvLogLevel     = "SUMO_LOG_LEVEL"
	EnvCPU          = "SUMO_CPU"
)

// DefaultEnvFile is read when present
const DefaultEnvFile = ".env"

// DefaultLogFile is the game log path when SUMO_LOG_FILE is unset
const DefaultLogFile = "ramen-sumo.log"

var (
	// ErrInvalidValue wraps every malformed setting
	ErrInvalidValue = errors.New("invalid config value")
	// ErrEnvFile reports an unreadable .env file
	ErrEnvFile = errors.New("cannot read env file")
)

// Settings is everything the binaries need to start a match
type Settings struct {
	Match    engine.Config
	Audio    *audio.AudioConfig
	LogFile  string
	LogLevel string
	// CPU marks the sides driven by the bot
	CPU [2]bool
}

// Load resolves settings with precedence overrides > process env > env file > defaults
// A missing env file is not an error; overrides carry CLI flags keyed by the SUMO_* names
func Load(envFile string, overrides map[string]string) (*Settings, error) {
	fileVals := map[string]string{}
	if envFile != "" {
		vals, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			fileVals = vals
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("%w %s: %v", ErrEnvFile, envFile, err)
		}
	}

	l := &loader{overrides: overrides, file: fileVals}
	return l.settings()
}

// loader looks keys up across the three layers
type loader struct {
	overrides map[string]string
	file      map[string]string
}

func (l *loader) get(key string) (string, bool) {
	if v, ok := l.overrides[key]; ok {
		return strings.TrimSpace(v), true
	}
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return strings.TrimSpace(v), true
	}
	if v, ok := l.file[key]; ok && v != "" {
		return strings.TrimSpace(v), true
	}
	return "", false
}

func invalid(key, val string, err error) error {
	return fmt.Errorf("%w %s=%q: %v", ErrInvalidValue, key, val, err)
}

func (l *loader) settings() (*Settings, error) {
	win := engine.ByWaterAtTimeout
	if v, ok := l.get(EnvWin); ok {
		w, err := engine.ParseWinCondition(strings.ToLower(v))
		if err != nil {
			return nil, invalid(EnvWin, v, err)
		}
		win = w
	}

	s := &Settings{
		Match:    engine.DefaultConfig(win),
		Audio:    audio.DefaultAudioConfig(),
		LogFile:  DefaultLogFile,
		LogLevel: "info",
	}
	s.Match.Seed = time.Now().UnixNano()

	if err := l.match(&s.Match); err != nil {
		return nil, err
	}
	if err := s.Match.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	if err := l.audio(s.Audio); err != nil {
		return nil, err
	}

	if v, ok := l.get(EnvLogFile); ok {
		s.LogFile = v
	}
	if v, ok := l.get(EnvLogLevel); ok {
		s.LogLevel = v
	}
	if v, ok := l.get(EnvCPU); ok {
		cpu, err := ParseCPU(v)
		if err != nil {
			return nil, invalid(EnvCPU, v, err)
		}
		s.CPU = cpu
	}

	return s, nil
}

func (l *loader) match(cfg *engine.Config) error {
	if v, ok := l.get(EnvTerms); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return invalid(EnvTerms, v, err)
		}
		cfg.MaxTerms = n
	}
	if v, ok := l.get(EnvRoundTime); ok {
		secs, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return invalid(EnvRoundTime, v, err)
		}
		cfg.RoundTime = secs
	}
	if v, ok := l.get(EnvRoster); ok {
		roster, err := ParseRoster(v)
		if err != nil {
			return invalid(EnvRoster, v, err)
		}
		cfg.Roster = roster
	}
	if v, ok := l.get(EnvSeed); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return invalid(EnvSeed, v, err)
		}
		cfg.Seed = seed
	}
	return nil
}

func (l *loader) audio(cfg *audio.AudioConfig) error {
	if v, ok := l.get(EnvAudioEnabled); ok {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return invalid(EnvAudioEnabled, v, err)
		}
		cfg.Enabled = on
	}

	// Master volume is 0-100
	if v, ok := l.get(EnvMasterVolume); ok {
		pct, err := strconv.Atoi(v)
		if err != nil {
			return invalid(EnvMasterVolume, v, err)
		}
		cfg.SetMasterVolume(float64(pct) / 100.0)
	}

	if v, ok := l.get(EnvSampleRate); ok {
		rate, err := strconv.Atoi(v)
		if err != nil {
			return invalid(EnvSampleRate, v, err)
		}
		if rate <= 0 {
			return invalid(EnvSampleRate, v, audio.ErrInvalidSampleRate)
		}
		cfg.SampleRate = rate
	}

	// Effect volumes as JSON, e.g. {"splash":0.4,"knockout":1}
	if v, ok := l.get(EnvSFXVolumes); ok {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(v), &volumes); err != nil {
			return invalid(EnvSFXVolumes, v, err)
		}
		for name, vol := range volumes {
			st, ok := audio.ParseSoundType(name)
			if !ok {
				return invalid(EnvSFXVolumes, v, fmt.Errorf("unknown sound %q", name))
			}
			cfg.SetEffectVolume(st, vol)
		}
	}
	return nil
}

// ParseRoster reads a comma separated modifier list; duplicates weight the draw
func ParseRoster(s string) ([]engine.TypeModifier, error) {
	var roster []engine.TypeModifier
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		m, err := engine.ParseTypeModifier(part)
		if err != nil {
			return nil, err
		}
		roster = append(roster, m)
	}
	if len(roster) == 0 {
		return nil, errors.New("empty roster")
	}
	return roster, nil
}

// ParseCPU reads "none", "a", "b" or "both"
func ParseCPU(s string) ([2]bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "off":
		return [2]bool{}, nil
	case "a", "1", "left":
		return [2]bool{true, false}, nil
	case "b", "2", "right":
		return [2]bool{false, true}, nil
	case "both", "ab":
		return [2]bool{true, true}, nil
	default:
		return [2]bool{}, fmt.Errorf("unknown cpu side %q", s)
	}
}
