package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/ramen-sumo/audio"
	"github.com/lixenwraith/ramen-sumo/engine"
)

// clearEnv blanks every SUMO_* key for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		EnvWin, EnvTerms, EnvRoundTime, EnvRoster, EnvSeed, EnvAudioEnabled,
		EnvMasterVolume, EnvSampleRate, EnvSFXVolumes, EnvLogFile, EnvLogLevel, EnvCPU,
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	s, err := Load(filepath.Join(t.TempDir(), "missing.env"), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Match.WinCondition != engine.ByWaterAtTimeout {
		t.Errorf("win = %v, want water", s.Match.WinCondition)
	}
	if s.Match.MaxTerms != 3 {
		t.Errorf("terms = %d, want 3", s.Match.MaxTerms)
	}
	if s.LogFile != DefaultLogFile || s.LogLevel != "info" {
		t.Errorf("log settings = %q %q", s.LogFile, s.LogLevel)
	}
	if s.CPU != [2]bool{} {
		t.Errorf("cpu = %v, want none", s.CPU)
	}
	if !s.Audio.Enabled {
		t.Error("audio should default to enabled")
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvWin, "knockout")
	t.Setenv(EnvTerms, "5")
	t.Setenv(EnvRoundTime, "12.5")
	t.Setenv(EnvRoster, "sturdy, splashy")
	t.Setenv(EnvSeed, "42")
	t.Setenv(EnvAudioEnabled, "false")
	t.Setenv(EnvMasterVolume, "80")
	t.Setenv(EnvSFXVolumes, `{"splash":0.25}`)
	t.Setenv(EnvCPU, "b")

	s, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	m := s.Match
	if m.WinCondition != engine.ByBoundaryKnockout || !m.ExtendedKinematics {
		t.Errorf("expected knockout preset, got %v ext=%v", m.WinCondition, m.ExtendedKinematics)
	}
	if m.MaxTerms != 5 || m.RoundTime != 12.5 || m.Seed != 42 {
		t.Errorf("match overrides not applied: %+v", m)
	}
	if len(m.Roster) != 2 || m.Roster[0] != engine.ModifierSturdy || m.Roster[1] != engine.ModifierSplashy {
		t.Errorf("roster = %v", m.Roster)
	}
	if s.Audio.Enabled || s.Audio.MasterVolume != 0.8 {
		t.Errorf("audio = %+v", s.Audio)
	}
	if s.Audio.EffectVolumes[audio.SoundSplash] != 0.25 {
		t.Errorf("splash volume = %f", s.Audio.EffectVolumes[audio.SoundSplash])
	}
	if s.CPU != [2]bool{false, true} {
		t.Errorf("cpu = %v", s.CPU)
	}
}

func TestLoadPrecedence(t *testing.T) {
	clearEnv(t)

	envFile := filepath.Join(t.TempDir(), ".env")
	content := "SUMO_TERMS=7\nSUMO_LOG_LEVEL=debug\nSUMO_SEED=9\n"
	if err := os.WriteFile(envFile, []byte(content), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv(EnvTerms, "4")

	s, err := Load(envFile, map[string]string{EnvSeed: "100"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Match.MaxTerms != 4 {
		t.Errorf("process env should beat file: terms = %d", s.Match.MaxTerms)
	}
	if s.LogLevel != "debug" {
		t.Errorf("file value ignored: level = %q", s.LogLevel)
	}
	if s.Match.Seed != 100 {
		t.Errorf("override should beat file: seed = %d", s.Match.Seed)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		key, val string
	}{
		{EnvWin, "tickle"},
		{EnvTerms, "three"},
		{EnvTerms, "0"},
		{EnvRoundTime, "-1"},
		{EnvRoster, "spicy"},
		{EnvSeed, "x"},
		{EnvAudioEnabled, "maybe"},
		{EnvMasterVolume, "loud"},
		{EnvSampleRate, "0"},
		{EnvSFXVolumes, `{"gong":1}`},
		{EnvSFXVolumes, `not json`},
		{EnvCPU, "c"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.val, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)
			_, err := Load("", nil)
			if !errors.Is(err, ErrInvalidValue) {
				t.Errorf("expected ErrInvalidValue, got %v", err)
			}
		})
	}
}

func TestLoadUnreadableEnvFile(t *testing.T) {
	clearEnv(t)
	// A directory cannot be parsed as an env file
	_, err := Load(t.TempDir(), nil)
	if !errors.Is(err, ErrEnvFile) {
		t.Errorf("expected ErrEnvFile, got %v", err)
	}
}

func TestParseCPU(t *testing.T) {
	tests := map[string][2]bool{
		"none": {},
		"A":    {true, false},
		"b":    {false, true},
		"both": {true, true},
	}
	for in, want := range tests {
		got, err := ParseCPU(in)
		if err != nil || got != want {
			t.Errorf("ParseCPU(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
}
