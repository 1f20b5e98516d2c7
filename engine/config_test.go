package engine

import (
	"errors"
	"testing"
)

func TestDefaultConfigsValidate(t *testing.T) {
	for _, win := range []WinCondition{ByWaterAtTimeout, ByBoundaryKnockout} {
		cfg := DefaultConfig(win)
		if err := cfg.Validate(); err != nil {
			t.Errorf("%s preset invalid: %v", win, err)
		}
	}

	ko := DefaultConfig(ByBoundaryKnockout)
	if !ko.ExtendedKinematics || !ko.Knockback.SpeedScaled {
		t.Error("knockout preset should enable extended kinematics and speed-scaled knockback")
	}
	water := DefaultConfig(ByWaterAtTimeout)
	if water.ExtendedKinematics || water.Knockback.SpeedScaled {
		t.Error("water preset should use flat kinematics and fixed knockback")
	}
}

func TestConfigValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		target error
	}{
		{"narrow arena", func(c *Config) { c.Arena.Right = c.Arena.Left + 100 }, ErrArenaTooNarrow},
		{"zero round time", func(c *Config) { c.RoundTime = 0 }, ErrInvalidTiming},
		{"no terms", func(c *Config) { c.MaxTerms = 0 }, ErrInvalidTerms},
		{"start outside", func(c *Config) { c.StartX[SideA] = 10 }, nil},
		{"sides swapped", func(c *Config) { c.StartX = [2]float64{440, 200} }, nil},
		{"negative spill", func(c *Config) { c.BaseSpill = -1 }, nil},
		{"zero radius", func(c *Config) { c.Arena.CupRadius = 0 }, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig(ByWaterAtTimeout)
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if tc.target != nil && !errors.Is(err, tc.target) {
				t.Errorf("error %v does not wrap %v", err, tc.target)
			}
		})
	}
}

func TestParseWinCondition(t *testing.T) {
	for in, want := range map[string]WinCondition{
		"water":    ByWaterAtTimeout,
		"timeout":  ByWaterAtTimeout,
		"knockout": ByBoundaryKnockout,
		"ko":       ByBoundaryKnockout,
	} {
		got, err := ParseWinCondition(in)
		if err != nil || got != want {
			t.Errorf("ParseWinCondition(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseWinCondition("sudden-death"); err == nil {
		t.Error("expected error for unknown win condition")
	}
}

func TestParseTypeModifier(t *testing.T) {
	for _, m := range AllModifiers {
		got, err := ParseTypeModifier(" " + m.String() + " ")
		if err != nil || got != m {
			t.Errorf("round trip %s: got %v, %v", m, got, err)
		}
	}
	if got, err := ParseTypeModifier("STURDY"); err != nil || got != ModifierSturdy {
		t.Errorf("case-insensitive parse: got %v, %v", got, err)
	}
	if _, err := ParseTypeModifier("spicy"); err == nil {
		t.Error("expected error for unknown modifier")
	}
}

func TestRandomPickerDeterministic(t *testing.T) {
	p1 := NewRandomPicker(99)
	p2 := NewRandomPicker(99)
	for i := 0; i < 50; i++ {
		a := p1.Pick(SideA, AllModifiers)
		b := p2.Pick(SideA, AllModifiers)
		if a != b {
			t.Fatalf("draw %d differs: %s vs %s", i, a, b)
		}
	}
	if got := p1.Pick(SideB, nil); got != ModifierNormal {
		t.Errorf("empty roster pick = %s, want normal", got)
	}
}

func TestModifiersDrawnEachTerm(t *testing.T) {
	cfg := DefaultConfig(ByWaterAtTimeout)
	cfg.Roster = []TypeModifier{ModifierSplashy}
	e := New(cfg)
	for _, s := range Sides {
		if got := e.Contestant(s).Modifier; got != ModifierSplashy {
			t.Errorf("side %s modifier = %s, want splashy", s, got)
		}
	}

	fixed := New(cfg, WithPicker(FixedPicker{ModifierSturdy, ModifierBalanced}))
	if fixed.Contestant(SideA).Modifier != ModifierSturdy || fixed.Contestant(SideB).Modifier != ModifierBalanced {
		t.Errorf("fixed picker ignored: %s/%s", fixed.Contestant(SideA).Modifier, fixed.Contestant(SideB).Modifier)
	}
}

func TestPhaseTransitions(t *testing.T) {
	valid := map[Phase][]Phase{
		PhasePlay:   {PhaseResult},
		PhaseResult: {PhasePlay, PhaseEnd},
	}
	for from, tos := range valid {
		for _, to := range tos {
			if !CanTransition(from, to) {
				t.Errorf("expected %s -> %s to be valid", from, to)
			}
		}
	}

	invalid := [][2]Phase{
		{PhasePlay, PhaseEnd},
		{PhasePlay, PhasePlay},
		{PhaseEnd, PhasePlay},
		{PhaseEnd, PhaseResult},
		{PhaseResult, PhaseResult},
	}
	for _, tr := range invalid {
		if CanTransition(tr[0], tr[1]) {
			t.Errorf("expected %s -> %s to be rejected", tr[0], tr[1])
		}
	}
}
