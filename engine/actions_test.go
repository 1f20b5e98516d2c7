package engine

import (
	"math"
	"testing"
)

// chargeFully holds a charge on side for the full threshold
func chargeFully(t *testing.T, e *Engine, side Side) {
	t.Helper()
	e.BeginCharge(side)
	for i := 0; i < 6; i++ {
		e.Step(0.5)
	}
	c := e.Contestant(side)
	if c.ChargeElapsed < e.Config().ChargeThreshold {
		t.Fatalf("charge elapsed = %f, want >= %f", c.ChargeElapsed, e.Config().ChargeThreshold)
	}
	if !c.FullyCharged {
		t.Fatal("expected FullyCharged after holding past the threshold")
	}
}

// TestChargedPushAppliesOnce verifies the charged impulse is consumed by a single push
func TestChargedPushAppliesOnce(t *testing.T) {
	e := newTestEngine(ByWaterAtTimeout)
	cfg := e.Config()
	chargeFully(t, e, SideA)

	var events Events
	e.SetObserver(func(u Update) { events |= u.Events })

	e.contestants[SideA].VX = 0
	e.Push(SideA, true)
	a := e.Contestant(SideA)
	if a.VX != cfg.ChargedPower {
		t.Fatalf("VX after charged push = %f, want %f", a.VX, cfg.ChargedPower)
	}
	if a.FullyCharged || a.ChargeElapsed != 0 || a.BlinkPhase != 0 {
		t.Errorf("charge not consumed: full=%v elapsed=%f blink=%f", a.FullyCharged, a.ChargeElapsed, a.BlinkPhase)
	}
	if !events.Has(EventPush | EventChargedPush) {
		t.Errorf("events = %s, want push and charged_push", events)
	}

	// Second charged request falls back to base power
	events = 0
	e.Push(SideA, true)
	if got := e.Contestant(SideA).VX; got != cfg.ChargedPower+cfg.PushPower {
		t.Errorf("VX after second push = %f, want %f", got, cfg.ChargedPower+cfg.PushPower)
	}
	if events.Has(EventChargedPush) {
		t.Error("second push should not be charged")
	}
}

// TestUnchargedRequestClearsPartialCharge verifies a push resets accumulated hold time
func TestUnchargedRequestClearsPartialCharge(t *testing.T) {
	e := newTestEngine(ByWaterAtTimeout)
	cfg := e.Config()

	e.BeginCharge(SideB)
	e.Step(1.0)
	if e.Contestant(SideB).ChargeElapsed != 1.0 {
		t.Fatalf("charge elapsed = %f, want 1", e.Contestant(SideB).ChargeElapsed)
	}

	e.contestants[SideB].VX = 0
	e.Push(SideB, true)
	b := e.Contestant(SideB)
	if b.VX != -cfg.PushPower {
		t.Errorf("VX = %f, want %f (base power, pushing left)", b.VX, -cfg.PushPower)
	}
	if b.ChargeElapsed != 0 || b.FullyCharged {
		t.Errorf("partial charge not cleared: elapsed=%f full=%v", b.ChargeElapsed, b.FullyCharged)
	}
	if !b.Charging {
		t.Error("a plain push should not release the held charge")
	}
}

// TestFullChargeLatchesAndBlinks verifies the latch survives further holding and the blink advances
func TestFullChargeLatchesAndBlinks(t *testing.T) {
	e := newTestEngine(ByWaterAtTimeout)

	var events Events
	e.SetObserver(func(u Update) { events |= u.Events })
	chargeFully(t, e, SideA)
	if !events.Has(EventFullyCharged) {
		t.Errorf("events = %s, want fully_charged", events)
	}

	blink := e.Contestant(SideA).BlinkPhase
	events = 0
	e.Step(0.25)
	a := e.Contestant(SideA)
	if !a.FullyCharged {
		t.Error("full charge should stay latched")
	}
	if math.Abs(a.BlinkPhase-(blink+0.25*8)) > floatTolerance {
		t.Errorf("blink phase = %f, want %f", a.BlinkPhase, blink+2)
	}
	if events.Has(EventFullyCharged) {
		t.Error("fully_charged should fire once per charge")
	}
}

// TestEndChargeReleasesPush verifies releasing a full charge pushes with charged power
func TestEndChargeReleasesPush(t *testing.T) {
	e := newTestEngine(ByBoundaryKnockout)
	cfg := e.Config()
	chargeFully(t, e, SideB)

	e.contestants[SideB].VX = 0
	e.ToggleCharge(SideB)
	b := e.Contestant(SideB)
	if b.Charging {
		t.Error("release should stop charging")
	}
	if b.VX != -cfg.ChargedPower {
		t.Errorf("VX = %f, want %f", b.VX, -cfg.ChargedPower)
	}

	// Releasing without holding is a no-op
	before := e.Snapshot()
	e.EndCharge(SideB)
	if e.Contestant(SideB) != before.Contestants[SideB] {
		t.Error("EndCharge without a held charge changed state")
	}
}

// TestEarlyReleaseGivesBasePush verifies releasing before the threshold pushes normally
func TestEarlyReleaseGivesBasePush(t *testing.T) {
	e := newTestEngine(ByWaterAtTimeout)
	cfg := e.Config()

	e.BeginCharge(SideA)
	e.Step(1.0)
	e.contestants[SideA].VX = 0
	e.EndCharge(SideA)

	if got := e.Contestant(SideA).VX; got != cfg.PushPower {
		t.Errorf("VX = %f, want %f", got, cfg.PushPower)
	}
}

// TestPushCostByModifier verifies sturdy cups pay less water per push
func TestPushCostByModifier(t *testing.T) {
	tests := []struct {
		mod  TypeModifier
		cost float64
	}{
		{ModifierNormal, 0.6},
		{ModifierSturdy, 0.3},
		{ModifierSplashy, 0.6},
		{ModifierBalanced, 0.45},
	}

	for _, tc := range tests {
		t.Run(tc.mod.String(), func(t *testing.T) {
			e := New(DefaultConfig(ByWaterAtTimeout), WithPicker(FixedPicker{tc.mod, tc.mod}))
			full := e.Config().Arena.MaxWater
			e.Push(SideA, false)
			if got := e.Contestant(SideA).Water; math.Abs(got-(full-tc.cost)) > floatTolerance {
				t.Errorf("water = %f, want %f", got, full-tc.cost)
			}
		})
	}
}

// TestPushWaterFloorsAtZero verifies an empty bowl stays empty
func TestPushWaterFloorsAtZero(t *testing.T) {
	e := newTestEngine(ByWaterAtTimeout)
	e.contestants[SideA].Water = 0.1
	e.Push(SideA, false)
	if got := e.Contestant(SideA).Water; got != 0 {
		t.Errorf("water = %f, want 0", got)
	}
	e.Push(SideA, false)
	if got := e.Contestant(SideA).Water; got != 0 {
		t.Errorf("water = %f, want 0 after pushing an empty bowl", got)
	}
}

// TestSpillByModifier verifies each cup scales collision spill independently
func TestSpillByModifier(t *testing.T) {
	e := New(DefaultConfig(ByWaterAtTimeout), WithPicker(FixedPicker{ModifierSturdy, ModifierSplashy}))
	cfg := e.Config()

	e.contestants[SideA].X = 300
	e.contestants[SideB].X = 320
	e.Step(1.0 / 60)

	wantA := cfg.Arena.MaxWater - cfg.BaseSpill*0.5
	wantB := cfg.Arena.MaxWater - cfg.BaseSpill*1.5
	if got := e.Contestant(SideA).Water; math.Abs(got-wantA) > floatTolerance {
		t.Errorf("sturdy water = %f, want %f", got, wantA)
	}
	if got := e.Contestant(SideB).Water; math.Abs(got-wantB) > floatTolerance {
		t.Errorf("splashy water = %f, want %f", got, wantB)
	}
}

// TestInvalidSideIgnored verifies out-of-range sides never panic or mutate
func TestInvalidSideIgnored(t *testing.T) {
	e := newTestEngine(ByWaterAtTimeout)
	before := e.Snapshot()
	e.Push(Side(5), true)
	e.BeginCharge(Side(-1))
	e.EndCharge(Side(2))
	e.ToggleCharge(Side(9))
	if e.Contestant(Side(3)) != (Contestant{}) {
		t.Error("invalid side should return a zero contestant")
	}
	after := e.Snapshot()
	if before.Contestants != after.Contestants {
		t.Error("invalid side mutated contestants")
	}
}
