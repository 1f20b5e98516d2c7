package trace

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/lixenwraith/ramen-sumo/engine"
)

func recordMatch(t *testing.T, rec *Recorder, e *engine.Engine) engine.Snapshot {
	t.Helper()

	var ev engine.Events
	e.SetObserver(func(u engine.Update) { ev |= u.Events })

	const dt = 1.0 / 60
	for i := 0; i < 120; i++ {
		if i%20 == 0 {
			e.Push(engine.SideA, false)
		}
		e.Step(dt)
		if err := rec.WriteFrame(FrameFrom(i, float64(i+1)*dt, e.Snapshot(), ev)); err != nil {
			t.Fatalf("WriteFrame: %v", err)
		}
		ev = 0
	}
	return e.Snapshot()
}

func TestRoundTrip(t *testing.T) {
	cfg := engine.DefaultConfig(engine.ByBoundaryKnockout)
	cfg.Seed = 5
	e := engine.New(cfg, engine.WithPicker(engine.FixedPicker{engine.ModifierSturdy, engine.ModifierSplashy}))
	e.Start()

	id := uuid.New()
	var buf bytes.Buffer
	rec, err := NewRecorder(&buf, NewHeader(id, cfg))
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}

	final := recordMatch(t, rec, e)
	if err := rec.Close(SummaryFrom(rec.Frames(), final)); err != nil {
		t.Fatalf("Close: %v", err)
	}

	tr, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if tr.Header.MatchID != id.String() || tr.Header.WinCondition != "knockout" || tr.Header.Seed != 5 {
		t.Errorf("header = %+v", tr.Header)
	}
	if len(tr.Header.Roster) != 4 {
		t.Errorf("roster = %v", tr.Header.Roster)
	}
	if len(tr.Frames) != 120 {
		t.Fatalf("frames = %d, want 120", len(tr.Frames))
	}

	last := tr.Frames[119]
	if last.Index != 119 || last.Cups[0].X != final.Contestants[0].X || last.Cups[1].Water != final.Contestants[1].Water {
		t.Errorf("last frame mismatch: %+v", last)
	}
	if last.Cups[0].Modifier != "sturdy" || last.Cups[1].Modifier != "splashy" {
		t.Errorf("modifiers = %q %q", last.Cups[0].Modifier, last.Cups[1].Modifier)
	}
	if engine.Events(tr.Frames[0].Events)&engine.EventPush == 0 {
		t.Errorf("first frame missing push event: %v", engine.Events(tr.Frames[0].Events))
	}

	if tr.Summary == nil || tr.Summary.Frames != 120 || tr.Summary.Outcome != "pending" {
		t.Errorf("summary = %+v", tr.Summary)
	}
}

func TestTruncatedTraceKeepsFrames(t *testing.T) {
	e := engine.New(engine.DefaultConfig(engine.ByWaterAtTimeout))
	e.Start()

	var buf bytes.Buffer
	rec, err := NewRecorder(&buf, NewHeader(uuid.New(), e.Config()))
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}
	for i := 0; i < 3; i++ {
		e.Step(0.1)
		if err := rec.WriteFrame(FrameFrom(i, 0.1*float64(i+1), e.Snapshot(), 0)); err != nil {
			t.Fatalf("WriteFrame: %v", err)
		}
	}
	// Flush without a summary
	if err := rec.buf.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	tr, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(tr.Frames) != 3 || tr.Summary != nil {
		t.Errorf("frames=%d summary=%v", len(tr.Frames), tr.Summary)
	}
}

func TestReadRejectsGarbage(t *testing.T) {
	if _, err := Read(bytes.NewReader(nil)); !errors.Is(err, ErrNoHeader) {
		t.Errorf("empty stream: got %v, want ErrNoHeader", err)
	}

	var buf bytes.Buffer
	rec, err := NewRecorder(&buf, Header{Version: Version + 1})
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}
	if err := rec.Close(Summary{}); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := Read(&buf); !errors.Is(err, ErrVersion) {
		t.Errorf("future version: got %v, want ErrVersion", err)
	}
}

func TestRecorderClosed(t *testing.T) {
	var buf bytes.Buffer
	rec, err := NewRecorder(&buf, Header{Version: Version})
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}
	if err := rec.Close(Summary{}); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := rec.WriteFrame(Frame{}); !errors.Is(err, ErrRecorderClosed) {
		t.Errorf("WriteFrame after close: %v", err)
	}
	if err := rec.Close(Summary{}); !errors.Is(err, ErrRecorderClosed) {
		t.Errorf("double close: %v", err)
	}
}

func TestCreateAndReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "match.trace")
	rec, err := Create(path, Header{Version: Version, MatchID: "m1"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := rec.WriteFrame(Frame{Index: 0, Phase: "Play"}); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}
	if err := rec.Close(Summary{Frames: 1, Outcome: "draw"}); err != nil {
		t.Fatalf("Close: %v", err)
	}

	tr, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if tr.Header.MatchID != "m1" || len(tr.Frames) != 1 || tr.Summary.Outcome != "draw" {
		t.Errorf("trace = %+v", tr)
	}
}
