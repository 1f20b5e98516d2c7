// Package trace records a match frame by frame as a msgpack stream
package trace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/ramen-sumo/engine"
)

// Version is the trace format revision
const Version = 1

// Record kinds
const (
	KindHeader uint8 = iota + 1
	KindFrame
	KindSummary
)

var (
	ErrNoHeader       = errors.New("trace does not start with a header")
	ErrVersion        = errors.New("unsupported trace version")
	ErrRecorderClosed = errors.New("recorder closed")
)

// Header describes the recorded match
type Header struct {
	Version      int       `msgpack:"v"`
	MatchID      string    `msgpack:"match_id"`
	StartedAt    time.Time `msgpack:"started_at"`
	WinCondition string    `msgpack:"win"`
	MaxTerms     int       `msgpack:"max_terms"`
	RoundTime    float64   `msgpack:"round_time"`
	Seed         int64     `msgpack:"seed"`
	Roster       []string  `msgpack:"roster"`
}

// NewHeader builds a header for a match about to start
func NewHeader(id uuid.UUID, cfg engine.Config) Header {
	roster := make([]string, len(cfg.Roster))
	for i, m := range cfg.Roster {
		roster[i] = m.String()
	}
	return Header{
		Version:      Version,
		MatchID:      id.String(),
		StartedAt:    time.Now().UTC(),
		WinCondition: cfg.WinCondition.String(),
		MaxTerms:     cfg.MaxTerms,
		RoundTime:    cfg.RoundTime,
		Seed:         cfg.Seed,
		Roster:       roster,
	}
}

// Cup is one contestant within a frame
type Cup struct {
	X        float64 `msgpack:"x"`
	Y        float64 `msgpack:"y"`
	VX       float64 `msgpack:"vx"`
	Angle    float64 `msgpack:"a"`
	Water    float64 `msgpack:"w"`
	Charging bool    `msgpack:"c"`
	Full     bool    `msgpack:"f"`
	Modifier string  `msgpack:"m"`
}

// Frame is the match state after one step
type Frame struct {
	Index    int     `msgpack:"i"`
	Time     float64 `msgpack:"t"`
	Phase    string  `msgpack:"p"`
	Term     int     `msgpack:"term"`
	TimeLeft float64 `msgpack:"left"`
	Events   uint32  `msgpack:"ev"`
	Cups     [2]Cup  `msgpack:"cups"`
}

// TermEntry is one completed term in the summary
type TermEntry struct {
	Term   int        `msgpack:"term"`
	Winner string     `msgpack:"winner"`
	Reason string     `msgpack:"reason"`
	Water  [2]float64 `msgpack:"water"`
}

// Summary closes the trace with the final result
type Summary struct {
	Frames   int         `msgpack:"frames"`
	Outcome  string      `msgpack:"outcome"`
	TermWins [2]int      `msgpack:"term_wins"`
	Terms    []TermEntry `msgpack:"terms"`
}

// record is the on-disk envelope
type record struct {
	Kind    uint8    `msgpack:"k"`
	Header  *Header  `msgpack:"h,omitempty"`
	Frame   *Frame   `msgpack:"f,omitempty"`
	Summary *Summary `msgpack:"s,omitempty"`
}

// FrameFrom converts an engine snapshot into a trace frame
func FrameFrom(index int, t float64, s engine.Snapshot, ev engine.Events) Frame {
	f := Frame{
		Index:    index,
		Time:     t,
		Phase:    s.Phase.String(),
		Term:     s.CurrentTerm,
		TimeLeft: s.TimeLeft,
		Events:   uint32(ev),
	}
	for i, c := range s.Contestants {
		f.Cups[i] = Cup{
			X:        c.X,
			Y:        c.Y,
			VX:       c.VX,
			Angle:    c.Angle,
			Water:    c.Water,
			Charging: c.Charging,
			Full:     c.FullyCharged,
			Modifier: c.Modifier.String(),
		}
	}
	return f
}

// SummaryFrom converts the final snapshot into a summary
func SummaryFrom(frames int, s engine.Snapshot) Summary {
	sum := Summary{
		Frames:   frames,
		Outcome:  s.Outcome.String(),
		TermWins: s.TermWins,
	}
	for _, tr := range s.Terms {
		sum.Terms = append(sum.Terms, TermEntry{
			Term:   tr.Term,
			Winner: tr.Winner.String(),
			Reason: tr.Reason.String(),
			Water:  tr.Water,
		})
	}
	return sum
}

// Recorder appends records to a stream
type Recorder struct {
	buf    *bufio.Writer
	enc    *msgpack.Encoder
	closer io.Closer
	frames int
	closed bool
}

// NewRecorder writes the header to w
func NewRecorder(w io.Writer, h Header) (*Recorder, error) {
	buf := bufio.NewWriter(w)
	r := &Recorder{buf: buf, enc: msgpack.NewEncoder(buf)}
	if c, ok := w.(io.Closer); ok {
		r.closer = c
	}
	if err := r.enc.Encode(&record{Kind: KindHeader, Header: &h}); err != nil {
		return nil, fmt.Errorf("write trace header: %w", err)
	}
	return r, nil
}

// Create opens path for writing and starts a trace in it
func Create(path string, h Header) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create trace: %w", err)
	}
	r, err := NewRecorder(f, h)
	if err != nil {
		f.Close()
		return nil, err
	}
	return r, nil
}

// Frames returns the number of frames written
func (r *Recorder) Frames() int { return r.frames }

// WriteFrame appends one frame
func (r *Recorder) WriteFrame(f Frame) error {
	if r.closed {
		return ErrRecorderClosed
	}
	if err := r.enc.Encode(&record{Kind: KindFrame, Frame: &f}); err != nil {
		return fmt.Errorf("write trace frame %d: %w", f.Index, err)
	}
	r.frames++
	return nil
}

// Close writes the summary, flushes and closes the underlying writer if it is a Closer
func (r *Recorder) Close(sum Summary) error {
	if r.closed {
		return ErrRecorderClosed
	}
	r.closed = true

	err := r.enc.Encode(&record{Kind: KindSummary, Summary: &sum})
	if err != nil {
		err = fmt.Errorf("write trace summary: %w", err)
	}
	if ferr := r.buf.Flush(); ferr != nil && err == nil {
		err = fmt.Errorf("flush trace: %w", ferr)
	}
	if r.closer != nil {
		if cerr := r.closer.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close trace: %w", cerr)
		}
	}
	return err
}

// Trace is a fully decoded recording
type Trace struct {
	Header  Header
	Frames  []Frame
	Summary *Summary // nil if the recording was cut short
}

// Read decodes a whole trace stream
func Read(rd io.Reader) (*Trace, error) {
	dec := msgpack.NewDecoder(bufio.NewReader(rd))

	var first record
	if err := dec.Decode(&first); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoHeader, err)
	}
	if first.Kind != KindHeader || first.Header == nil {
		return nil, ErrNoHeader
	}
	if first.Header.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, first.Header.Version)
	}

	t := &Trace{Header: *first.Header}
	for {
		var rec record
		err := dec.Decode(&rec)
		if errors.Is(err, io.EOF) {
			return t, nil
		}
		if err != nil {
			return t, fmt.Errorf("decode trace record %d: %w", len(t.Frames)+1, err)
		}

		switch rec.Kind {
		case KindFrame:
			if rec.Frame != nil {
				t.Frames = append(t.Frames, *rec.Frame)
			}
		case KindSummary:
			t.Summary = rec.Summary
		}
	}
}

// ReadFile decodes the trace at path
func ReadFile(path string) (*Trace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open trace: %w", err)
	}
	defer f.Close()
	return Read(f)
}
