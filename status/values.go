package status

import (
	"math"
	"sync/atomic"
	"unicode/utf8"
)

// MaxStringLen caps stored strings in bytes so the debug row stays on one line
const MaxStringLen = 36

// AtomicFloat holds a float64 as its IEEE bits; the zero value reads 0
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Set(val float64) { f.bits.Store(math.Float64bits(val)) }

func (f *AtomicFloat) Get() float64 { return math.Float64frombits(f.bits.Load()) }

// Add applies delta and returns the sum
func (f *AtomicFloat) Add(delta float64) float64 {
	for {
		old := f.bits.Load()
		sum := math.Float64frombits(old) + delta
		if f.bits.CompareAndSwap(old, math.Float64bits(sum)) {
			return sum
		}
	}
}

// AtomicString holds a short label such as a match id or the last event set
type AtomicString struct {
	v atomic.Value
}

// Store saves val cut to MaxStringLen without splitting a rune
func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		cut := MaxStringLen
		for cut > 0 && !utf8.RuneStart(val[cut]) {
			cut--
		}
		val = val[:cut]
	}
	s.v.Store(val)
}

func (s *AtomicString) Load() string {
	v, _ := s.v.Load().(string)
	return v
}
