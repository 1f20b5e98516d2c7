package audio

import "errors"

// SoundType represents different sound effects
type SoundType int

const (
	SoundPush     SoundType = iota // Plain push thud
	SoundCharged                   // Charged push whoosh
	SoundSplash                    // Collision spill
	SoundKnockout                  // Cup knocked off the table
	SoundTermEnd                   // Term decided
	SoundMatchEnd                  // Match over
	soundTypeCount
)

// soundNames maps config keys to sound types
var soundNames = map[string]SoundType{
	"push":      SoundPush,
	"charged":   SoundCharged,
	"splash":    SoundSplash,
	"knockout":  SoundKnockout,
	"term_end":  SoundTermEnd,
	"match_end": SoundMatchEnd,
}

// ParseSoundType resolves a config key to a sound type
func ParseSoundType(name string) (SoundType, bool) {
	st, ok := soundNames[name]
	return st, ok
}

// String returns the config key of the sound
func (s SoundType) String() string {
	for name, st := range soundNames {
		if st == s {
			return name
		}
	}
	return "unknown"
}

// Player plays sound effects; implementations must be safe to call from the frame loop
type Player interface {
	Play(SoundType)
}

// Sentinel errors
var (
	ErrAlreadyInitialized = errors.New("audio already initialized")
	ErrInvalidSampleRate  = errors.New("sample rate must be positive")
)
