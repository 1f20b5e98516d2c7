package constants

import "time"

// Push Sound Timing
const (
	PushSoundDuration = 90 * time.Millisecond
	PushSoundAttack   = 5 * time.Millisecond
	PushSoundRelease  = 60 * time.Millisecond
)

// Charged Push Sound Timing
const (
	ChargedSoundDuration = 300 * time.Millisecond
	ChargedSoundAttack   = 120 * time.Millisecond
	ChargedSoundRelease  = 150 * time.Millisecond
)

// Splash Sound Timing
const (
	SplashSoundDuration = 220 * time.Millisecond
	SplashSoundAttack   = 3 * time.Millisecond
	SplashSoundRelease  = 180 * time.Millisecond
)

// Knockout Bell Timing
const (
	BellSoundDuration           = 600 * time.Millisecond
	BellSoundAttack             = 5 * time.Millisecond
	BellSoundFundamentalRelease = 550 * time.Millisecond
	BellSoundOvertoneRelease    = 200 * time.Millisecond
)

// Term Chime Timing
const (
	ChimeNote1Duration = 80 * time.Millisecond
	ChimeNote2Duration = 280 * time.Millisecond
	ChimeAttack        = 5 * time.Millisecond
	ChimeNote1Release  = 40 * time.Millisecond
	ChimeNote2Release  = 200 * time.Millisecond
)

// Match Fanfare Timing
const (
	FanfareNoteDuration = 140 * time.Millisecond
	FanfareAttack       = 5 * time.Millisecond
	FanfareRelease      = 90 * time.Millisecond
)

// Speaker buffer
const (
	// SpeakerBufferDuration is the beep speaker buffer length
	SpeakerBufferDuration = 100 * time.Millisecond
)
