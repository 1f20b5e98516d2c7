package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the driver frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameStep caps a single simulation step after a stall (seconds)
	MaxFrameStep = 0.05

	// EventBufferSize is the capacity of the terminal event channel
	EventBufferSize = 256
)

// Headless simulator
const (
	// SimFrameStep is the fixed dt used by the headless simulator (seconds)
	SimFrameStep = 1.0 / 60.0

	// SimMaxFrames bounds a headless run so a stuck match still terminates
	SimMaxFrames = 60 * 60 * 10
)
