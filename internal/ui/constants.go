package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Polling behavior
const (
	// PollInterval is the cadence at which queued worker events are drained.
	PollInterval = 100 * time.Millisecond
)

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
)

// Layout sizing
const (
	WindowMinWidth  float32 = 580
	WindowMinHeight float32 = 420

	LogMinHeight float32 = 160
)
