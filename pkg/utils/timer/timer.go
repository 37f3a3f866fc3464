// Package timer provides wall-clock timing for user-facing operations and
// telemetry durations.
package timer

import "time"

// Timer tracks the total elapsed time of an operation and the elapsed time of
// its current stage.
type Timer interface {
	// Start begins (or restarts) the timer.
	Start()

	// NewStage marks the beginning of a new stage within the operation.
	NewStage()

	// GetTiming returns the total elapsed time and the current stage's elapsed time.
	GetTiming() (total, stage time.Duration)
}

type clockTimer struct {
	start time.Time
	stage time.Time
}

// New creates a started Timer.
func New() Timer {
	now := time.Now()

	return &clockTimer{start: now, stage: now}
}

func (t *clockTimer) Start() {
	now := time.Now()
	t.start = now
	t.stage = now
}

func (t *clockTimer) NewStage() {
	t.stage = time.Now()
}

func (t *clockTimer) GetTiming() (time.Duration, time.Duration) {
	now := time.Now()

	return now.Sub(t.start), now.Sub(t.stage)
}
