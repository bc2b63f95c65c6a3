package metrics

import "time"

// RunOutcome labels how a documentation run ended.
type RunOutcome string

const (
	OutcomeSuccess  RunOutcome = "success"
	OutcomeFailed   RunOutcome = "failed"
	OutcomeCanceled RunOutcome = "canceled"
)

// Recorder defines observability hooks for documentation runs.
type Recorder interface {
	ObserveRunDuration(d time.Duration)
	IncPagesWritten(theme string)
	IncPackagesLoaded()
	IncRunOutcome(outcome RunOutcome)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveRunDuration(time.Duration) {}
func (NoopRecorder) IncPagesWritten(string)           {}
func (NoopRecorder) IncPackagesLoaded()               {}
func (NoopRecorder) IncRunOutcome(RunOutcome)         {}
