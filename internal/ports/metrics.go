package ports

type Metrics interface {
	SessionStarted()
	SessionEnded()
	SubmissionRecorded(identities int, newLinks int)
	RestrictionApplied(timed bool)
	RestrictionReleased(outcome string)
	PlatformCallFailed(op string)
}

// Release outcomes reported through Metrics.RestrictionReleased.
const (
	ReleaseOutcomeReleased   = "released"
	ReleaseOutcomeSuperseded = "superseded"
	ReleaseOutcomeFailed     = "failed"
	ReleaseOutcomeShutdown   = "shutdown"
)

type NopMetrics struct{}

func (NopMetrics) SessionStarted() {}
func (NopMetrics) SessionEnded() {}
func (NopMetrics) SubmissionRecorded(int, int) {}
func (NopMetrics) RestrictionApplied(bool) {}
func (NopMetrics) RestrictionReleased(string) {}
func (NopMetrics) PlatformCallFailed(string) {}
