package constants

// JobState is the canonical state of a generation job.
type JobState string

// Stable values (exposed verbatim on the job status endpoint).
const (
	JobStateRunning    JobState = "RUNNING"    // background generation in progress
	JobStateResolved   JobState = "RESOLVED"   // a candidate was accepted and stored
	JobStateUnresolved JobState = "UNRESOLVED" // terminal: backend failure or attempts exhausted
)

// Terminal reports whether the state can no longer change.
func (s JobState) Terminal() bool {
	return s == JobStateResolved || s == JobStateUnresolved
}
