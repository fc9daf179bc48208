package jobs

import (
	"sync"
	"time"

	"github.com/smartqr/reviewd/constants"
)

type jobEntry struct {
	state  constants.JobState
	done   chan struct{}
	doneAt time.Time
}

// Registry tracks every job's state explicitly, so status is queryable
// without racing on the result row's presence. The per-job done channel lets
// the delivery stream wake on resolution instead of relying on polling alone.
type Registry struct {
	mu   sync.Mutex
	jobs map[string]*jobEntry
}

func NewRegistry() *Registry {
	return &Registry{jobs: make(map[string]*jobEntry)}
}

// Begin registers a job in the Running state.
func (r *Registry) Begin(jobID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.jobs[jobID]; exists {
		return
	}
	r.jobs[jobID] = &jobEntry{
		state: constants.JobStateRunning,
		done:  make(chan struct{}),
	}
}

// Resolve marks the job resolved and signals waiters.
func (r *Registry) Resolve(jobID string) { r.finish(jobID, constants.JobStateResolved) }

// Fail marks the job unresolved and signals waiters.
func (r *Registry) Fail(jobID string) { r.finish(jobID, constants.JobStateUnresolved) }

func (r *Registry) finish(jobID string, state constants.JobState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.jobs[jobID]
	if !ok || e.state.Terminal() {
		return
	}
	e.state = state
	e.doneAt = time.Now()
	close(e.done)
}

// State returns the job's state and whether the job is known.
func (r *Registry) State(jobID string) (constants.JobState, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.jobs[jobID]
	if !ok {
		return "", false
	}
	return e.state, true
}

// Done returns a channel closed when the job reaches a terminal state, or nil
// for unknown jobs (callers fall back to pure polling).
func (r *Registry) Done(jobID string) <-chan struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.jobs[jobID]
	if !ok {
		return nil
	}
	return e.done
}

// Prune drops terminal entries older than maxAge and returns how many were
// removed. Delivery streams outlive resolution by at most their timeout, so
// anything well past that is garbage.
func (r *Registry) Prune(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)

	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, e := range r.jobs {
		if e.state.Terminal() && e.doneAt.Before(cutoff) {
			delete(r.jobs, id)
			removed++
		}
	}
	return removed
}
