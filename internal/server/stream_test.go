package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/smartqr/reviewd/internal/common"
	"github.com/smartqr/reviewd/internal/entity"
	"github.com/smartqr/reviewd/internal/store"
)

func fastStream() common.StreamConfig {
	return common.StreamConfig{
		PollInterval: 10 * time.Millisecond,
		Timeout:      300 * time.Millisecond,
	}
}

// parseSSE splits a raw SSE body into its comment lines and decoded data
// events.
func parseSSE(t *testing.T, body string) (comments []string, events []streamEvent) {
	t.Helper()
	for _, chunk := range strings.Split(body, "\n\n") {
		chunk = strings.TrimSpace(chunk)
		switch {
		case chunk == "":
		case strings.HasPrefix(chunk, ":"):
			comments = append(comments, chunk)
		case strings.HasPrefix(chunk, "data: "):
			var ev streamEvent
			if err := json.Unmarshal([]byte(strings.TrimPrefix(chunk, "data: ")), &ev); err != nil {
				t.Fatalf("decode event %q: %v", chunk, err)
			}
			events = append(events, ev)
		default:
			t.Fatalf("unexpected SSE chunk %q", chunk)
		}
	}
	return comments, events
}

func seedStreamResult(t *testing.T, env *testEnv, jobID string) *entity.TempReview {
	t.Helper()
	now := time.Now()
	tmp := &entity.TempReview{
		ID:         uuid.New(),
		JobID:      jobID,
		QRCodeID:   env.qr.ID,
		ReviewText: "Perfect filter coffee, strong and hot.",
		Language:   "english",
		Rating:     5,
		CreatedAt:  now,
		ExpiresAt:  now.Add(30 * time.Minute),
	}
	if err := env.results.Put(context.Background(), tmp); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return tmp
}

func TestStreamRequiresJobID(t *testing.T) {
	env := newTestEnv(t, fastStream())
	if rec := env.do(http.MethodGet, "/api/reviews/stream", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestStreamImmediateReady(t *testing.T) {
	env := newTestEnv(t, fastStream())
	env.registry.Begin("job-1")
	env.registry.Resolve("job-1")
	tmp := seedStreamResult(t, env, "job-1")

	rec := env.do(http.MethodGet, "/api/reviews/stream?jobId=job-1", "")

	if got := rec.Header().Get("Content-Type"); got != "text/event-stream" {
		t.Errorf("content type = %q", got)
	}
	comments, events := parseSSE(t, rec.Body.String())
	if len(comments) == 0 || comments[0] != ": connected" {
		t.Errorf("comments = %v, want leading ': connected'", comments)
	}
	if len(events) != 1 {
		t.Fatalf("events = %+v, want exactly one", events)
	}
	ev := events[0]
	if ev.Type != "review_ready" || ev.JobID != "job-1" {
		t.Errorf("event = %+v", ev)
	}
	if ev.ReviewText != tmp.ReviewText || ev.Language != tmp.Language || ev.Rating != tmp.Rating {
		t.Errorf("event payload = %+v", ev)
	}
}

func TestStreamReadyAfterDelay(t *testing.T) {
	env := newTestEnv(t, fastStream())
	env.registry.Begin("job-2")

	go func() {
		time.Sleep(50 * time.Millisecond)
		seedStreamResult(t, env, "job-2")
		env.registry.Resolve("job-2")
	}()

	start := time.Now()
	rec := env.do(http.MethodGet, "/api/reviews/stream?jobId=job-2", "")
	elapsed := time.Since(start)

	_, events := parseSSE(t, rec.Body.String())
	if len(events) != 1 || events[0].Type != "review_ready" {
		t.Fatalf("events = %+v", events)
	}
	if elapsed >= fastStream().Timeout {
		t.Errorf("stream took %v, should finish before the timeout", elapsed)
	}
}

func TestStreamTimeout(t *testing.T) {
	env := newTestEnv(t, fastStream())
	env.registry.Begin("job-3")

	rec := env.do(http.MethodGet, "/api/reviews/stream?jobId=job-3", "")

	_, events := parseSSE(t, rec.Body.String())
	if len(events) != 1 {
		t.Fatalf("events = %+v, want exactly one", events)
	}
	if events[0].Type != "timeout" {
		t.Errorf("event type = %q, want timeout", events[0].Type)
	}
}

// A job that dies stays silent: the stream never reports failure, it just
// times out.
func TestStreamFailedJobTimesOutSilently(t *testing.T) {
	env := newTestEnv(t, fastStream())
	env.registry.Begin("job-4")
	env.registry.Fail("job-4")

	rec := env.do(http.MethodGet, "/api/reviews/stream?jobId=job-4", "")

	_, events := parseSSE(t, rec.Body.String())
	if len(events) != 1 || events[0].Type != "timeout" {
		t.Errorf("events = %+v, want a single timeout", events)
	}
	for _, ev := range events {
		if strings.Contains(ev.Type, "fail") || strings.Contains(ev.Type, "error") {
			t.Errorf("failure leaked to the client: %+v", ev)
		}
	}
}

func TestStreamUnknownJobPollsUntilTimeout(t *testing.T) {
	env := newTestEnv(t, fastStream())

	// Never registered: no done channel, pure polling.
	rec := env.do(http.MethodGet, "/api/reviews/stream?jobId=ghost", "")

	_, events := parseSSE(t, rec.Body.String())
	if len(events) != 1 || events[0].Type != "timeout" {
		t.Errorf("events = %+v, want a single timeout", events)
	}
}

// flakyResults fails its first Get calls before delegating to the real store.
type flakyResults struct {
	inner    store.ResultStore
	mu       sync.Mutex
	failures int
}

func (f *flakyResults) Put(ctx context.Context, r *entity.TempReview) error {
	return f.inner.Put(ctx, r)
}

func (f *flakyResults) Get(ctx context.Context, jobID string) (*entity.TempReview, error) {
	f.mu.Lock()
	if f.failures > 0 {
		f.failures--
		f.mu.Unlock()
		return nil, errors.New("transient db error")
	}
	f.mu.Unlock()
	return f.inner.Get(ctx, jobID)
}

func (f *flakyResults) Delete(ctx context.Context, jobID string) (bool, error) {
	return f.inner.Delete(ctx, jobID)
}

// A store hiccup must not close the stream; the poll loop rides it out and
// still delivers the result.
func TestStreamSurvivesTransientStoreError(t *testing.T) {
	env := newTestEnv(t, fastStream())
	env.registry.Begin("job-6")
	env.registry.Resolve("job-6")
	seedStreamResult(t, env, "job-6")

	env.srv = New(Deps{
		Directory:  env.dir,
		Dispatcher: env.disp,
		Finalizer:  env.fin,
		Results:    &flakyResults{inner: env.results, failures: 2},
		Registry:   env.registry,
		Audit:      env.audit,
	}, common.ServerConfig{Addr: ":0", ShutdownTimeout: time.Second}, fastStream(), nil)

	rec := env.do(http.MethodGet, "/api/reviews/stream?jobId=job-6", "")

	_, events := parseSSE(t, rec.Body.String())
	if len(events) != 1 {
		t.Fatalf("events = %+v, want exactly one", events)
	}
	if events[0].Type != "review_ready" || events[0].JobID != "job-6" {
		t.Errorf("event = %+v, want review_ready for job-6", events[0])
	}
}

func TestStreamClientDisconnect(t *testing.T) {
	env := newTestEnv(t, fastStream())
	env.registry.Begin("job-5")

	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Millisecond)
	defer cancel()
	req := httptest.NewRequest(http.MethodGet, "/api/reviews/stream?jobId=job-5", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	env.srv.Router().ServeHTTP(rec, req)

	// No timeout event: the handler saw the disconnect first.
	_, events := parseSSE(t, rec.Body.String())
	if len(events) != 0 {
		t.Errorf("events = %+v, want none after disconnect", events)
	}
}
