package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/smartqr/reviewd/constants"
	"github.com/smartqr/reviewd/internal/common"
	"github.com/smartqr/reviewd/internal/entity"
	"github.com/smartqr/reviewd/internal/jobs"
	"github.com/smartqr/reviewd/internal/store"
)

type fakeDirectory struct {
	mu    sync.Mutex
	codes map[uuid.UUID]*entity.QRCode
}

func newFakeDirectory(codes ...*entity.QRCode) *fakeDirectory {
	d := &fakeDirectory{codes: make(map[uuid.UUID]*entity.QRCode)}
	for _, c := range codes {
		d.codes[c.ID] = c
	}
	return d
}

func (d *fakeDirectory) GetByID(_ context.Context, id uuid.UUID) (*entity.QRCode, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	c, ok := d.codes[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return c, nil
}

func (d *fakeDirectory) Create(_ context.Context, businessName, productSummary, mapsLink string) (*entity.QRCode, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	c := &entity.QRCode{
		ID:             uuid.New(),
		BusinessName:   businessName,
		ProductSummary: productSummary,
		MapsLink:       mapsLink,
		CreatedAt:      time.Now(),
	}
	d.codes[c.ID] = c
	return c, nil
}

func (d *fakeDirectory) List(_ context.Context) ([]*entity.QRCode, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]*entity.QRCode, 0, len(d.codes))
	for _, c := range d.codes {
		out = append(out, c)
	}
	return out, nil
}

type fakeDispatcher struct {
	mu     sync.Mutex
	jobID  string
	err    error
	lastQR *entity.QRCode
}

func (f *fakeDispatcher) Dispatch(_ context.Context, qr *entity.QRCode, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastQR = qr
	if f.err != nil {
		return "", f.err
	}
	return f.jobID, nil
}

type fakeFinalizer struct {
	review *entity.Review
	err    error
}

func (f *fakeFinalizer) Finalize(_ context.Context, jobID, finalText string) (*entity.Review, error) {
	if strings.TrimSpace(jobID) == "" || strings.TrimSpace(finalText) == "" {
		return nil, common.InvalidInputError("jobId and reviewText are required")
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.review, nil
}

type captureAudit struct {
	mu      sync.Mutex
	entries []entity.ScanLogEntry
}

func (a *captureAudit) Append(_ context.Context, e entity.ScanLogEntry) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, e)
	return nil
}

type testEnv struct {
	srv      *Server
	dir      *fakeDirectory
	disp     *fakeDispatcher
	fin      *fakeFinalizer
	results  *store.Memory
	registry *jobs.Registry
	audit    *captureAudit
	qr       *entity.QRCode
}

func newTestEnv(t *testing.T, stream common.StreamConfig) *testEnv {
	t.Helper()
	qr := &entity.QRCode{
		ID:           uuid.New(),
		BusinessName: "Chai Point",
		MapsLink:     "https://maps.example/chai-point",
	}
	env := &testEnv{
		dir:      newFakeDirectory(qr),
		disp:     &fakeDispatcher{jobID: "job-123"},
		fin:      &fakeFinalizer{},
		results:  store.NewMemory(),
		registry: jobs.NewRegistry(),
		audit:    &captureAudit{},
		qr:       qr,
	}
	env.srv = New(Deps{
		Directory:  env.dir,
		Dispatcher: env.disp,
		Finalizer:  env.fin,
		Results:    env.results,
		Registry:   env.registry,
		Audit:      env.audit,
	}, common.ServerConfig{Addr: ":0", ShutdownTimeout: time.Second}, stream, nil)
	return env
}

func (e *testEnv) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.srv.Router().ServeHTTP(rec, req)
	return rec
}

func TestScanAcceptsAndDispatches(t *testing.T) {
	env := newTestEnv(t, common.StreamConfig{})

	rec := env.do(http.MethodPost, "/api/qr/scan",
		`{"qrId":"`+env.qr.ID.String()+`","deviceId":"pixel-7","sessionId":"s1"}`)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp scanResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "accepted" || resp.JobID != "job-123" {
		t.Errorf("resp = %+v", resp)
	}
	if resp.MapsLink != env.qr.MapsLink {
		t.Errorf("mapsLink = %q", resp.MapsLink)
	}
	if env.disp.lastQR == nil || env.disp.lastQR.ID != env.qr.ID {
		t.Error("dispatcher did not receive the scanned entity")
	}
	if len(env.audit.entries) != 1 || env.audit.entries[0].Action != constants.ActionScan {
		t.Errorf("audit = %+v", env.audit.entries)
	}
	if env.audit.entries[0].DeviceID != "pixel-7" {
		t.Errorf("device id = %q", env.audit.entries[0].DeviceID)
	}
}

func TestScanValidation(t *testing.T) {
	env := newTestEnv(t, common.StreamConfig{})

	cases := []struct {
		name string
		body string
		want int
	}{
		{"missing qrId", `{"deviceId":"d"}`, http.StatusBadRequest},
		{"malformed uuid", `{"qrId":"not-a-uuid"}`, http.StatusBadRequest},
		{"unknown entity", `{"qrId":"` + uuid.NewString() + `"}`, http.StatusNotFound},
		{"garbage body", `{"qrId":`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if rec := env.do(http.MethodPost, "/api/qr/scan", tc.body); rec.Code != tc.want {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tc.want, rec.Body.String())
			}
		})
	}
}

func TestSubmitHappyPath(t *testing.T) {
	env := newTestEnv(t, common.StreamConfig{})
	reviewID := uuid.New()
	env.fin.review = &entity.Review{ID: reviewID, ReviewText: "edited"}

	rec := env.do(http.MethodPost, "/api/reviews/submit",
		`{"jobId":"job-123","reviewText":"edited"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp submitResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.ReviewID != reviewID.String() {
		t.Errorf("resp = %+v", resp)
	}
}

func TestSubmitErrors(t *testing.T) {
	env := newTestEnv(t, common.StreamConfig{})
	env.fin.err = common.NotFoundError("review not found or expired")

	if rec := env.do(http.MethodPost, "/api/reviews/submit",
		`{"jobId":"gone","reviewText":"x"}`); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if rec := env.do(http.MethodPost, "/api/reviews/submit",
		`{"jobId":"","reviewText":""}`); rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestJobStatus(t *testing.T) {
	env := newTestEnv(t, common.StreamConfig{})
	env.registry.Begin("job-9")
	env.registry.Resolve("job-9")

	rec := env.do(http.MethodGet, "/api/reviews/job/job-9", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp jobStatusResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.State != string(constants.JobStateResolved) {
		t.Errorf("state = %q", resp.State)
	}

	if rec := env.do(http.MethodGet, "/api/reviews/job/nope", ""); rec.Code != http.StatusNotFound {
		t.Errorf("unknown job status = %d, want 404", rec.Code)
	}
}

func TestHealthz(t *testing.T) {
	env := newTestEnv(t, common.StreamConfig{})
	if rec := env.do(http.MethodGet, "/healthz", ""); rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestAdminQRCodeLifecycle(t *testing.T) {
	env := newTestEnv(t, common.StreamConfig{})

	rec := env.do(http.MethodPost, "/api/admin/qrcodes",
		`{"businessName":"Dosa Corner","productSummary":"south indian","mapsLink":"https://maps.example/dosa"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var created entity.QRCode
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.BusinessName != "Dosa Corner" {
		t.Errorf("created = %+v", created)
	}

	if rec := env.do(http.MethodPost, "/api/admin/qrcodes", `{"businessName":"  "}`); rec.Code != http.StatusBadRequest {
		t.Errorf("blank name status = %d, want 400", rec.Code)
	}

	rec = env.do(http.MethodGet, "/api/admin/qrcodes", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var list []entity.QRCode
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("list size = %d, want 2", len(list))
	}
}
