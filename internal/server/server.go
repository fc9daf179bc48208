package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/smartqr/reviewd/internal/common"
	"github.com/smartqr/reviewd/internal/entity"
	"github.com/smartqr/reviewd/internal/jobs"
	"github.com/smartqr/reviewd/internal/store"
)

// Directory looks up and manages the registered entities reviews are
// generated about.
type Directory interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.QRCode, error)
	Create(ctx context.Context, businessName, productSummary, mapsLink string) (*entity.QRCode, error)
	List(ctx context.Context) ([]*entity.QRCode, error)
}

// Dispatcher starts a background generation job and returns its id.
type Dispatcher interface {
	Dispatch(ctx context.Context, qr *entity.QRCode, sessionID string) (string, error)
}

// Finalizer promotes an ephemeral result into a permanent review.
type Finalizer interface {
	Finalize(ctx context.Context, jobID, finalText string) (*entity.Review, error)
}

// AuditLog appends to the scan_log trail.
type AuditLog interface {
	Append(ctx context.Context, e entity.ScanLogEntry) error
}

// ReviewLister reads permanent reviews for the admin surface.
type ReviewLister interface {
	ListByQRCode(ctx context.Context, qrCodeID uuid.UUID) ([]*entity.Review, error)
}

// StatsReader aggregates the audit trail per entity.
type StatsReader interface {
	ActionStats(ctx context.Context, qrCodeID uuid.UUID) (*entity.ActionStats, error)
}

// Exporter renders an entity's reviews as an XLSX workbook.
type Exporter interface {
	ExportReviewsXLSX(ctx context.Context, qrCodeID uuid.UUID) ([]byte, error)
}

// HealthChecker pings the backing database.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Server carries the HTTP surface: the public scan/stream/submit flow and the
// admin endpoints.
type Server struct {
	directory  Directory
	dispatcher Dispatcher
	finalizer  Finalizer
	results    store.ResultStore
	registry   *jobs.Registry
	audit      AuditLog
	reviews    ReviewLister
	stats      StatsReader
	exporter   Exporter
	health     HealthChecker

	cfg    common.ServerConfig
	stream common.StreamConfig
	logger *slog.Logger
	now    func() time.Time
}

// Deps bundles everything the HTTP surface calls into.
type Deps struct {
	Directory  Directory
	Dispatcher Dispatcher
	Finalizer  Finalizer
	Results    store.ResultStore
	Registry   *jobs.Registry
	Audit      AuditLog
	Reviews    ReviewLister
	Stats      StatsReader
	Exporter   Exporter
	Health     HealthChecker
}

func New(deps Deps, cfg common.ServerConfig, stream common.StreamConfig, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if stream.PollInterval <= 0 {
		stream.PollInterval = time.Second
	}
	if stream.Timeout <= 0 {
		stream.Timeout = 30 * time.Second
	}
	return &Server{
		directory:  deps.Directory,
		dispatcher: deps.Dispatcher,
		finalizer:  deps.Finalizer,
		results:    deps.Results,
		registry:   deps.Registry,
		audit:      deps.Audit,
		reviews:    deps.Reviews,
		stats:      deps.Stats,
		exporter:   deps.Exporter,
		health:     deps.Health,
		cfg:        cfg,
		stream:     stream,
		logger:     logger,
		now:        time.Now,
	}
}

// Router builds the route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.requestID)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/qr/scan", s.handleScan).Methods(http.MethodPost)
	api.HandleFunc("/reviews/stream", s.handleStream).Methods(http.MethodGet)
	api.HandleFunc("/reviews/submit", s.handleSubmit).Methods(http.MethodPost)
	api.HandleFunc("/reviews/job/{jobId}", s.handleJobStatus).Methods(http.MethodGet)

	admin := api.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/qrcodes", s.handleCreateQRCode).Methods(http.MethodPost)
	admin.HandleFunc("/qrcodes", s.handleListQRCodes).Methods(http.MethodGet)
	admin.HandleFunc("/qrcodes/{id}/reviews", s.handleListReviews).Methods(http.MethodGet)
	admin.HandleFunc("/qrcodes/{id}/stats", s.handleStats).Methods(http.MethodGet)
	admin.HandleFunc("/qrcodes/{id}/export", s.handleExport).Methods(http.MethodGet)

	r.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Addr,
		Handler: s.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http.listen", "addr", s.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	s.logger.Info("http.shutdown")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

// requestID tags every request with an id for log correlation.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-Id")
		if reqID == "" {
			reqID = uuid.New().String()
		}
		w.Header().Set("X-Request-Id", reqID)
		next.ServeHTTP(w, r.WithContext(common.WithRequestID(r.Context(), reqID)))
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if s.health != nil {
		if err := s.health.HealthCheck(r.Context()); err != nil {
			s.writeError(w, r, http.StatusServiceUnavailable, "database unreachable")
			return
		}
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
