package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/smartqr/reviewd/constants"
	"github.com/smartqr/reviewd/internal/dedup"
	"github.com/smartqr/reviewd/internal/entity"
	"github.com/smartqr/reviewd/internal/genai"
	"github.com/smartqr/reviewd/internal/store"
)

// CandidateFilter gates a generated text for one entity. *dedup.Filter is the
// real implementation.
type CandidateFilter interface {
	Check(ctx context.Context, candidateText string, qrCodeID uuid.UUID) (dedup.Verdict, error)
}

// AuditLog appends to the scan_log trail.
type AuditLog interface {
	Append(ctx context.Context, e entity.ScanLogEntry) error
}

// Options bound the retry loop and the stored result's lifetime.
type Options struct {
	MaxAttempts int
	ResultTTL   time.Duration
}

// Dispatcher owns the job lifecycle: it issues job ids, returns to the caller
// immediately, and runs the generate→dedup→store loop on the worker pool.
// It is the only writer of temp reviews.
type Dispatcher struct {
	gen      genai.ReviewGenerator
	filter   CandidateFilter
	results  store.ResultStore
	audit    AuditLog
	registry *Registry
	queue    *Queue
	opts     Options
	logger   *slog.Logger
	now      func() time.Time
}

func NewDispatcher(
	gen genai.ReviewGenerator,
	filter CandidateFilter,
	results store.ResultStore,
	audit AuditLog,
	registry *Registry,
	opts Options,
	logger *slog.Logger,
	queueOpts ...QueueOption,
) *Dispatcher {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 3
	}
	if opts.ResultTTL <= 0 {
		opts.ResultTTL = 30 * time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}
	d := &Dispatcher{
		gen:      gen,
		filter:   filter,
		results:  results,
		audit:    audit,
		registry: registry,
		opts:     opts,
		logger:   logger,
		now:      time.Now,
	}
	d.queue = NewQueue(d.runJob, logger, queueOpts...)
	return d
}

// Shutdown drains the worker pool.
func (d *Dispatcher) Shutdown(ctx context.Context) { d.queue.Shutdown(ctx) }

// Dispatch issues a job id for the scanned entity and enqueues the background
// run. It never blocks on generation.
func (d *Dispatcher) Dispatch(ctx context.Context, qr *entity.QRCode, sessionID string) (string, error) {
	jobID := uuid.New().String()
	d.registry.Begin(jobID)

	err := d.queue.Enqueue(ctx, Job{
		JobID:       jobID,
		QRCode:      qr,
		SessionID:   sessionID,
		SubmittedAt: d.now(),
	})
	if err != nil {
		d.registry.Fail(jobID)
		return "", err
	}
	return jobID, nil
}

// runJob is the job's whole state machine: Running until a candidate is
// accepted (Resolved) or the backend fails / attempts run out (Unresolved).
// A backend failure kills the job on the spot; only dedup rejections earn
// another attempt.
func (d *Dispatcher) runJob(ctx context.Context, job Job) {
	qr := job.QRCode
	start := d.now()

	for attempt := 1; attempt <= d.opts.MaxAttempts; attempt++ {
		cand, err := d.gen.GenerateReview(ctx, qr.BusinessName, qr.ProductSummary)
		if err != nil {
			d.logger.Error("job.run.backend_failed",
				"job_id", job.JobID, "attempt", attempt, "error", err)
			d.registry.Fail(job.JobID)
			return
		}

		verdict, err := d.filter.Check(ctx, cand.Text, qr.ID)
		if err != nil {
			d.logger.Error("job.run.dedup_failed",
				"job_id", job.JobID, "attempt", attempt, "error", err)
			d.registry.Fail(job.JobID)
			return
		}
		if verdict != dedup.Accept {
			d.logger.Info("job.run.rejected",
				"job_id", job.JobID, "attempt", attempt, "verdict", verdict.String())
			continue
		}

		now := d.now()
		result := &entity.TempReview{
			ID:         uuid.New(),
			JobID:      job.JobID,
			QRCodeID:   qr.ID,
			ReviewText: cand.Text,
			Language:   cand.Language,
			Rating:     cand.Rating,
			Hash:       dedup.Hash(cand.Text),
			SessionID:  job.SessionID,
			CreatedAt:  now,
			ExpiresAt:  now.Add(d.opts.ResultTTL),
		}
		if err := d.results.Put(ctx, result); err != nil {
			d.logger.Error("job.run.store_failed", "job_id", job.JobID, "error", err)
			d.registry.Fail(job.JobID)
			return
		}

		// The result is already committed; a lost audit row is not worth
		// unresolving the job over.
		if err := d.audit.Append(ctx, entity.ScanLogEntry{
			QRCodeID:  qr.ID,
			JobID:     job.JobID,
			Action:    constants.ActionReviewGenerated,
			Timestamp: now,
		}); err != nil {
			d.logger.Warn("job.run.audit_failed", "job_id", job.JobID, "error", err)
		}

		d.registry.Resolve(job.JobID)
		d.logger.Info("job.run.accepted",
			"job_id", job.JobID,
			"attempt", attempt,
			"rating", cand.Rating,
			"language", cand.Language,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return
	}

	d.registry.Fail(job.JobID)
	d.logger.Warn("job.run.attempts_exhausted",
		"job_id", job.JobID,
		"max_attempts", d.opts.MaxAttempts,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
}
