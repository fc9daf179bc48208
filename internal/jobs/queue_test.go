package jobs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/smartqr/reviewd/internal/entity"
)

func TestQueueProcessesEveryJob(t *testing.T) {
	var mu sync.Mutex
	seen := make(map[string]bool)

	q := NewQueue(func(_ context.Context, job Job) {
		mu.Lock()
		seen[job.JobID] = true
		mu.Unlock()
	}, nil, WithWorkers(2), WithQueueSize(8))

	qr := &entity.QRCode{ID: uuid.New(), BusinessName: "b"}
	for i := 0; i < 5; i++ {
		if err := q.Enqueue(context.Background(), Job{JobID: uuid.NewString(), QRCode: qr}); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	mu.Lock()
	defer mu.Unlock()
	if len(seen) != 5 {
		t.Errorf("processed %d jobs, want 5 (drain on shutdown)", len(seen))
	}
}

func TestQueueEnqueueAfterShutdown(t *testing.T) {
	q := NewQueue(func(context.Context, Job) {}, nil, WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)

	// Refused with an error, never a panic on the closed channel.
	if err := q.Enqueue(context.Background(), Job{JobID: "late"}); !errors.Is(err, ErrQueueClosed) {
		t.Errorf("Enqueue after shutdown = %v, want ErrQueueClosed", err)
	}
}
