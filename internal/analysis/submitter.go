package analysis

import (
	"context"
	"fmt"

	"github.com/mealsnap/serverless-backend/internal/models"
	"github.com/mealsnap/serverless-backend/internal/validate"

	"github.com/google/uuid"
)

// JobEnqueuer hands an analysis job to the work queue. Enqueue must not
// return until the queue has durably accepted the message.
type JobEnqueuer interface {
	Enqueue(ctx context.Context, job models.AnalysisJob) error
}

// Submitter accepts analysis requests and enqueues them without waiting for
// processing, so submission latency is independent of inference latency.
type Submitter struct {
	queue JobEnqueuer
}

// NewSubmitter constructs a Submitter around the given queue.
func NewSubmitter(queue JobEnqueuer) *Submitter {
	return &Submitter{queue: queue}
}

// Submit validates the object key, mints a fresh tracking identifier, and
// enqueues the job. The identifier is returned immediately; the caller polls
// for the result. Identifiers are random 128-bit UUIDs and never accepted
// from the caller.
func (s *Submitter) Submit(ctx context.Context, objectKey string) (string, error) {
	if err := validate.ObjectKey(objectKey); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	id := uuid.NewString()
	job := models.AnalysisJob{AnalysisID: id, ObjectKey: objectKey}
	if err := s.queue.Enqueue(ctx, job); err != nil {
		// Not retried here; the caller is expected to retry submission.
		return "", err
	}
	return id, nil
}
