package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/mealsnap/serverless-backend/internal/models"
)

// ObjectFetcher reads uploaded image bytes from the object store.
type ObjectFetcher interface {
	Fetch(ctx context.Context, key string) ([]byte, error)
}

// ModelInvoker runs the multimodal model over an image with a prompt and
// returns the raw text output.
type ModelInvoker interface {
	Invoke(ctx context.Context, imageBytes []byte, promptText string) (string, error)
}

// ResultStore persists terminal analysis records.
type ResultStore interface {
	Put(ctx context.Context, res models.AnalysisResult) error
}

// Message is one queue envelope as delivered to the worker.
type Message struct {
	ID   string
	Body string
}

// ItemResult is the outcome for a single message in a batch. Failures are
// collected here rather than aborting the batch.
type ItemResult struct {
	MessageID  string
	AnalysisID string
	Kind       FaultKind
	Err        error
}

// Failed reports whether the message was not processed to completion.
func (r ItemResult) Failed() bool { return r.Kind != FaultNone }

// Retryable reports whether queue redelivery could succeed where this
// attempt failed.
func (r ItemResult) Retryable() bool { return r.Kind == FaultTransient }

// Worker consumes analysis jobs: fetch image, invoke model, parse output,
// persist result. Each message in a batch is independently failable.
type Worker struct {
	images  ObjectFetcher
	model   ModelInvoker
	results ResultStore

	// recordFailures writes a terminal FAILED record (no payload) for jobs
	// whose identifier was known before the failure. Off by default: absence
	// of a record then means pending-or-lost, matching the polling contract.
	recordFailures bool

	now func() time.Time
}

// NewWorker constructs a Worker around the injected collaborators.
func NewWorker(images ObjectFetcher, model ModelInvoker, results ResultStore, recordFailures bool) *Worker {
	return &Worker{
		images:         images,
		model:          model,
		results:        results,
		recordFailures: recordFailures,
		now:            time.Now,
	}
}

// ProcessBatch runs every message in the delivered batch and returns one
// result per message, in order. A failure on one message never prevents
// processing of its siblings; redelivery policy is decided by the caller
// from the returned results.
func (w *Worker) ProcessBatch(ctx context.Context, msgs []Message) []ItemResult {
	results := make([]ItemResult, 0, len(msgs))
	for _, m := range msgs {
		res := w.processMessage(ctx, m)
		if res.Failed() {
			log.Printf("worker: message %s (analysis %q) failed [%s]: %v",
				res.MessageID, res.AnalysisID, res.Kind, res.Err)
		}
		results = append(results, res)
	}
	return results
}

// processMessage walks one job through fetch, invoke, parse, persist.
func (w *Worker) processMessage(ctx context.Context, m Message) ItemResult {
	res := ItemResult{MessageID: m.ID}

	var job models.AnalysisJob
	if err := json.Unmarshal([]byte(m.Body), &job); err != nil {
		res.Kind, res.Err = FaultMalformedMessage, fmt.Errorf("decode job: %w", err)
		return res
	}
	if job.AnalysisID == "" || job.ObjectKey == "" {
		res.Kind, res.Err = FaultMalformedMessage, fmt.Errorf("job missing analysisId or objectKey: %q", m.Body)
		return res
	}
	res.AnalysisID = job.AnalysisID

	img, err := w.images.Fetch(ctx, job.ObjectKey)
	if err != nil {
		return w.fail(ctx, res, job, FaultTransient, err)
	}

	raw, err := w.model.Invoke(ctx, img, Prompt)
	if err != nil {
		return w.fail(ctx, res, job, FaultTransient, err)
	}

	payload, err := ParsePayload(raw)
	if err != nil {
		return w.fail(ctx, res, job, FaultMalformedPayload, err)
	}

	rec := models.AnalysisResult{
		AnalysisID: job.AnalysisID,
		Status:     models.StatusCompleted,
		Result:     payload,
		ObjectKey:  job.ObjectKey,
		UpdatedAt:  w.now().UTC().Format(time.RFC3339),
	}
	if err := w.results.Put(ctx, rec); err != nil {
		return w.fail(ctx, res, job, FaultTransient, err)
	}
	return res
}

// fail finishes a message as failed and, when enabled, records the terminal
// failure so pollers can distinguish it from still-processing.
func (w *Worker) fail(ctx context.Context, res ItemResult, job models.AnalysisJob, kind FaultKind, err error) ItemResult {
	res.Kind, res.Err = kind, err
	if w.recordFailures {
		rec := models.AnalysisResult{
			AnalysisID: job.AnalysisID,
			Status:     models.StatusFailed,
			ObjectKey:  job.ObjectKey,
			UpdatedAt:  w.now().UTC().Format(time.RFC3339),
		}
		if perr := w.results.Put(ctx, rec); perr != nil {
			log.Printf("worker: recording failure for %s: %v", job.AnalysisID, perr)
		}
	}
	return res
}
