package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/mealsnap/serverless-backend/internal/models"
)

// ResultGetter looks up a persisted analysis record. A missing record
// returns (nil, nil).
type ResultGetter interface {
	Get(ctx context.Context, analysisID string) (*models.AnalysisResult, error)
}

// ResultView is the outcome of a poll: either the stored record, or
// not-found, which the polling contract reads as still pending. The worker's
// default policy never writes a failure record, so "pending" also covers
// jobs that were dropped; see the worker's recordFailures knob.
type ResultView struct {
	Found  bool
	Result *models.AnalysisResult
}

// Reader serves polled analysis results by tracking identifier.
type Reader struct {
	results ResultGetter
}

// NewReader constructs a Reader around the given store.
func NewReader(results ResultGetter) *Reader {
	return &Reader{results: results}
}

// GetResult looks up the record for analysisID. The identifier is taken
// verbatim; it is a server-minted random token and carries no subject
// binding to check against.
func (r *Reader) GetResult(ctx context.Context, analysisID string) (ResultView, error) {
	if strings.TrimSpace(analysisID) == "" {
		return ResultView{}, fmt.Errorf("%w: analysisId is required", ErrInvalidRequest)
	}
	rec, err := r.results.Get(ctx, analysisID)
	if err != nil {
		return ResultView{}, err
	}
	if rec == nil {
		return ResultView{}, nil
	}
	return ResultView{Found: true, Result: rec}, nil
}
