package analysis

import (
	"context"
	"errors"
	"sync"

	"github.com/mealsnap/serverless-backend/internal/models"
)

// Common test errors
var (
	errFakeQueue = errors.New("fake queue error")
	errFakeFetch = errors.New("fake fetch error")
	errFakeModel = errors.New("fake model error")
	errFakeStore = errors.New("fake store error")
)

// fakeQueue implements JobEnqueuer for testing.
type fakeQueue struct {
	mu   sync.Mutex
	Jobs []models.AnalysisJob
	Err  error
}

func (q *fakeQueue) Enqueue(_ context.Context, job models.AnalysisJob) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.Err != nil {
		return q.Err
	}
	q.Jobs = append(q.Jobs, job)
	return nil
}

// fakeFetcher implements ObjectFetcher for testing.
type fakeFetcher struct {
	Objects map[string][]byte
	Err     error
	Fetched []string
}

func (f *fakeFetcher) Fetch(_ context.Context, key string) ([]byte, error) {
	f.Fetched = append(f.Fetched, key)
	if f.Err != nil {
		return nil, f.Err
	}
	b, ok := f.Objects[key]
	if !ok {
		return nil, errFakeFetch
	}
	return b, nil
}

// fakeInvoker implements ModelInvoker for testing.
type fakeInvoker struct {
	Output    string
	Err       error
	CallCount int
	LastImage []byte
}

func (m *fakeInvoker) Invoke(_ context.Context, imageBytes []byte, _ string) (string, error) {
	m.CallCount++
	m.LastImage = imageBytes
	if m.Err != nil {
		return "", m.Err
	}
	return m.Output, nil
}

// fakeStore implements ResultStore and ResultGetter for testing.
type fakeStore struct {
	Records  map[string]models.AnalysisResult
	PutErr   error
	GetErr   error
	PutCount int
}

func newFakeStore() *fakeStore {
	return &fakeStore{Records: make(map[string]models.AnalysisResult)}
}

func (s *fakeStore) Put(_ context.Context, res models.AnalysisResult) error {
	s.PutCount++
	if s.PutErr != nil {
		return s.PutErr
	}
	s.Records[res.AnalysisID] = res
	return nil
}

func (s *fakeStore) Get(_ context.Context, analysisID string) (*models.AnalysisResult, error) {
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	res, ok := s.Records[analysisID]
	if !ok {
		return nil, nil
	}
	return &res, nil
}

// validOutput is a model response that satisfies the output contract.
const validOutput = `{"candidates": [
	{"name": "Chicken Breast Salad", "calories": 550, "protein": 25, "carbs": 60, "fat": 23},
	{"name": "Grilled Chicken Wrap", "calories": 600, "protein": 30, "carbs": 55, "fat": 28},
	{"name": "Caesar Salad", "calories": 500, "protein": 20, "carbs": 70, "fat": 16}
]}`
