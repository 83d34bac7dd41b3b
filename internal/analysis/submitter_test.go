package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestSubmit_EnqueuesOneJobWithFreshID(t *testing.T) {
	queue := &fakeQueue{}
	s := NewSubmitter(queue)

	id, err := s.Submit(context.Background(), "uploads/u1/img.jpg")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("expected UUID-shaped id, got %q: %v", id, err)
	}
	if len(queue.Jobs) != 1 {
		t.Fatalf("expected 1 enqueued job, got %d", len(queue.Jobs))
	}
	if queue.Jobs[0].AnalysisID != id {
		t.Errorf("job carries id %q, submit returned %q", queue.Jobs[0].AnalysisID, id)
	}
	if queue.Jobs[0].ObjectKey != "uploads/u1/img.jpg" {
		t.Errorf("job carries key %q", queue.Jobs[0].ObjectKey)
	}
}

func TestSubmit_IDsAreUnique(t *testing.T) {
	queue := &fakeQueue{}
	s := NewSubmitter(queue)

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id, err := s.Submit(context.Background(), "uploads/u1/img.jpg")
		if err != nil {
			t.Fatalf("Submit: %v", err)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestSubmit_RejectsMissingObjectKey(t *testing.T) {
	for _, key := range []string{"", "   "} {
		queue := &fakeQueue{}
		s := NewSubmitter(queue)

		_, err := s.Submit(context.Background(), key)
		if !errors.Is(err, ErrInvalidRequest) {
			t.Errorf("key %q: expected ErrInvalidRequest, got %v", key, err)
		}
		if len(queue.Jobs) != 0 {
			t.Errorf("key %q: nothing should be enqueued, got %d jobs", key, len(queue.Jobs))
		}
	}
}

func TestSubmit_QueueFaultSurfaces(t *testing.T) {
	queue := &fakeQueue{Err: errFakeQueue}
	s := NewSubmitter(queue)

	_, err := s.Submit(context.Background(), "uploads/u1/img.jpg")
	if !errors.Is(err, errFakeQueue) {
		t.Fatalf("expected queue error to surface, got %v", err)
	}
	if errors.Is(err, ErrInvalidRequest) {
		t.Error("queue fault must not be classified as invalid request")
	}
}
