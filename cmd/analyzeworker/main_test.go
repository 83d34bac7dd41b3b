package main

import (
	"context"
	"errors"
	"testing"

	"github.com/mealsnap/serverless-backend/internal/analysis"
	"github.com/mealsnap/serverless-backend/internal/config"
	"github.com/mealsnap/serverless-backend/internal/models"

	"github.com/aws/aws-lambda-go/events"
)

type stubFetcher struct{ err error }

func (s *stubFetcher) Fetch(context.Context, string) ([]byte, error) {
	return []byte("jpeg"), s.err
}

type stubInvoker struct{}

func (stubInvoker) Invoke(context.Context, []byte, string) (string, error) {
	return `{"candidates": [
		{"name": "A Dish", "calories": 1, "protein": 1, "carbs": 1, "fat": 1},
		{"name": "B Dish", "calories": 2, "protein": 2, "carbs": 2, "fat": 2},
		{"name": "C Dish", "calories": 3, "protein": 3, "carbs": 3, "fat": 3}
	]}`, nil
}

type stubStore struct{}

func (stubStore) Put(context.Context, models.AnalysisResult) error { return nil }

func sqsEvent(bodies ...string) events.SQSEvent {
	var ev events.SQSEvent
	for i, b := range bodies {
		ev.Records = append(ev.Records, events.SQSMessage{MessageId: string(rune('a' + i)), Body: b})
	}
	return ev
}

func TestHandler_DropPolicySwallowsFailures(t *testing.T) {
	app := &App{
		env:    config.Env{WorkerOnFailure: config.OnFailureDrop},
		worker: analysis.NewWorker(&stubFetcher{err: errors.New("s3 down")}, stubInvoker{}, stubStore{}, false),
	}
	if err := app.handler(context.Background(), sqsEvent(`{"analysisId":"id-1","objectKey":"k"}`)); err != nil {
		t.Fatalf("drop policy must acknowledge the batch, got %v", err)
	}
}

func TestHandler_RetryPolicySurfacesTransientFailures(t *testing.T) {
	app := &App{
		env:    config.Env{WorkerOnFailure: config.OnFailureRetry},
		worker: analysis.NewWorker(&stubFetcher{err: errors.New("s3 down")}, stubInvoker{}, stubStore{}, false),
	}
	if err := app.handler(context.Background(), sqsEvent(`{"analysisId":"id-1","objectKey":"k"}`)); err == nil {
		t.Fatal("retry policy must surface the failed batch")
	}
}

func TestHandler_RetryPolicyIgnoresMalformedMessages(t *testing.T) {
	app := &App{
		env:    config.Env{WorkerOnFailure: config.OnFailureRetry},
		worker: analysis.NewWorker(&stubFetcher{}, stubInvoker{}, stubStore{}, false),
	}
	// A permanently malformed envelope must not trigger redelivery.
	if err := app.handler(context.Background(), sqsEvent("not json")); err != nil {
		t.Fatalf("malformed message must be dropped under retry policy, got %v", err)
	}
}

func TestHandler_SuccessAcknowledges(t *testing.T) {
	app := &App{
		env:    config.Env{WorkerOnFailure: config.OnFailureRetry},
		worker: analysis.NewWorker(&stubFetcher{}, stubInvoker{}, stubStore{}, false),
	}
	if err := app.handler(context.Background(), sqsEvent(`{"analysisId":"id-1","objectKey":"k"}`)); err != nil {
		t.Fatalf("handler: %v", err)
	}
}
