// Package main consumes analysis jobs from the queue: fetch the image,
// invoke the model, parse its output, persist the result.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/mealsnap/serverless-backend/internal/analysis"
	"github.com/mealsnap/serverless-backend/internal/awsutil"
	"github.com/mealsnap/serverless-backend/internal/bedrock"
	"github.com/mealsnap/serverless-backend/internal/config"
	"github.com/mealsnap/serverless-backend/internal/ddb"
	"github.com/mealsnap/serverless-backend/internal/s3io"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// App holds the application state, including configuration and the worker.
type App struct {
	env    config.Env
	worker *analysis.Worker
}

// main initializes the app and starts the Lambda handler.
func main() {
	env := config.Load()
	cfg, endpoint, err := awsutil.Load(context.Background(), env.Region)
	if err != nil {
		log.Fatal(err)
	}

	s3c := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.UsePathStyle = true // localstack/dev friendliness
		}
	})

	worker := analysis.NewWorker(
		&s3io.Store{S3: s3c, Bucket: env.Bucket},
		&bedrock.Client{Runtime: bedrockruntime.NewFromConfig(cfg), ModelID: env.ModelID},
		&ddb.ResultRepo{DB: dynamodb.NewFromConfig(cfg), Table: env.ResultsTable},
		env.WorkerRecordFailures,
	)
	app := &App{env: env, worker: worker}
	lambda.Start(app.handler)
}

// handler processes one SQS delivery batch. With the default "drop" policy
// it always acknowledges the batch and failed jobs are lost; with "retry" it
// returns an error when any message failed transiently, so the queue
// redelivers the batch. Malformed messages and malformed model output never
// trigger redelivery under either policy.
func (a *App) handler(ctx context.Context, ev events.SQSEvent) error {
	msgs := make([]analysis.Message, 0, len(ev.Records))
	for _, rec := range ev.Records {
		msgs = append(msgs, analysis.Message{ID: rec.MessageId, Body: rec.Body})
	}

	results := a.worker.ProcessBatch(ctx, msgs)

	retryable := 0
	for _, r := range results {
		if r.Retryable() {
			retryable++
		}
	}
	if retryable > 0 && a.env.WorkerOnFailure == config.OnFailureRetry {
		return fmt.Errorf("%d of %d messages failed transiently", retryable, len(results))
	}
	return nil
}
