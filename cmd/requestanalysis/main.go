// Package main accepts an analysis request and enqueues it, returning a
// tracking identifier immediately.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/mealsnap/serverless-backend/internal/analysis"
	"github.com/mealsnap/serverless-backend/internal/api"
	"github.com/mealsnap/serverless-backend/internal/awsutil"
	"github.com/mealsnap/serverless-backend/internal/config"
	"github.com/mealsnap/serverless-backend/internal/httpx"
	"github.com/mealsnap/serverless-backend/internal/sqsio"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// App holds the application state, including configuration and the submitter.
type App struct {
	env       config.Env
	submitter *analysis.Submitter
}

// main initializes the app and starts the Lambda handler.
func main() {
	env := config.Load()
	cfg, _, err := awsutil.Load(context.Background(), env.Region)
	if err != nil {
		log.Fatal(err)
	}
	queue := &sqsio.Publisher{SQS: sqs.NewFromConfig(cfg), QueueURL: env.QueueURL}
	app := &App{env: env, submitter: analysis.NewSubmitter(queue)}
	lambda.Start(app.handler)
}

// handler validates the request body and enqueues the analysis job.
func (a *App) handler(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	if httpx.IsPreflight(req) {
		return httpx.NoContent()
	}

	var body api.AnalysisRequest
	// A body that fails to decode leaves ObjectKey empty, which the
	// submitter rejects as an invalid request.
	_ = json.Unmarshal([]byte(req.Body), &body)

	id, err := a.submitter.Submit(ctx, body.ObjectKey)
	if err != nil {
		if errors.Is(err, analysis.ErrInvalidRequest) {
			return httpx.Error(http.StatusBadRequest, "Bad Request: objectKey is required.")
		}
		log.Printf("requestanalysis: enqueue err: %v", err)
		return httpx.Error(http.StatusInternalServerError, "Internal server error")
	}

	log.Printf("enqueued analysis job %s for %s", id, body.ObjectKey)
	return httpx.JSON(http.StatusAccepted, api.AnalysisAccepted{
		Message:    "Analysis request accepted.",
		AnalysisID: id,
	})
}
