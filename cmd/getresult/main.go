// Package main serves polled analysis results by tracking identifier.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/mealsnap/serverless-backend/internal/analysis"
	"github.com/mealsnap/serverless-backend/internal/api"
	"github.com/mealsnap/serverless-backend/internal/awsutil"
	"github.com/mealsnap/serverless-backend/internal/config"
	"github.com/mealsnap/serverless-backend/internal/ddb"
	"github.com/mealsnap/serverless-backend/internal/httpx"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// App holds the application state, including configuration and the reader.
type App struct {
	env    config.Env
	reader *analysis.Reader
}

// main initializes the app and starts the Lambda handler.
func main() {
	env := config.Load()
	cfg, _, err := awsutil.Load(context.Background(), env.Region)
	if err != nil {
		log.Fatal(err)
	}
	repo := &ddb.ResultRepo{DB: dynamodb.NewFromConfig(cfg), Table: env.ResultsTable}
	app := &App{env: env, reader: analysis.NewReader(repo)}
	lambda.Start(app.handler)
}

// handler looks up the analysis record. No record yet means the job is still
// in progress (or was dropped by the worker's default failure policy), so
// the client gets 202 rather than 404.
func (a *App) handler(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	if httpx.IsPreflight(req) {
		return httpx.NoContent()
	}

	view, err := a.reader.GetResult(ctx, req.PathParameters["analysisId"])
	if err != nil {
		if errors.Is(err, analysis.ErrInvalidRequest) {
			return httpx.Error(http.StatusBadRequest, "Bad Request: analysisId is missing from the path.")
		}
		log.Printf("getresult: %v", err)
		return httpx.Error(http.StatusInternalServerError, "Internal Server Error")
	}
	if !view.Found {
		return httpx.JSON(http.StatusAccepted, api.PendingResponse{
			Status:  "PENDING",
			Message: "Analysis is still in progress.",
		})
	}
	return httpx.JSON(http.StatusOK, view.Result)
}
