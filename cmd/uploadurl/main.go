// Package main issues presigned S3 PUT URLs for meal image uploads.
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/mealsnap/serverless-backend/internal/api"
	"github.com/mealsnap/serverless-backend/internal/authz"
	"github.com/mealsnap/serverless-backend/internal/awsutil"
	"github.com/mealsnap/serverless-backend/internal/config"
	"github.com/mealsnap/serverless-backend/internal/httpx"
	"github.com/mealsnap/serverless-backend/internal/s3io"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// App holds the application state, including configuration and the presigner.
type App struct {
	env config.Env
	s3p s3io.Presigner
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
			o.UsePathStyle = true
		}
	})
	app := &App{env: env, s3p: s3.NewPresignClient(s3c)}
	lambda.Start(app.handler)
}

// handler mints a fresh upload key for the authenticated user and presigns a
// PUT for it. The returned objectKey is what the client later submits for
// analysis.
func (a *App) handler(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	if httpx.IsPreflight(req) {
		return httpx.NoContent()
	}
	if httpx.Method(req) != http.MethodGet {
		return httpx.Error(http.StatusMethodNotAllowed, "Method not allowed")
	}

	sub, err := authz.Subject(req, a.env.DevBypassAuth)
	if err != nil {
		return httpx.Error(http.StatusUnauthorized, "Unauthorized: User ID not found in token")
	}

	key, filename := s3io.NewUploadKey(sub)
	url, err := s3io.PresignPut(ctx, a.s3p, a.env.Bucket, key, sub, a.env.PresignTTL)
	if err != nil {
		log.Printf("uploadurl: presign err: %v", err)
		return httpx.Error(http.StatusInternalServerError, "Internal Server Error")
	}

	return httpx.JSON(http.StatusOK, api.UploadURLResponse{
		UploadURL: url,
		ObjectKey: key,
		Filename:  filename,
	})
}
