// Package main returns the authenticated user's profile from the directory.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/mealsnap/serverless-backend/internal/authz"
	"github.com/mealsnap/serverless-backend/internal/awsutil"
	"github.com/mealsnap/serverless-backend/internal/cognito"
	"github.com/mealsnap/serverless-backend/internal/config"
	"github.com/mealsnap/serverless-backend/internal/httpx"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
)

// App holds the application state, including configuration and the profile repo.
type App struct {
	env      config.Env
	profiles *cognito.ProfileRepo
}

// main initializes the app and starts the Lambda handler.
func main() {
	env := config.Load()
	cfg, _, err := awsutil.Load(context.Background(), env.Region)
	if err != nil {
		log.Fatal(err)
	}
	app := &App{
		env:      env,
		profiles: &cognito.ProfileRepo{IDP: cip.NewFromConfig(cfg), PoolID: env.UserPoolID},
	}
	lambda.Start(app.handler)
}

// handler returns the full template profile, with nulls for unset fields.
func (a *App) handler(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	if httpx.IsPreflight(req) {
		return httpx.NoContent()
	}

	sub, err := authz.Subject(req, a.env.DevBypassAuth)
	if err != nil {
		return httpx.Error(http.StatusUnauthorized, "Unauthorized")
	}

	profile, err := a.profiles.Get(ctx, sub)
	if err != nil {
		if errors.Is(err, cognito.ErrUserNotFound) {
			return httpx.Error(http.StatusNotFound, "User not found")
		}
		log.Printf("getprofile: %v", err)
		return httpx.Error(http.StatusInternalServerError, "Internal Server Error")
	}
	return httpx.JSON(http.StatusOK, profile)
}
