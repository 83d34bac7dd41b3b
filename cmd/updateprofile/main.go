// Package main handles onboarding: computes daily nutritional goals from the
// submitted body profile and saves both to the user directory.
package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/mealsnap/serverless-backend/internal/api"
	"github.com/mealsnap/serverless-backend/internal/authz"
	"github.com/mealsnap/serverless-backend/internal/awsutil"
	"github.com/mealsnap/serverless-backend/internal/cognito"
	"github.com/mealsnap/serverless-backend/internal/config"
	"github.com/mealsnap/serverless-backend/internal/httpx"
	"github.com/mealsnap/serverless-backend/internal/nutrition"
	"github.com/mealsnap/serverless-backend/internal/validate"

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

// handler validates the onboarding payload, computes goals, and persists
// everything as directory attributes.
func (a *App) handler(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	if httpx.IsPreflight(req) {
		return httpx.NoContent()
	}

	sub, err := authz.Subject(req, a.env.DevBypassAuth)
	if err != nil {
		return httpx.Error(http.StatusUnauthorized, "Unauthorized")
	}

	var body api.OnboardingRequest
	if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
		return httpx.Error(http.StatusBadRequest, "Bad Request: Invalid JSON format")
	}
	if body.Birthdate == "" || body.Height == nil || body.Weight == nil {
		return httpx.Error(http.StatusBadRequest,
			"Bad Request: Missing fields. Required: birthdate, height, weight, gender, activity_level, goal")
	}

	birthdate, err := validate.BirthdateISO(body.Birthdate)
	if err != nil {
		return httpx.Error(http.StatusBadRequest, "Bad Request: "+err.Error())
	}
	for _, check := range []error{
		validate.Gender(body.Gender),
		validate.ActivityLevel(body.ActivityLevel),
		validate.Goal(body.Goal),
	} {
		if check != nil {
			return httpx.Error(http.StatusBadRequest, "Bad Request: "+check.Error())
		}
	}

	goals, err := nutrition.Calculate(nutrition.Profile{
		Birthdate:     birthdate,
		HeightCm:      float64(*body.Height),
		WeightKg:      float64(*body.Weight),
		Gender:        body.Gender,
		ActivityLevel: body.ActivityLevel,
		Goal:          body.Goal,
	}, time.Now().UTC())
	if err != nil {
		log.Printf("updateprofile: goals calc: %v", err)
		return httpx.Error(http.StatusInternalServerError, "Internal server error")
	}

	update := cognito.OnboardingUpdate{
		Birthdate:     body.Birthdate,
		Gender:        body.Gender,
		Height:        float64(*body.Height),
		Weight:        float64(*body.Weight),
		ActivityLevel: body.ActivityLevel,
		Goal:          body.Goal,
		Goals:         goals,
	}
	if err := a.profiles.UpdateOnboarding(ctx, sub, update); err != nil {
		log.Printf("updateprofile: %v", err)
		return httpx.Error(http.StatusInternalServerError, "Internal server error")
	}

	return httpx.JSON(http.StatusOK, api.OnboardingUpdated{
		Message:         "User profile and goals updated successfully",
		CalculatedGoals: goals,
	})
}
