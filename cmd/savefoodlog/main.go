// Package main stores one food log entry for the authenticated user.
package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/mealsnap/serverless-backend/internal/api"
	"github.com/mealsnap/serverless-backend/internal/authz"
	"github.com/mealsnap/serverless-backend/internal/awsutil"
	"github.com/mealsnap/serverless-backend/internal/config"
	"github.com/mealsnap/serverless-backend/internal/ddb"
	"github.com/mealsnap/serverless-backend/internal/httpx"
	"github.com/mealsnap/serverless-backend/internal/models"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// App holds the application state, including configuration and the log repo.
type App struct {
	env  config.Env
	logs *ddb.FoodLogRepo
}

// main initializes the app and starts the Lambda handler.
func main() {
	env := config.Load()
	cfg, _, err := awsutil.Load(context.Background(), env.Region)
	if err != nil {
		log.Fatal(err)
	}
	app := &App{
		env:  env,
		logs: &ddb.FoodLogRepo{DB: dynamodb.NewFromConfig(cfg), Table: env.FoodLogTable},
	}
	lambda.Start(app.handler)
}

// handler validates the entry and writes it keyed by (user, creation time).
func (a *App) handler(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	if httpx.IsPreflight(req) {
		return httpx.NoContent()
	}

	sub, err := authz.Subject(req, a.env.DevBypassAuth)
	if err != nil {
		return httpx.Error(http.StatusUnauthorized, "Unauthorized: User ID not found in token.")
	}

	var body api.FoodLogRequest
	if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
		return httpx.Error(http.StatusBadRequest, "Bad Request: Invalid JSON format.")
	}
	if body.FoodName == nil || body.Calories == nil || body.Protein == nil || body.Carbs == nil || body.Fat == nil {
		return httpx.Error(http.StatusBadRequest,
			"Bad Request: Missing one or more required fields. Required: food_name, calories, protein, carbs, fat")
	}

	now := time.Now().UTC()
	entry := models.FoodLogEntry{
		UserID:    sub,
		LogID:     ddb.LogID(now),
		FoodName:  *body.FoodName,
		Calories:  *body.Calories,
		Protein:   *body.Protein,
		Carbs:     *body.Carbs,
		Fat:       *body.Fat,
		MealType:  body.MealType,
		EatenAt:   body.EatenAt,
		CreatedAt: now.Format(time.RFC3339),
	}
	if entry.MealType == "" {
		entry.MealType = "ETC"
	}
	if entry.EatenAt == "" {
		entry.EatenAt = entry.CreatedAt
	}

	if body.ImageKey != "" {
		if a.env.ImageBaseURL == "" {
			log.Printf("savefoodlog: IMAGE_BASE_URL is not set")
			return httpx.Error(http.StatusInternalServerError, "Internal Server Error: Image URL configuration is missing.")
		}
		entry.ImageURL = strings.TrimRight(a.env.ImageBaseURL, "/") + "/" + strings.TrimLeft(body.ImageKey, "/")
	}

	if err := a.logs.Put(ctx, entry); err != nil {
		log.Printf("savefoodlog: put err: %v", err)
		return httpx.Error(http.StatusInternalServerError, "Internal Server Error")
	}

	return httpx.JSON(http.StatusCreated, api.FoodLogSaved{
		Message: "Food log saved successfully.",
		Item:    entry,
	})
}
