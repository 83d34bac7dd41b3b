// Package api contains types for the API requests and responses.
package api

import (
	"github.com/mealsnap/serverless-backend/internal/models"
	"github.com/mealsnap/serverless-backend/internal/nutrition"
)

// UploadURLResponse carries a presigned PUT URL for an image upload together
// with the object key the client must pass to the analysis endpoint.
type UploadURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"`
	Filename  string `json:"filename"`
}

// AnalysisRequest is the body of a submit-analysis call.
type AnalysisRequest struct {
	ObjectKey string `json:"objectKey"`
}

// AnalysisAccepted is returned when an analysis job has been enqueued.
type AnalysisAccepted struct {
	Message    string `json:"message"`
	AnalysisID string `json:"analysisId"`
}

// PendingResponse is returned while no result record exists yet.
type PendingResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// FoodLogRequest is the body of a save-food-log call.
type FoodLogRequest struct {
	FoodName *string        `json:"food_name"`
	Calories *models.Number `json:"calories"`
	Protein  *models.Number `json:"protein"`
	Carbs    *models.Number `json:"carbs"`
	Fat      *models.Number `json:"fat"`
	MealType string         `json:"meal_type"`
	EatenAt  string         `json:"eaten_at"`
	ImageKey string         `json:"imageUrl"` // object key, joined onto IMAGE_BASE_URL
}

// FoodLogSaved is returned after a food log entry is stored.
type FoodLogSaved struct {
	Message string              `json:"message"`
	Item    models.FoodLogEntry `json:"item"`
}

// FoodLogPage is one page of food log entries.
type FoodLogPage struct {
	Items            []models.FoodLogEntry `json:"items"`
	LastEvaluatedKey map[string]string     `json:"last_evaluated_key"`
}

// OnboardingRequest is the body of an onboarding profile update.
type OnboardingRequest struct {
	Birthdate     string         `json:"birthdate"`
	Height        *models.Number `json:"height"`
	Weight        *models.Number `json:"weight"`
	Gender        string         `json:"gender"`
	ActivityLevel string         `json:"activity_level"`
	Goal          string         `json:"goal"`
}

// OnboardingUpdated is returned after the profile and computed goals are saved.
type OnboardingUpdated struct {
	Message         string          `json:"message"`
	CalculatedGoals nutrition.Goals `json:"calculatedGoals"`
}
