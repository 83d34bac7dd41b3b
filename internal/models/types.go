// Package models defines the data models used in the application.
package models

// AnalysisStatus represents the terminal state of an analysis job.
type AnalysisStatus string

// Possible values for AnalysisStatus. Absence of a record means the job is
// still pending; no PENDING record is ever written.
const (
	StatusCompleted AnalysisStatus = "COMPLETED"
	StatusFailed    AnalysisStatus = "FAILED"
)

// AnalysisJob is the queue message linking a tracking identifier to the
// uploaded image it should analyze. The identifier is minted server-side
// and never accepted from the caller.
type AnalysisJob struct {
	AnalysisID string `json:"analysisId"`
	ObjectKey  string `json:"objectKey"`
}

// CandidateDish is one dish estimate produced by the model.
type CandidateDish struct {
	Name     string `json:"name" dynamodbav:"name"`
	Calories Number `json:"calories" dynamodbav:"calories"`
	Protein  Number `json:"protein" dynamodbav:"protein"`
	Carbs    Number `json:"carbs" dynamodbav:"carbs"`
	Fat      Number `json:"fat" dynamodbav:"fat"`
}

// AnalysisPayload is the structured output the model must return: an ordered
// list of dish candidates.
type AnalysisPayload struct {
	Candidates []CandidateDish `json:"candidates" dynamodbav:"candidates"`
}

// AnalysisResult is the record persisted once per analysis identifier.
type AnalysisResult struct {
	AnalysisID string           `json:"analysisId" dynamodbav:"analysisId"` // partition key
	Status     AnalysisStatus   `json:"status" dynamodbav:"status"`
	Result     *AnalysisPayload `json:"result,omitempty" dynamodbav:"result,omitempty"`
	ObjectKey  string           `json:"objectKey" dynamodbav:"objectKey"`
	UpdatedAt  string           `json:"updatedAt" dynamodbav:"updatedAt"` // ISO8601
}

// FoodLogEntry is one logged meal for a user.
type FoodLogEntry struct {
	UserID    string `json:"user_id" dynamodbav:"user_id"` // partition key
	LogID     string `json:"log_id" dynamodbav:"log_id"`   // sort key; ISO8601 creation time
	FoodName  string `json:"food_name" dynamodbav:"food_name"`
	Calories  Number `json:"calories" dynamodbav:"calories"`
	Protein   Number `json:"protein" dynamodbav:"protein"`
	Carbs     Number `json:"carbs" dynamodbav:"carbs"`
	Fat       Number `json:"fat" dynamodbav:"fat"`
	MealType  string `json:"meal_type" dynamodbav:"meal_type"` // breakfast/lunch/dinner/snack/ETC
	EatenAt   string `json:"eaten_at" dynamodbav:"eaten_at"`
	CreatedAt string `json:"created_at" dynamodbav:"created_at"`
	ImageURL  string `json:"image_url,omitempty" dynamodbav:"image_url,omitempty"`
}

// UserProfile is the fixed-shape profile returned to clients. Every field is
// always present; unset attributes render as null.
type UserProfile struct {
	Sub            *string `json:"sub"`
	Email          *string `json:"email"`
	EmailVerified  *string `json:"email_verified"`
	Birthdate      *string `json:"birthdate"`
	Gender         *string `json:"gender"`
	Height         *Number `json:"height"`
	Weight         *Number `json:"weight"`
	ActivityLevel  *string `json:"activity_level"`
	Goal           *string `json:"goal"`
	TargetCalories *Number `json:"target_calories"`
	TargetCarbs    *Number `json:"target_carbs"`
	TargetProtein  *Number `json:"target_protein"`
	TargetFats     *Number `json:"target_fats"`
}
