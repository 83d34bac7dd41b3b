// Package config loads configuration from environment variables.
package config

import (
	"os"
	"strconv"
	"time"
)

// Worker failure policies. See Env.WorkerOnFailure.
const (
	OnFailureDrop  = "drop"
	OnFailureRetry = "retry"
)

// Env holds the configuration values for the application. Resource
// identifiers are injected by the deployment; a missing one surfaces as a
// dependency fault on first use rather than at startup, so a handler that
// never touches a resource does not need its variable set.
type Env struct {
	Region       string
	Bucket       string
	QueueURL     string
	ModelID      string
	ResultsTable string
	FoodLogTable string
	UserPoolID   string
	ImageBaseURL string
	LogTimezone  string
	PresignTTL   time.Duration

	// WorkerOnFailure selects what the analysis worker does with a message
	// that failed transiently: "drop" logs and moves on (the job is lost),
	// "retry" surfaces an error so the queue redelivers.
	WorkerOnFailure string

	// WorkerRecordFailures writes a terminal FAILED record for jobs that
	// failed after their identifier was known, so pollers can tell failure
	// from still-processing.
	WorkerRecordFailures bool

	DevBypassAuth bool
}

// Load reads the environment variables and returns an Env struct.
func Load() Env {
	ttlSec, _ := strconv.Atoi(get("PRESIGN_TTL_SECONDS", "300"))
	return Env{
		Region:               get("AWS_REGION", "us-east-1"),
		Bucket:               get("BUCKET_NAME", ""),
		QueueURL:             get("SQS_QUEUE_URL", ""),
		ModelID:              get("MODEL_ID", ""),
		ResultsTable:         get("RESULTS_TABLE_NAME", ""),
		FoodLogTable:         get("TABLE_NAME", "food-logs"),
		UserPoolID:           get("USER_POOL_ID", ""),
		ImageBaseURL:         get("IMAGE_BASE_URL", ""),
		LogTimezone:          get("LOG_TIMEZONE", "Asia/Seoul"),
		PresignTTL:           time.Duration(ttlSec) * time.Second,
		WorkerOnFailure:      get("WORKER_ON_FAILURE", OnFailureDrop),
		WorkerRecordFailures: get("WORKER_RECORD_FAILURES", "") == "true",
		DevBypassAuth:        get("DEV_BYPASS_AUTH", "") == "true",
	}
}

// get returns the value of the environment variable k or def if not set.
func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
