// Package main queries a user's food log: today's entries by default, or a
// calendar month with ?year=YYYY&month=MM, paginated.
package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"
	_ "time/tzdata" // display timezone lookup on minimal Lambda images

	"github.com/mealsnap/serverless-backend/internal/api"
	"github.com/mealsnap/serverless-backend/internal/authz"
	"github.com/mealsnap/serverless-backend/internal/awsutil"
	"github.com/mealsnap/serverless-backend/internal/config"
	"github.com/mealsnap/serverless-backend/internal/ddb"
	"github.com/mealsnap/serverless-backend/internal/httpx"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// App holds the application state, including configuration and the log repo.
type App struct {
	env  config.Env
	loc  *time.Location
	logs *ddb.FoodLogRepo
}

// main initializes the app and starts the Lambda handler.
func main() {
	env := config.Load()
	loc, err := time.LoadLocation(env.LogTimezone)
	if err != nil {
		log.Fatalf("bad LOG_TIMEZONE %q: %v", env.LogTimezone, err)
	}
	cfg, _, err := awsutil.Load(context.Background(), env.Region)
	if err != nil {
		log.Fatal(err)
	}
	app := &App{
		env:  env,
		loc:  loc,
		logs: &ddb.FoodLogRepo{DB: dynamodb.NewFromConfig(cfg), Table: env.FoodLogTable},
	}
	lambda.Start(app.handler)
}

// handler resolves the requested range in the display timezone, converts it
// to UTC log_id bounds, and queries ascending.
func (a *App) handler(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	if httpx.IsPreflight(req) {
		return httpx.NoContent()
	}

	sub, err := authz.Subject(req, a.env.DevBypassAuth)
	if err != nil {
		return httpx.Error(http.StatusUnauthorized, "Unauthorized")
	}

	params := req.QueryStringParameters
	start, end, ok := a.resolveRange(params["year"], params["month"])
	if !ok {
		return httpx.Error(http.StatusBadRequest, "Invalid year or month")
	}

	var startKey map[string]string
	if lk := params["last_key"]; lk != "" {
		if err := json.Unmarshal([]byte(lk), &startKey); err != nil {
			return httpx.Error(http.StatusBadRequest, "Invalid last_key")
		}
	}

	items, lastKey, err := a.logs.QueryRange(ctx, sub, ddb.LogID(start), ddb.LogID(end), startKey)
	if err != nil {
		log.Printf("getfoodlog: query err: %v", err)
		return httpx.Error(http.StatusInternalServerError, "Internal Server Error")
	}

	return httpx.JSON(http.StatusOK, api.FoodLogPage{Items: items, LastEvaluatedKey: lastKey})
}

// resolveRange picks the query window: the given calendar month when both
// params are present, otherwise today. Bounds are inclusive, so end is the
// last representable instant of the window at log_id precision.
func (a *App) resolveRange(yearStr, monthStr string) (start, end time.Time, ok bool) {
	now := time.Now().In(a.loc)

	if yearStr != "" && monthStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return time.Time{}, time.Time{}, false
		}
		month, err := strconv.Atoi(monthStr)
		if err != nil || month < 1 || month > 12 {
			return time.Time{}, time.Time{}, false
		}
		start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, a.loc)
		end = start.AddDate(0, 1, 0).Add(-time.Microsecond)
		return start, end, true
	}

	start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, a.loc)
	end = start.AddDate(0, 0, 1).Add(-time.Microsecond)
	return start, end, true
}
