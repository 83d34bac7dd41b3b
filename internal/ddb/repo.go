// Package ddb provides DynamoDB repositories for analysis results and food logs.
package ddb

import (
	"context"
	"fmt"
	"time"

	"github.com/mealsnap/serverless-backend/internal/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// NowISO returns the current time in ISO8601 format.
func NowISO() string { return time.Now().UTC().Format(time.RFC3339) }

// logIDFormat is fixed-width (microsecond precision) so log_ids compare
// lexically in timestamp order.
const logIDFormat = "2006-01-02T15:04:05.000000Z"

// LogID renders t as a food-log sort key.
func LogID(t time.Time) string { return t.UTC().Format(logIDFormat) }

// ResultRepo stores analysis results keyed by analysisId.
type ResultRepo struct {
	DB    *dynamodb.Client
	Table string
}

// Put writes the result record, replacing any prior record for the same
// identifier. A full replace keyed by analysisId makes reprocessing after
// queue redelivery idempotent at the record level.
func (r *ResultRepo) Put(ctx context.Context, res models.AnalysisResult) error {
	item, err := attributevalue.MarshalMap(res)
	if err != nil {
		return err
	}
	_, err = r.DB.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.Table),
		Item:      item,
	})
	return err
}

// Get looks up the result for an identifier. A missing record returns
// (nil, nil): the job is still pending, never an error.
func (r *ResultRepo) Get(ctx context.Context, analysisID string) (*models.AnalysisResult, error) {
	out, err := r.DB.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.Table),
		Key: map[string]types.AttributeValue{
			"analysisId": &types.AttributeValueMemberS{Value: analysisID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get result %s: %w", analysisID, err)
	}
	if out.Item == nil {
		return nil, nil
	}
	var res models.AnalysisResult
	if err := attributevalue.UnmarshalMap(out.Item, &res); err != nil {
		return nil, fmt.Errorf("unmarshal result %s: %w", analysisID, err)
	}
	return &res, nil
}

// FoodLogRepo stores food log entries under (user_id, log_id).
type FoodLogRepo struct {
	DB    *dynamodb.Client
	Table string
}

// Put writes one food log entry.
func (r *FoodLogRepo) Put(ctx context.Context, e models.FoodLogEntry) error {
	item, err := attributevalue.MarshalMap(e)
	if err != nil {
		return err
	}
	_, err = r.DB.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.Table),
		Item:      item,
	})
	return err
}

// QueryRange returns a user's entries whose log_id falls in
// [startLogID, endLogID], oldest first. startKey resumes a previous page;
// the returned lastKey is non-nil when more pages remain.
func (r *FoodLogRepo) QueryRange(ctx context.Context, userID, startLogID, endLogID string, startKey map[string]string) ([]models.FoodLogEntry, map[string]string, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.Table),
		KeyConditionExpression: aws.String("user_id = :uid AND log_id BETWEEN :start AND :end"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid":   &types.AttributeValueMemberS{Value: userID},
			":start": &types.AttributeValueMemberS{Value: startLogID},
			":end":   &types.AttributeValueMemberS{Value: endLogID},
		},
		ScanIndexForward: aws.Bool(true),
	}
	if len(startKey) > 0 {
		esk, err := attributevalue.MarshalMap(startKey)
		if err != nil {
			return nil, nil, err
		}
		in.ExclusiveStartKey = esk
	}

	out, err := r.DB.Query(ctx, in)
	if err != nil {
		return nil, nil, fmt.Errorf("query food log for %s: %w", userID, err)
	}

	items := make([]models.FoodLogEntry, 0, len(out.Items))
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, nil, fmt.Errorf("unmarshal food log for %s: %w", userID, err)
	}

	var lastKey map[string]string
	if len(out.LastEvaluatedKey) > 0 {
		if err := attributevalue.UnmarshalMap(out.LastEvaluatedKey, &lastKey); err != nil {
			return nil, nil, err
		}
	}
	return items, lastKey, nil
}
