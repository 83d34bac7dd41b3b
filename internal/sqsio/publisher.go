// Package sqsio publishes analysis jobs to the work queue.
package sqsio

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mealsnap/serverless-backend/internal/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// Publisher sends analysis jobs to an SQS queue.
type Publisher struct {
	SQS      *sqs.Client
	QueueURL string
}

// Enqueue sends one job message. It returns only after the queue has
// durably accepted the message, so a successful submit response implies the
// job cannot be silently lost before delivery.
func (p *Publisher) Enqueue(ctx context.Context, job models.AnalysisJob) error {
	body, err := json.Marshal(job)
	if err != nil {
		return err
	}
	_, err = p.SQS.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.QueueURL),
		MessageBody: aws.String(string(body)),
	})
	if err != nil {
		return fmt.Errorf("enqueue analysis job %s: %w", job.AnalysisID, err)
	}
	return nil
}
