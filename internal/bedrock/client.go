// Package bedrock wraps a multimodal model invocation on the Bedrock runtime.
package bedrock

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

const (
	anthropicVersion = "bedrock-2023-05-31"
	maxTokens        = 1024
)

// InvokeModelAPI is the slice of the Bedrock runtime client the wrapper needs.
type InvokeModelAPI interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// Client invokes a fixed multimodal model with an image and a text prompt.
type Client struct {
	Runtime InvokeModelAPI
	ModelID string
}

type imageSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

type contentBlock struct {
	Type   string       `json:"type"`
	Source *imageSource `json:"source,omitempty"`
	Text   string       `json:"text,omitempty"`
}

type message struct {
	Role    string         `json:"role"`
	Content []contentBlock `json:"content"`
}

type invokeRequest struct {
	AnthropicVersion string    `json:"anthropic_version"`
	MaxTokens        int       `json:"max_tokens"`
	Messages         []message `json:"messages"`
}

type invokeResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

// Invoke sends a single-turn multimodal message (JPEG image + prompt) and
// returns the model's raw text output. Faults propagate unmodified; retry is
// the caller's concern.
func (c *Client) Invoke(ctx context.Context, imageBytes []byte, promptText string) (string, error) {
	body, err := json.Marshal(buildRequest(imageBytes, promptText))
	if err != nil {
		return "", err
	}
	out, err := c.Runtime.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(c.ModelID),
		ContentType: aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return "", fmt.Errorf("invoke model %s: %w", c.ModelID, err)
	}
	return parseResponse(out.Body)
}

// buildRequest assembles the anthropic-messages request body with the image
// base64-encoded as the API requires.
func buildRequest(imageBytes []byte, promptText string) invokeRequest {
	return invokeRequest{
		AnthropicVersion: anthropicVersion,
		MaxTokens:        maxTokens,
		Messages: []message{{
			Role: "user",
			Content: []contentBlock{
				{
					Type: "image",
					Source: &imageSource{
						Type:      "base64",
						MediaType: "image/jpeg",
						Data:      base64.StdEncoding.EncodeToString(imageBytes),
					},
				},
				{Type: "text", Text: promptText},
			},
		}},
	}
}

// parseResponse pulls the first text block out of the model response body.
func parseResponse(body []byte) (string, error) {
	var resp invokeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("decode model response: %w", err)
	}
	if len(resp.Content) == 0 {
		return "", errors.New("model response has no content")
	}
	return resp.Content[0].Text, nil
}
