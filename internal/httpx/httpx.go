// Package httpx provides helper functions for creating HTTP responses.
package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

// corsHeaders is the permissive CORS header set attached to every response.
// The API is called from a browser frontend on a different origin.
func corsHeaders() map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Headers": "Content-Type,X-Amz-Date,Authorization,X-Api-Key,X-Amz-Security-Token,X-Requested-With",
		"Access-Control-Allow-Methods": "GET,POST,OPTIONS",
	}
}

// JSON creates a JSON HTTP response with the given status code and value.
func JSON(status int, v any) (events.APIGatewayV2HTTPResponse, error) {
	b, _ := json.Marshal(v)
	h := corsHeaders()
	h["Content-Type"] = "application/json"
	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers:    h,
		Body:       string(b),
	}, nil
}

// Error creates a JSON HTTP error response with the given status code and message.
func Error(status int, msg string) (events.APIGatewayV2HTTPResponse, error) {
	return JSON(status, map[string]string{"error": msg})
}

// NoContent creates an empty 204 response carrying the CORS headers, used to
// answer preflight requests.
func NoContent() (events.APIGatewayV2HTTPResponse, error) {
	return events.APIGatewayV2HTTPResponse{
		StatusCode: http.StatusNoContent,
		Headers:    corsHeaders(),
	}, nil
}

// IsPreflight reports whether req is a CORS preflight request.
func IsPreflight(req events.APIGatewayV2HTTPRequest) bool {
	return req.RequestContext.HTTP.Method == http.MethodOptions
}

// Method returns the HTTP method of the request.
func Method(req events.APIGatewayV2HTTPRequest) string {
	return req.RequestContext.HTTP.Method
}
