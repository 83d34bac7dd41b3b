package authz

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/aws/aws-lambda-go/events"
)

func reqWithJWTClaims(claims map[string]string) events.APIGatewayV2HTTPRequest {
	var req events.APIGatewayV2HTTPRequest
	req.RequestContext.Authorizer = &events.APIGatewayV2HTTPRequestContextAuthorizerDescription{
		JWT: &events.APIGatewayV2HTTPRequestContextAuthorizerJWTDescription{Claims: claims},
	}
	return req
}

func TestSubject_FromAuthorizerClaims(t *testing.T) {
	req := reqWithJWTClaims(map[string]string{"sub": "user-123"})
	sub, err := Subject(req, false)
	if err != nil {
		t.Fatal(err)
	}
	if sub != "user-123" {
		t.Errorf("sub = %q", sub)
	}
}

func TestSubject_DevBypassHeader(t *testing.T) {
	req := events.APIGatewayV2HTTPRequest{Headers: map[string]string{"X-User-Sub": "dev-1"}}

	if _, err := Subject(req, false); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("bypass disabled: expected ErrUnauthorized, got %v", err)
	}

	sub, err := Subject(req, true)
	if err != nil {
		t.Fatal(err)
	}
	if sub != "dev-1" {
		t.Errorf("sub = %q", sub)
	}
}

func TestSubject_BearerFallback(t *testing.T) {
	payload := base64.RawURLEncoding.EncodeToString([]byte(`{"sub":"user-9"}`))
	token := "eyJhbGciOiJIUzI1NiJ9." + payload + ".sig"
	req := events.APIGatewayV2HTTPRequest{Headers: map[string]string{"authorization": "Bearer " + token}}

	sub, err := Subject(req, false)
	if err != nil {
		t.Fatal(err)
	}
	if sub != "user-9" {
		t.Errorf("sub = %q", sub)
	}
}

func TestSubject_Unauthorized(t *testing.T) {
	cases := []struct {
		name string
		req  events.APIGatewayV2HTTPRequest
	}{
		{"no context", events.APIGatewayV2HTTPRequest{}},
		{"empty claims", reqWithJWTClaims(map[string]string{})},
		{"garbage bearer", events.APIGatewayV2HTTPRequest{Headers: map[string]string{"Authorization": "Bearer not.a.jwt"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Subject(tc.req, false); !errors.Is(err, ErrUnauthorized) {
				t.Errorf("expected ErrUnauthorized, got %v", err)
			}
		})
	}
}
