// Package helpers provides common test utilities for e2e testing.
//
// This package includes token generation, HTTP request builders, and
// assertion helpers for testing API endpoints.
package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dialbook/contacts/api/internal/model"
	"github.com/dialbook/contacts/api/internal/service"
)

// ============================================================================
// Token Helpers
// ============================================================================

const (
	testSecret = "test-secret"
	testIssuer = "contacts-test"
)

// NewTestTokenService creates a token service with a fixed test secret
func NewTestTokenService() *service.TokenService {
	return service.NewTokenService(service.TokenServiceConfig{
		Secret:         testSecret,
		Issuer:         testIssuer,
		ExpirationDays: 1,
	})
}

// GenerateToken creates a valid access token for the given user
func GenerateToken(t *testing.T, user *model.User) string {
	t.Helper()

	token, err := NewTestTokenService().Issue(user)
	if err != nil {
		t.Fatalf("helpers: failed to issue token: %v", err)
	}
	return token
}

// GenerateExpiredToken creates an already-expired access token signed with
// the test secret
func GenerateExpiredToken(t *testing.T, user *model.User) string {
	t.Helper()

	now := time.Now()
	claims := jwt.MapClaims{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"iss":   testIssuer,
		"sub":   user.ID,
		"iat":   now.Add(-2 * time.Hour).Unix(),
		"nbf":   now.Add(-2 * time.Hour).Unix(),
		"exp":   now.Add(-1 * time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("helpers: failed to sign token: %v", err)
	}
	return token
}

// ============================================================================
// HTTP Request Helpers
// ============================================================================

// RequestBuilder helps construct HTTP requests for testing
type RequestBuilder struct {
	t       *testing.T
	method  string
	path    string
	body    interface{}
	headers map[string]string
	user    *model.User
}

// NewRequest creates a new request builder
func NewRequest(t *testing.T, method, path string) *RequestBuilder {
	t.Helper()
	return &RequestBuilder{
		t:       t,
		method:  method,
		path:    path,
		headers: make(map[string]string),
	}
}

// WithBody sets the request body (will be JSON encoded)
func (rb *RequestBuilder) WithBody(body interface{}) *RequestBuilder {
	rb.body = body
	return rb
}

// WithHeader adds a header to the request
func (rb *RequestBuilder) WithHeader(key, value string) *RequestBuilder {
	rb.headers[key] = value
	return rb
}

// WithAuth adds a bearer token for the given user
func (rb *RequestBuilder) WithAuth(user *model.User) *RequestBuilder {
	rb.user = user
	return rb
}

// Build creates the HTTP request
func (rb *RequestBuilder) Build() *http.Request {
	rb.t.Helper()

	var bodyReader io.Reader
	if rb.body != nil {
		bodyBytes, err := json.Marshal(rb.body)
		if err != nil {
			rb.t.Fatalf("helpers: failed to marshal body: %v", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(rb.method, rb.path, bodyReader)

	if rb.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range rb.headers {
		req.Header.Set(k, v)
	}

	if rb.user != nil {
		req.Header.Set("Authorization", "Bearer "+GenerateToken(rb.t, rb.user))
	}

	return req
}

// ============================================================================
// Response Assertion Helpers
// ============================================================================

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, resp *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if resp.Code != expected {
		t.Errorf("expected status %d, got %d. Body: %s", expected, resp.Code, resp.Body.String())
	}
}

// AssertClassifiedError validates a classified error response, checking the
// status code and the title derived from it
func AssertClassifiedError(t *testing.T, resp *httptest.ResponseRecorder, expectedStatus int) {
	t.Helper()

	AssertStatus(t, resp, expectedStatus)

	var body model.ErrorResponse
	bodyBytes := resp.Body.Bytes()
	if err := json.Unmarshal(bodyBytes, &body); err != nil {
		t.Fatalf("failed to decode error response: %v. Body: %s", err, string(bodyBytes))
	}

	if expected := model.TitleForStatus(expectedStatus); body.Title != expected {
		t.Errorf("expected title %q, got %q", expected, body.Title)
	}
	if body.Message == "" {
		t.Error("expected a message in the error response")
	}
}

// DecodeResponse decodes the response body into the given struct
func DecodeResponse(t *testing.T, resp *httptest.ResponseRecorder, v interface{}) {
	t.Helper()

	bodyBytes := resp.Body.Bytes()
	if err := json.Unmarshal(bodyBytes, v); err != nil {
		t.Fatalf("failed to decode response: %v. Body: %s", err, string(bodyBytes))
	}
}

// GetDataFromResponse extracts the "data" field from a success envelope
func GetDataFromResponse(t *testing.T, resp *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var response struct {
		Data map[string]interface{} `json:"data"`
	}
	bodyBytes := resp.Body.Bytes()
	if err := json.Unmarshal(bodyBytes, &response); err != nil {
		t.Fatalf("failed to decode response: %v. Body: %s", err, string(bodyBytes))
	}

	return response.Data
}

// ============================================================================
// Utility Helpers
// ============================================================================

// StringPtr returns a pointer to the string
func StringPtr(s string) *string {
	return &s
}
