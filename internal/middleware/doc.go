// Package middleware provides HTTP middleware for the contacts API.
//
// # Available Middleware
//
//   - RequestID: unique request identifier, echoed in X-Request-ID
//   - Logger: structured request logging via slog
//   - Recovery: panic recovery returning a classified 500
//   - CORS: origin allow-listing and preflight handling
//   - Auth: bearer token validation and identity extraction
//
// # Authentication
//
// The auth middleware validates the Authorization bearer token and stores
// the embedded identity in the request context. Protected handlers read it
// back through helper functions:
//
//	userID := middleware.GetUserID(r.Context())
//	claims := middleware.GetClaims(r.Context())
//
// # Context Values
//
// Middleware sets context values accessible via helper functions:
//
//   - GetUserID(ctx): authenticated user ID
//   - GetUserEmail(ctx): authenticated user email
//   - GetClaims(ctx): full token identity
//   - GetRequestID(ctx): unique request identifier
package middleware
