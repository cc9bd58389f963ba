// Package handler provides HTTP request handlers for the contacts API.
//
// Each handler struct encapsulates the dependencies needed to serve requests
// for one feature area (authentication, contacts).
//
// # Handler Pattern
//
// All handlers follow a consistent pattern:
//
//   - Constructor function (NewXxxHandler) accepts its service dependency
//   - Methods handle specific HTTP endpoints
//   - Response helpers from response.go standardize output format
//   - Service errors are classified by MapServiceError into the central
//     error wire shape
//
// # Response Format
//
// Successful contact responses carry a success envelope:
//
//	{"success": true, "data": {...}}
//
// Collections additionally carry a count. Failures routed through the
// classifier produce {"title", "message", "stackTrace"} bodies; contact
// deletion has its own bespoke failure shape (see ContactHandler.Delete).
//
// # Authentication
//
// Protected handlers rely on the auth middleware having validated the
// bearer token; they read the identity back via middleware.GetClaims.
package handler
