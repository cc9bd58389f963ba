// Package service implements the business logic layer for the contacts API.
//
// The service package contains all domain logic, validation rules, and
// orchestration of repository operations. Services are the primary
// abstraction between HTTP handlers and data access.
//
// # Service Pattern
//
// All services follow a consistent pattern:
//
//   - Constructor function (NewXxxService) accepts its dependencies
//   - Methods implement business operations with proper validation
//   - Errors are returned as sentinel errors checked with errors.Is
//   - Context is passed through for cancellation and request-scoped values
//
// # Repository Interfaces
//
// Services define their own repository interfaces, allowing:
//
//   - Easy mocking for unit tests
//   - Decoupling from the SurrealDB implementation
//   - Clear contracts for data access requirements
//
// # Ownership Model
//
// ContactService enforces per-user isolation: read and update paths check
// existence by primary lookup before checking ownership, while delete
// combines both into a single owner-scoped query. The resulting status
// codes differ on purpose; see ContactService for details.
package service
