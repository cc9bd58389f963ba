// Package config manages application configuration for the contacts API.
//
// The config package loads and validates configuration from environment
// variables. All configuration is centralized here to provide a single
// source of truth.
//
// # Configuration Loading
//
// Configuration is loaded from environment variables:
//
//	cfg, err := config.Load()
//
// # Configuration Groups
//
// Configuration is organized into logical groups:
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS origins)
//   - DatabaseConfig: SurrealDB connection settings
//   - TokenConfig: bearer token signing settings
//
// # Environment Variables
//
// Key environment variables:
//
//	SERVER_PORT                  - HTTP server port (default: 8080)
//	DB_HOST / DB_PORT            - SurrealDB endpoint
//	DB_NAMESPACE / DB_DATABASE   - SurrealDB namespace and database
//	DB_USER / DB_PASSWORD        - SurrealDB credentials
//	ACCESS_TOKEN_SECRET          - HMAC signing secret (required)
//	ACCESS_TOKEN_EXPIRATION_DAYS - token lifetime in days (default: 30)
//
// Call Validate after Load; the process should refuse to start on an
// invalid configuration.
package config
