package tests

import (
	"net/http"
	"testing"

	"github.com/dialbook/contacts/api/internal/handler"
	"github.com/dialbook/contacts/api/internal/middleware"
	"github.com/dialbook/contacts/api/internal/repository"
	"github.com/dialbook/contacts/api/internal/service"
	"github.com/dialbook/contacts/api/internal/testing/testdb"
)

// newTestServer builds the full HTTP stack over a test database, mirroring
// the wiring in cmd/server. Tokens from helpers.GenerateToken validate
// against it.
func newTestServer(t *testing.T, tdb *testdb.TestDB) http.Handler {
	t.Helper()

	userRepo := repository.NewUserRepository(tdb.DB)
	contactRepo := repository.NewContactRepository(tdb.DB)

	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo: userRepo,
		TokenService: service.NewTokenService(service.TokenServiceConfig{
			Secret:         "test-secret",
			Issuer:         "contacts-test",
			ExpirationDays: 1,
		}),
	})
	contactService := service.NewContactService(contactRepo)

	authHandler := handler.NewAuthHandler(authService)
	contactHandler := handler.NewContactHandler(contactService)
	healthHandler := handler.NewHealthHandler(tdb.DB)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.HandleFunc("POST /api/users/register", authHandler.Register)
	mux.HandleFunc("POST /api/users/login", authHandler.Login)

	authMiddleware := middleware.Auth(authService)
	mux.Handle("GET /api/users/current", authMiddleware(http.HandlerFunc(authHandler.Current)))
	mux.Handle("GET /api/contacts", authMiddleware(http.HandlerFunc(contactHandler.List)))
	mux.Handle("POST /api/contacts", authMiddleware(http.HandlerFunc(contactHandler.Create)))
	mux.Handle("GET /api/contacts/{id}", authMiddleware(http.HandlerFunc(contactHandler.Get)))
	mux.Handle("PUT /api/contacts/{id}", authMiddleware(http.HandlerFunc(contactHandler.Update)))
	mux.Handle("DELETE /api/contacts/{id}", authMiddleware(http.HandlerFunc(contactHandler.Delete)))

	return middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Recovery,
	)
}
