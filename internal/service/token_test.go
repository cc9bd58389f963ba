package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dialbook/contacts/api/internal/model"
)

func newTestTokenService() *TokenService {
	return NewTokenService(TokenServiceConfig{
		Secret:         "test-secret",
		Issuer:         "contacts-test",
		ExpirationDays: 30,
	})
}

func testUser() *model.User {
	return &model.User{
		ID:    "user:ada",
		Name:  "Ada",
		Email: "ada@example.com",
	}
}

func TestToken_IssueValidate_RoundTripsIdentity(t *testing.T) {
	svc := newTestTokenService()

	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.UserID != "user:ada" || claims.Name != "Ada" || claims.Email != "ada@example.com" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestToken_WrongSecret_ReturnsInvalidToken(t *testing.T) {
	issuer := newTestTokenService()
	verifier := NewTokenService(TokenServiceConfig{
		Secret:         "a-different-secret",
		Issuer:         "contacts-test",
		ExpirationDays: 30,
	})

	token, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := verifier.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestToken_WrongIssuer_ReturnsInvalidToken(t *testing.T) {
	issuer := NewTokenService(TokenServiceConfig{
		Secret:         "test-secret",
		Issuer:         "someone-else",
		ExpirationDays: 30,
	})
	verifier := newTestTokenService()

	token, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := verifier.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestToken_Expired_ReturnsTokenExpired(t *testing.T) {
	svc := newTestTokenService()

	// Hand-roll an already-expired token signed with the same secret
	now := time.Now()
	claims := &Claims{
		UserID: "user:ada",
		Name:   "Ada",
		Email:  "ada@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "contacts-test",
			Subject:   "user:ada",
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			NotBefore: jwt.NewNumericDate(now.Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}

	if _, err := svc.Validate(token); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestToken_MissingExpiry_ReturnsInvalidToken(t *testing.T) {
	svc := newTestTokenService()

	claims := &Claims{
		UserID: "user:ada",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:  "contacts-test",
			Subject: "user:ada",
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}

	if _, err := svc.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestToken_UnsignedAlgorithm_Rejected(t *testing.T) {
	svc := newTestTokenService()

	claims := &Claims{
		UserID: "user:ada",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "contacts-test",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}

	if _, err := svc.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestToken_Garbage_ReturnsInvalidToken(t *testing.T) {
	svc := newTestTokenService()

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Validate(tok); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Validate(%q): expected ErrInvalidToken, got %v", tok, err)
		}
	}
}

func TestToken_Expiration_ReflectsConfig(t *testing.T) {
	svc := NewTokenService(TokenServiceConfig{
		Secret:         "s",
		Issuer:         "i",
		ExpirationDays: 7,
	})
	if svc.Expiration() != 7*24*time.Hour {
		t.Errorf("unexpected expiration: %v", svc.Expiration())
	}
}
