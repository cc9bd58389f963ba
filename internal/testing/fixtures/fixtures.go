// Package fixtures provides test data factories for e2e testing.
//
// Each factory method creates entities with sensible defaults while allowing
// customization via option functions. Factories handle database insertion
// and return fully populated models.
//
// Usage:
//
//	f := fixtures.New(tdb.DB)
//	user := f.CreateUser(t)
//	contact := f.CreateContact(t, user)
package fixtures

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dialbook/contacts/api/internal/database"
	"github.com/dialbook/contacts/api/internal/model"
	"github.com/dialbook/contacts/api/internal/repository"
)

// Factory creates test entities in the database
type Factory struct {
	users    *repository.UserRepository
	contacts *repository.ContactRepository
}

// New creates a new fixture factory
func New(db database.Database) *Factory {
	return &Factory{
		users:    repository.NewUserRepository(db),
		contacts: repository.NewContactRepository(db),
	}
}

// randomID generates a random hex ID
func randomID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// ctx returns a context with timeout
func ctx() context.Context {
	c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	_ = cancel
	return c
}

// ============================================================================
// User Fixtures
// ============================================================================

// UserOpts customizes user creation
type UserOpts struct {
	Name     string
	Email    string
	Password string
}

// CreateUser creates a user with optional customizations. The password is
// hashed at bcrypt.MinCost to keep test suites fast.
func (f *Factory) CreateUser(t *testing.T, opts ...func(*UserOpts)) *model.User {
	t.Helper()

	o := &UserOpts{
		Name:     fmt.Sprintf("User %s", randomID()),
		Email:    fmt.Sprintf("user_%s@test.local", randomID()),
		Password: "testpass123",
	}
	for _, fn := range opts {
		fn(o)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(o.Password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("fixtures: failed to hash password: %v", err)
	}

	user := &model.User{
		Name:  o.Name,
		Email: o.Email,
		Hash:  string(hash),
	}
	if err := f.users.Create(ctx(), user); err != nil {
		t.Fatalf("fixtures: failed to create user: %v", err)
	}
	return user
}

// ============================================================================
// Contact Fixtures
// ============================================================================

// ContactOpts customizes contact creation
type ContactOpts struct {
	Name  string
	Email string
	Phone string
}

// CreateContact creates a contact owned by the given user
func (f *Factory) CreateContact(t *testing.T, owner *model.User, opts ...func(*ContactOpts)) *model.Contact {
	t.Helper()

	o := &ContactOpts{
		Name:  fmt.Sprintf("Contact %s", randomID()),
		Email: fmt.Sprintf("contact_%s@test.local", randomID()),
		Phone: "555-0100",
	}
	for _, fn := range opts {
		fn(o)
	}

	contact := &model.Contact{
		Name:   o.Name,
		Email:  o.Email,
		Phone:  o.Phone,
		UserID: owner.ID,
	}
	if err := f.contacts.Create(ctx(), contact); err != nil {
		t.Fatalf("fixtures: failed to create contact: %v", err)
	}
	return contact
}
