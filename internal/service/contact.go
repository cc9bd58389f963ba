package service

import (
	"context"
	"strings"

	"github.com/dialbook/contacts/api/internal/model"
)

// ContactRepository defines the interface for contact storage
type ContactRepository interface {
	Create(ctx context.Context, contact *model.Contact) error
	GetByID(ctx context.Context, id string) (*model.Contact, error)
	ListByOwner(ctx context.Context, userID string) ([]*model.Contact, error)
	Update(ctx context.Context, id string, upd model.ContactUpdate) error
	DeleteOwned(ctx context.Context, id, userID string) (bool, error)
}

// ContactService performs ownership-checked CRUD over the contact store.
//
// Read and update paths check existence by primary lookup before checking
// ownership, so a non-owner probing a foreign id gets ErrNotContactOwner
// rather than ErrContactNotFound. Delete instead scopes the lookup by
// owner in a single query and reports ErrContactNotFound for both "absent"
// and "not yours". Both behaviors are contractual; keep the asymmetry.
type ContactService struct {
	contactRepo ContactRepository
}

// NewContactService creates a new contact service
func NewContactService(contactRepo ContactRepository) *ContactService {
	return &ContactService{contactRepo: contactRepo}
}

// List returns all contacts owned by the given user
func (s *ContactService) List(ctx context.Context, ownerID string) ([]*model.Contact, error) {
	return s.contactRepo.ListByOwner(ctx, ownerID)
}

// CreateRequest represents a contact creation request
type CreateRequest struct {
	Name  string
	Email string
	Phone string
}

// Create persists a new contact owned by ownerID
func (s *ContactService) Create(ctx context.Context, ownerID string, req CreateRequest) (*model.Contact, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	phone := strings.TrimSpace(req.Phone)

	if name == "" || email == "" || phone == "" {
		return nil, ErrMissingContactFields
	}

	contact := &model.Contact{
		Name:   name,
		Email:  email,
		Phone:  phone,
		UserID: ownerID,
	}

	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// Get returns a contact if it exists and is owned by ownerID.
// Existence is checked first, by primary lookup.
func (s *ContactService) Get(ctx context.Context, ownerID, id string) (*model.Contact, error) {
	contact, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}
	if contact.UserID != ownerID {
		return nil, ErrNotContactOwner
	}
	return contact, nil
}

// Update applies a partial update to an owned contact. Provided fields are
// re-validated; ownership is immutable and never part of the update.
func (s *ContactService) Update(ctx context.Context, ownerID, id string, upd model.ContactUpdate) (*model.Contact, error) {
	contact, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}
	if contact.UserID != ownerID {
		return nil, ErrNotContactOwner
	}

	if err := validateUpdate(upd); err != nil {
		return nil, err
	}

	if upd.IsEmpty() {
		return contact, nil
	}

	if err := s.contactRepo.Update(ctx, id, upd); err != nil {
		return nil, err
	}

	updated, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		// Deleted out from under us between the ownership check and the
		// re-read; the design accepts this race.
		return nil, ErrContactNotFound
	}
	return updated, nil
}

// Delete removes an owned contact. The lookup is scoped by id AND owner in
// a single query, so "absent" and "owned by someone else" are reported
// identically as ErrContactNotFound.
func (s *ContactService) Delete(ctx context.Context, ownerID, id string) error {
	deleted, err := s.contactRepo.DeleteOwned(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrContactNotFound
	}
	return nil
}

func validateUpdate(upd model.ContactUpdate) error {
	for _, field := range []*string{upd.Name, upd.Email, upd.Phone} {
		if field != nil && strings.TrimSpace(*field) == "" {
			return ErrEmptyContactField
		}
	}
	return nil
}
