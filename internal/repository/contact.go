package repository

import (
	"context"
	"errors"

	"github.com/dialbook/contacts/api/internal/database"
	"github.com/dialbook/contacts/api/internal/model"
)

// ContactRepository handles contact data access
type ContactRepository struct {
	db database.Database
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db database.Database) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create persists a new contact owned by contact.UserID
func (r *ContactRepository) Create(ctx context.Context, contact *model.Contact) error {
	query := `
		CREATE contact CONTENT {
			name: $name,
			email: $email,
			phone: $phone,
			user_id: $user_id,
			created_on: time::now(),
			updated_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"name":    contact.Name,
		"email":   contact.Email,
		"phone":   contact.Phone,
		"user_id": contact.UserID,
	}

	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	records := unwrapRecords(results)
	if len(records) == 0 {
		return errors.New("no result returned")
	}

	created := records[0]
	contact.ID = convertSurrealID(created["id"])
	contact.CreatedOn = parseTime(created["created_on"])
	contact.UpdatedOn = parseTime(created["updated_on"])
	return nil
}

// GetByID retrieves a contact by primary lookup, deliberately NOT scoped
// by owner. Returns nil when no contact exists.
func (r *ContactRepository) GetByID(ctx context.Context, id string) (*model.Contact, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseContact(result)
}

// ListByOwner retrieves all contacts owned by the given user
func (r *ContactRepository) ListByOwner(ctx context.Context, userID string) ([]*model.Contact, error) {
	query := `SELECT * FROM contact WHERE user_id = $user_id ORDER BY created_on DESC`
	vars := map[string]interface{}{"user_id": userID}

	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	contacts := make([]*model.Contact, 0)
	for _, data := range unwrapRecords(results) {
		var contact model.Contact
		if err := decodeRecord(data, &contact); err != nil {
			return nil, err
		}
		contacts = append(contacts, &contact)
	}
	return contacts, nil
}

// Update applies the provided fields to a contact. Ownership (user_id) is
// never part of the SET clause.
func (r *ContactRepository) Update(ctx context.Context, id string, upd model.ContactUpdate) error {
	query := `
		UPDATE type::record($id) SET
			name = IF $name IS NOT NULL THEN $name ELSE name END,
			email = IF $email IS NOT NULL THEN $email ELSE email END,
			phone = IF $phone IS NOT NULL THEN $phone ELSE phone END,
			updated_on = time::now()
	`

	vars := map[string]interface{}{
		"id":    id,
		"name":  ptrToNone(upd.Name),
		"email": ptrToNone(upd.Email),
		"phone": ptrToNone(upd.Phone),
	}

	return r.db.Execute(ctx, query, vars)
}

// DeleteOwned deletes a contact only when both id and owner match, in a
// single scoped query. Returns true if a record was deleted.
func (r *ContactRepository) DeleteOwned(ctx context.Context, id, userID string) (bool, error) {
	query := `DELETE contact WHERE id = type::record($id) AND user_id = $user_id RETURN BEFORE`
	vars := map[string]interface{}{
		"id":      id,
		"user_id": userID,
	}

	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return false, err
	}

	return len(unwrapRecords(results)) > 0, nil
}

func parseContact(result interface{}) (*model.Contact, error) {
	data, err := unwrapRecord(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var contact model.Contact
	if err := decodeRecord(data, &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

// ptrToNone converts a string pointer to its value or nil for queries that
// check $var IS NOT NULL.
func ptrToNone(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}
