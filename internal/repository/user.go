package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dialbook/contacts/api/internal/database"
	"github.com/dialbook/contacts/api/internal/model"
)

// UserRepository handles user data access
type UserRepository struct {
	db database.Database
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// Create persists a new user. The email unique index is enforced by the
// store; a violation surfaces as database.ErrDuplicate.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		CREATE user CONTENT {
			name: $name,
			email: $email,
			hash: $hash,
			created_on: time::now(),
			updated_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"name":  user.Name,
		"email": user.Email,
		"hash":  user.Hash,
	}

	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: email already exists", database.ErrDuplicate)
		}
		return err
	}

	records := unwrapRecords(results)
	if len(records) == 0 {
		return errors.New("no result returned")
	}

	created := records[0]
	user.ID = convertSurrealID(created["id"])
	user.CreatedOn = parseTime(created["created_on"])
	user.UpdatedOn = parseTime(created["updated_on"])
	return nil
}

// GetByID retrieves a user by ID. Returns nil when no user exists.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseUser(result)
}

// GetByEmail retrieves a user by email. Returns nil when no user exists.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT * FROM user WHERE email = $email LIMIT 1`
	vars := map[string]interface{}{"email": email}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseUser(result)
}

func parseUser(result interface{}) (*model.User, error) {
	data, err := unwrapRecord(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	// Extract hash before decoding (User.Hash has json:"-")
	hash, _ := data["hash"].(string)

	var user model.User
	if err := decodeRecord(data, &user); err != nil {
		return nil, err
	}
	user.Hash = hash
	return &user, nil
}
