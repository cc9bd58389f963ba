package model

import "time"

// Contact represents an address-book entry owned by a single user.
// UserID is set at creation and never reassigned.
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	UserID    string    `json:"user_id"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// ContactUpdate carries a partial update. A nil field is left untouched;
// a provided field is re-validated before being applied. There is
// deliberately no owner field here: ownership is immutable.
type ContactUpdate struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// IsEmpty returns true if no fields are set
func (u *ContactUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.Phone == nil
}
