package handler

import (
	"errors"
	"net/http"

	"github.com/dialbook/contacts/api/internal/middleware"
	"github.com/dialbook/contacts/api/internal/model"
	"github.com/dialbook/contacts/api/internal/service"
)

// ContactHandler handles contact CRUD endpoints. All routes are protected;
// the owner is always the authenticated identity, never client input.
type ContactHandler struct {
	contactService *service.ContactService
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// CreateContactRequest represents the create endpoint request body
type CreateContactRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// UpdateContactRequest represents the update endpoint request body.
// Absent fields are left untouched.
type UpdateContactRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// DeleteResult is the data payload of a successful deletion
type DeleteResult struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// DeleteFailure is the bespoke failure shape of the delete endpoint. It
// does not go through the error classifier; the shape is contractual.
type DeleteFailure struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// List handles GET /api/contacts
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserID(r.Context())

	contacts, err := h.contactService.List(r.Context(), ownerID)
	if err != nil {
		MapServiceError(err).WriteJSON(w)
		return
	}

	WriteCollection(w, http.StatusOK, len(contacts), contacts)
}

// Create handles POST /api/contacts
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserID(r.Context())

	var req CreateContactRequest
	if err := DecodeJSON(r, &req); err != nil {
		model.NewValidationError("invalid request body").WriteJSON(w)
		return
	}

	contact, err := h.contactService.Create(r.Context(), ownerID, service.CreateRequest{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		MapServiceError(err).WriteJSON(w)
		return
	}

	WriteData(w, http.StatusCreated, contact)
}

// Get handles GET /api/contacts/{id}
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserID(r.Context())
	id := r.PathValue("id")

	contact, err := h.contactService.Get(r.Context(), ownerID, id)
	if err != nil {
		MapServiceError(err).WriteJSON(w)
		return
	}

	WriteData(w, http.StatusOK, contact)
}

// Update handles PUT /api/contacts/{id}
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserID(r.Context())
	id := r.PathValue("id")

	// Lenient decode: clients often echo the full record back, including
	// user_id. Undeclared fields are discarded; ownership is never part of
	// the update.
	var req UpdateContactRequest
	if err := DecodeJSONLenient(r, &req); err != nil {
		model.NewValidationError("invalid request body").WriteJSON(w)
		return
	}

	contact, err := h.contactService.Update(r.Context(), ownerID, id, model.ContactUpdate{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		MapServiceError(err).WriteJSON(w)
		return
	}

	WriteData(w, http.StatusOK, contact)
}

// Delete handles DELETE /api/contacts/{id}. Unlike the other contact
// routes its failures are written directly, not classified.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserID(r.Context())
	id := r.PathValue("id")

	if err := h.contactService.Delete(r.Context(), ownerID, id); err != nil {
		if errors.Is(err, service.ErrContactNotFound) {
			WriteJSON(w, http.StatusNotFound, DeleteFailure{
				Error: "contact not found",
			})
			return
		}
		WriteJSON(w, http.StatusInternalServerError, DeleteFailure{
			Error:   "failed to delete contact",
			Details: err.Error(),
		})
		return
	}

	WriteData(w, http.StatusOK, DeleteResult{
		ID:      id,
		Message: "contact deleted",
	})
}
