package handler

import (
	"encoding/json"
	"net/http"
)

// SuccessResponse wraps a single resource in the success envelope
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// CollectionResponse wraps a list of resources with its length
type CollectionResponse struct {
	Success bool        `json:"success"`
	Count   int         `json:"count"`
	Data    interface{} `json:"data"`
}

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteData writes a single resource in the success envelope
func WriteData(w http.ResponseWriter, status int, data interface{}) {
	WriteJSON(w, status, SuccessResponse{Success: true, Data: data})
}

// WriteCollection writes a list of resources in the success envelope
func WriteCollection(w http.ResponseWriter, status int, count int, data interface{}) {
	WriteJSON(w, status, CollectionResponse{Success: true, Count: count, Data: data})
}

// DecodeJSON decodes a JSON request body into the given struct
func DecodeJSON(r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

// DecodeJSONLenient decodes a JSON request body, silently discarding fields
// the target does not declare. Used where clients may echo server-managed
// fields back in the payload.
func DecodeJSONLenient(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}
