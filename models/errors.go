package models

import "errors"

// Domain errors surfaced by services. Controllers map these to HTTP
// statuses; anything else becomes a masked 500.
var (
	// ErrProfileNotFound: no profile exists for the given userId.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrProfileExists: conditional put failed because the userId is taken.
	ErrProfileExists = errors.New("profile already exists")
	// ErrProfileIncomplete: an existing profile is missing the birthday or
	// location required to compute a recommendation.
	ErrProfileIncomplete = errors.New("profile missing required fields")
	// ErrNothingToUpdate: a partial update carried zero fields.
	ErrNothingToUpdate = errors.New("no fields to update")
	// ErrRegionNotFound: geocoding returned no result for the region.
	ErrRegionNotFound = errors.New("no geocoding result for region")
)

// FieldErrorDetail is one validation failure on a single field.
type FieldErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the shared error body shape for every endpoint.
type ErrorResponse struct {
	Error   string                        `json:"error"`
	Details map[string][]FieldErrorDetail `json:"details,omitempty"`
	Detail  string                        `json:"detail,omitempty"`
}
