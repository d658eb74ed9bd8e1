package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// trip or line item does not exist in the profile's storage.
// Page handlers map this to the empty-state view; the JSON API maps it to 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. blank trip name, missing travel origin).
// Handlers should map this to HTTP 422 with inline form feedback.
var ErrValidation = errors.New("validation error")
