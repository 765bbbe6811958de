// Sentinel errors shared across the repositories.  Handlers compare
// against these to choose HTTP status codes instead of string-matching
// driver errors.
package repository

import "errors"

// ErrNotFound is returned when a requested record does not exist.
// Handlers should translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned when registering a user with an email
// that is already taken. Handlers should translate this into an HTTP
// 409 response.
var ErrEmailExists = errors.New("email already exists")
