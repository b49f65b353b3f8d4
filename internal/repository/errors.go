package repository

import "errors"

// ErrNotFound is returned when a requested record does not exist in the database.
var ErrNotFound = errors.New("not found")

// ErrPersistenceDisabled is returned when the server runs without a database
// (DATABASE_URL unset). Callers decide whether this is fatal; the contact
// flow treats it as a logged best-effort failure.
var ErrPersistenceDisabled = errors.New("persistence disabled")
