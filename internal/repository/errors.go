package repository

import "errors"

// ErrNotFound is returned when a requested record does not exist in the database.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a conditional update lost against a concurrent writer
// or the record is no longer in the expected state.
var ErrConflict = errors.New("conflict")
