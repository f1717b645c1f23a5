package service

import "errors"

// ErrInvalidInput is returned when a create or patch request carries a value
// the entity cannot hold (e.g. an empty project name).
var ErrInvalidInput = errors.New("invalid input")
