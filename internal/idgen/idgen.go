// Package idgen provides injectable identifier sources for stored entities.
package idgen

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator returns a new unique identifier on every call.
type Generator interface {
	NewID() string
}

// UUID generates random version 4 UUIDs.
type UUID struct{}

func (UUID) NewID() string { return uuid.NewString() }

// Sequence generates prefix-1, prefix-2, ... and is safe for concurrent use.
// Tests use it to assert on stable identifiers.
type Sequence struct {
	Prefix string
	n      atomic.Int64
}

// NewSequence creates a Sequence starting at 1.
func NewSequence(prefix string) *Sequence {
	return &Sequence{Prefix: prefix}
}

func (s *Sequence) NewID() string {
	return fmt.Sprintf("%s-%d", s.Prefix, s.n.Add(1))
}
