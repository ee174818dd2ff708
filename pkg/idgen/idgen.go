// Package idgen produces client-side identifiers for entities that the backend
// has not assigned yet.
package idgen

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator hands out identifiers that are unique within the process.
type Generator interface {
	Next() string
}

// TimeOrdered generates UUIDv7 strings. Values are monotonic within the
// process, so they sort in creation order.
type TimeOrdered struct{}

// Next returns a new UUIDv7 string.
func (TimeOrdered) Next() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Only fails when the random source does.
		return uuid.NewString()
	}
	return id.String()
}

// Sequence yields prefix-1, prefix-2, ... and is meant for deterministic tests.
type Sequence struct {
	Prefix string
	n      atomic.Uint64
}

// Next returns the next value in the sequence.
func (s *Sequence) Next() string {
	return fmt.Sprintf("%s-%d", s.Prefix, s.n.Add(1))
}

// Default is the generator used when none is injected.
var Default Generator = TimeOrdered{}

// New returns an identifier from the default generator.
func New() string {
	return Default.Next()
}
