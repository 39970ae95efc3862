package domain

import (
	"github.com/google/uuid"
)

// NewID returns a collision-resistant identifier for new projects and tasks.
// Creation timestamps are deliberately not used as identifiers; two records
// created within the same millisecond must still get distinct ids.
func NewID() string {
	return uuid.NewString()
}
