package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string for bids, participants
// and payment references.
func GenerateID() string {
	return uuid.New().String()
}
