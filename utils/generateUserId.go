package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a random (v4) identifier for users and notes.
func GenerateID() string {
	return uuid.NewString()
}
