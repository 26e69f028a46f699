package id

import (
	"strings"

	"github.com/google/uuid"
)

// GetUUID generates a new UUID
func GetUUID() string {
	return uuid.NewString()
}

// GetUUIDWithoutDashes generates a new UUID not horizontal line
func GetUUIDWithoutDashes() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
