package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// ExtractID identifies one recorded extract load
type ExtractID ID

func NewExtractID() ExtractID { return ExtractID(NewID()) }

func (id ExtractID) String() string { return ID(id).String() }

// ParseExtractID parses a string into ExtractID
func ParseExtractID(s string) (ExtractID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("extract ID cannot be empty")
	}
	return ExtractID(s), nil
}
