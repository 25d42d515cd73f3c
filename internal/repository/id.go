package repository

import (
	"strings"

	"github.com/google/uuid"
)

// IDGenerator returns the random suffix of a new record id
type IDGenerator func() string

// NewIDGenerator yields 16 hex characters taken from a random UUID.
func NewIDGenerator() IDGenerator {
	return func() string {
		return strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
	}
}

// PrefixedID builds ids such as "thread-1f0c3a9e7d2b4c55".
func PrefixedID(kind string, gen IDGenerator) string {
	return kind + "-" + gen()
}
