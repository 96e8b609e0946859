package usecase

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator is a function type for generating unique IDs.
type IDGenerator func() string

// NewUUIDGenerator returns an IDGenerator backed by random UUIDs.
func NewUUIDGenerator() IDGenerator {
	return func() string {
		return uuid.NewString()
	}
}

// NewSequenceGenerator returns prefix1, prefix2, ... Safe for concurrent use.
func NewSequenceGenerator(prefix string) IDGenerator {
	var n atomic.Uint64
	return func() string {
		return prefix + strconv.FormatUint(n.Add(1), 10)
	}
}
