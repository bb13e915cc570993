package repositories

import (
	"errors"
	"fmt"

	"bakery_console_backend/internal/remote"
)

var (
	// ErrNotFound is returned when a specific record is not found.
	ErrNotFound = errors.New("requested record not found")

	// ErrRemoteError is returned for unexpected remote store failures.
	// It wraps the transport-level cause.
	ErrRemoteError = errors.New("remote store error")
)

// translate maps remote client errors onto repository sentinels so services
// only ever match against this package's errors.
func translate(err error, operation string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, remote.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, operation)
	}
	return fmt.Errorf("%w: %s: %v", ErrRemoteError, operation, err)
}
