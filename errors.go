package hashgo

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRange is returned by Number/NumberSync when min > max.
	ErrInvalidRange = errors.New("invalid range")

	// ErrProviderNotFound is returned when neither the requested algorithm
	// nor the configured default resolves to a provider.
	ErrProviderNotFound = errors.New("provider not found")

	// ErrSyncUnsupported is returned by the blocking methods when the resolved
	// provider has no synchronous digest.
	ErrSyncUnsupported = errors.New("synchronous hashing not supported")

	// ErrInvalidDigest is returned when a digest (possibly rewritten by an
	// after hook) cannot be parsed as hexadecimal.
	ErrInvalidDigest = errors.New("invalid digest")
)

// InvalidRangeError reports a min/max pair with min > max.
//
// errors.Is(err, ErrInvalidRange) reports true.
type InvalidRangeError struct {
	Min int64
	Max int64
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range: min (%d) must not be greater than max (%d)", e.Min, e.Max)
}

func (e *InvalidRangeError) Unwrap() error { return ErrInvalidRange }

// ProviderNotFoundError reports a missing default provider.
//
// errors.Is(err, ErrProviderNotFound) reports true.
type ProviderNotFoundError struct {
	// Name is the default algorithm that could not be resolved.
	Name string
	// Requested is the algorithm the caller asked for.
	Requested string
	// Sync is true for the blocking methods.
	Sync  bool
	cause error
}

func (e *ProviderNotFoundError) Error() string {
	kind := "default algorithm"
	if e.Sync {
		kind = "default sync algorithm"
	}
	return fmt.Sprintf("%s %q not found (requested %q)", kind, e.Name, e.Requested)
}

func (e *ProviderNotFoundError) Unwrap() []error {
	if e.cause != nil {
		return []error{ErrProviderNotFound, e.cause}
	}
	return []error{ErrProviderNotFound}
}

// SyncUnsupportedError reports a provider without a synchronous digest.
//
// errors.Is(err, ErrSyncUnsupported) reports true.
type SyncUnsupportedError struct {
	Provider string
}

func (e *SyncUnsupportedError) Error() string {
	return fmt.Sprintf("provider %q does not support synchronous hashing; use Hash or Number instead, or choose a different algorithm", e.Provider)
}

func (e *SyncUnsupportedError) Unwrap() error { return ErrSyncUnsupported }

// fallbackMessage is the warning text emitted when a requested algorithm is
// missing. Callers match on "Invalid algorithm", "not found" and
// "Falling back".
func fallbackMessage(requested, fallback string) string {
	return fmt.Sprintf("Invalid algorithm %q not found. Falling back to %q.", requested, fallback)
}
