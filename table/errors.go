package table

import (
	"errors"
	"fmt"
)

var (
	// ErrStorage is returned when the engine rejects a statement or its
	// execution fails (syntax error, constraint violation not absorbed by
	// the conflict policy, I/O failure, locking).
	ErrStorage = errors.New("lath: storage error")

	// ErrSerialize is returned when a record's fields cannot be converted
	// into bindable scalar values.
	ErrSerialize = errors.New("lath: serialization error")

	// ErrDeserialize is returned when a result row's columns cannot be
	// converted back into a record's fields.
	ErrDeserialize = errors.New("lath: deserialization error")
)

// storageError wraps an engine error with ErrStorage. The engine's native
// error stays reachable through errors.As / Unwrap.
func storageError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrStorage, err)
}

func serializeError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrSerialize, fmt.Sprintf(format, args...))
}

func deserializeError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrDeserialize, fmt.Sprintf(format, args...))
}
