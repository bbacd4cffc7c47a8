package sim

import "github.com/pkg/errors"

// Contract failures. Unlike the silent no-ops inside command handlers,
// these indicate a caller-side integration bug and abort the operation.
var (
	ErrNotInitialized     = errors.New("kitchen is not initialized")
	ErrAlreadyInitialized = errors.New("kitchen is already initialized")
	ErrUnknownCommand     = errors.New("unsupported command")
)
