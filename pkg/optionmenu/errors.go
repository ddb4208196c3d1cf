package optionmenu

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrNoItems indicates an item file or source that yielded no rows.
	// The popup itself treats an empty list as "show nothing"; this error is
	// for loaders that want to tell the user.
	ErrNoItems = errors.New("no menu items")

	// ErrHostClosed indicates a host adapter was used after Close.
	ErrHostClosed = errors.New("host already closed")
)

// InfrastructureError represents a failure in the machinery around the
// popup (window creation failed, font missing, config unreadable) rather
// than anything the user did.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "create_window", "load_font")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("optionmenu: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("optionmenu: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}
