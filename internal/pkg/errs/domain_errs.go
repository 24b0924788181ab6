package errs

import "fmt"

// Sentinel errors for the shipping domain taxonomy. Every lifecycle state
// machine and the pickup scheduler reject invalid operations with one of these
// kinds; callers classify them with errors.Is.
var (
	ErrInvalidStateTransition = fmt.Errorf("invalid state transition")
	ErrCapacityExhausted      = fmt.Errorf("capacity exhausted")
	ErrRetryExhausted         = fmt.Errorf("retry exhausted")
	ErrInvalidPickupType      = fmt.Errorf("invalid pickup type")
)

// InvalidStateTransitionError indicates that an operation was invoked while
// the entity is not in one of its precondition states. The entity is left
// unchanged; no transition is partially applied.
type InvalidStateTransitionError struct {
	Entity    string
	From      string
	Requested string
}

// NewInvalidStateTransitionError creates an InvalidStateTransitionError naming
// the entity, its current state, and the requested target state.
func NewInvalidStateTransitionError(entity, from, requested string) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{Entity: entity, From: from, Requested: requested}
}

func (e *InvalidStateTransitionError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s cannot go from %s to %s",
		ErrInvalidStateTransition, e.Entity, e.From, e.Requested))
}

func (e *InvalidStateTransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}

// CapacityExhaustedError indicates that a bounded resource, such as a pickup
// time slot or an operator's daily quota, has no remaining capacity. The
// operation is recoverable: the caller may retry against a different resource.
type CapacityExhaustedError struct {
	Resource string
}

// NewCapacityExhaustedError creates a CapacityExhaustedError naming the
// exhausted resource.
func NewCapacityExhaustedError(resource string) *CapacityExhaustedError {
	return &CapacityExhaustedError{Resource: resource}
}

func (e *CapacityExhaustedError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", ErrCapacityExhausted, e.Resource))
}

func (e *CapacityExhaustedError) Unwrap() error {
	return ErrCapacityExhausted
}

// RetryExhaustedError indicates that a bounded attempt cycle has already
// consumed its maximum number of attempts and can accept no more.
type RetryExhaustedError struct {
	Entity      string
	MaxAttempts int
}

// NewRetryExhaustedError creates a RetryExhaustedError for the given entity
// and attempt limit.
func NewRetryExhaustedError(entity string, maxAttempts int) *RetryExhaustedError {
	return &RetryExhaustedError{Entity: entity, MaxAttempts: maxAttempts}
}

func (e *RetryExhaustedError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s already consumed %d attempts",
		ErrRetryExhausted, e.Entity, e.MaxAttempts))
}

func (e *RetryExhaustedError) Unwrap() error {
	return ErrRetryExhausted
}

// InvalidPickupTypeError indicates that a type-restricted pickup operation was
// invoked against a pickup request of the wrong type, for example assigning a
// direct pickup to a logistics point.
type InvalidPickupTypeError struct {
	Expected string
	Actual   string
}

// NewInvalidPickupTypeError creates an InvalidPickupTypeError naming the
// expected and actual pickup types.
func NewInvalidPickupTypeError(expected, actual string) *InvalidPickupTypeError {
	return &InvalidPickupTypeError{Expected: expected, Actual: actual}
}

func (e *InvalidPickupTypeError) Error() string {
	return sanitize(fmt.Sprintf("%s: operation requires %s but pickup is %s",
		ErrInvalidPickupType, e.Expected, e.Actual))
}

func (e *InvalidPickupTypeError) Unwrap() error {
	return ErrInvalidPickupType
}
