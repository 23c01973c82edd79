package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest     = 4000
	CodeInvalidUserID      = 4001
	CodeInvalidCategory    = 4002
	CodeInvalidSeats       = 4003
	CodeInvalidPoints      = 4004
	CodePointsOverflow     = 4005
	CodeUnauthenticated    = 4010
	CodeForbidden          = 4030
	CodeNotFound           = 4040
	CodeInvalidState       = 4090
	CodeAlreadyEnrolled    = 4091
	CodeNoSeatsAvailable   = 4092
	CodeOutOfStock         = 4093
	CodeDuplicateUser      = 4094
	CodeInsufficientPoints = 4220

	// 5xxx - Server errors
	CodeInternalServer = 5000
	CodeConflict       = 5030
)

// Base error types
var (
	// ErrNotFound is returned when a user, activity, enrollment, product or redemption doesn't exist
	ErrNotFound = errors.New("resource not found")

	// ErrForbidden is returned when the caller does not own the record it tries to change
	ErrForbidden = errors.New("operation not allowed for this user")

	// ErrInvalidState is returned when a record is not in the source state a transition requires
	ErrInvalidState = errors.New("invalid state for this operation")

	// ErrAlreadyEnrolled is returned when the user already holds an enrollment for the activity
	ErrAlreadyEnrolled = errors.New("user is already enrolled in this activity")

	// ErrNoSeatsAvailable is returned when the activity has no seat left
	ErrNoSeatsAvailable = errors.New("no seats available")

	// ErrInsufficientPoints is returned when the point balance does not cover the operation
	ErrInsufficientPoints = errors.New("insufficient points")

	// ErrOutOfStock is returned when the product has no stock unit left
	ErrOutOfStock = errors.New("product out of stock")

	// ErrConflict is returned when concurrent writes collided; the operation is safe to retry
	ErrConflict = errors.New("concurrent update conflict, retry the operation")

	// ErrInvalidUserID is returned when an identifier is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrInvalidID is returned when an entity identifier is zero
	ErrInvalidID = errors.New("identifier must be positive")

	// ErrInvalidCategory is returned for an activity category outside the known set
	ErrInvalidCategory = errors.New("invalid activity category")

	// ErrInvalidSeats is returned when seat counts break 0 <= available <= total, total >= 1
	ErrInvalidSeats = errors.New("invalid seat configuration")

	// ErrInvalidPoints is returned for negative point values or a zero redemption price
	ErrInvalidPoints = errors.New("invalid points value")

	// ErrPointsOverflow is returned when a balance change would overflow int64
	ErrPointsOverflow = errors.New("points value would overflow")

	// ErrNegativeBalance is returned when an operation would result in a negative balance
	ErrNegativeBalance = errors.New("points balance cannot be negative")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnauthenticated is returned when no valid identity accompanies the request
	ErrUnauthenticated = errors.New("authentication required")

	// ErrDuplicateUser is returned when the username or email is already taken
	ErrDuplicateUser = errors.New("user already exists")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrInvalidState):
		return CodeInvalidState
	case errors.Is(err, ErrAlreadyEnrolled):
		return CodeAlreadyEnrolled
	case errors.Is(err, ErrNoSeatsAvailable):
		return CodeNoSeatsAvailable
	case errors.Is(err, ErrOutOfStock):
		return CodeOutOfStock
	case errors.Is(err, ErrInsufficientPoints), errors.Is(err, ErrNegativeBalance):
		return CodeInsufficientPoints
	case errors.Is(err, ErrConflict):
		return CodeConflict
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	case errors.Is(err, ErrInvalidUserID), errors.Is(err, ErrInvalidID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidCategory):
		return CodeInvalidCategory
	case errors.Is(err, ErrInvalidSeats):
		return CodeInvalidSeats
	case errors.Is(err, ErrInvalidPoints):
		return CodeInvalidPoints
	case errors.Is(err, ErrPointsOverflow):
		return CodePointsOverflow
	case errors.Is(err, ErrUnauthenticated):
		return CodeUnauthenticated
	case errors.Is(err, ErrInvalidRequest), errors.Is(err, ErrConstraintViolation):
		return CodeInvalidRequest
	default:
		return CodeInternalServer
	}
}

// LedgerError describes a failed ledger transition with the entities it touched
type LedgerError struct {
	Operation string
	UserID    uint64
	Resource  string
	ID        uint64
	Err       error
}

// Error implements the error interface for LedgerError
func (e *LedgerError) Error() string {
	return fmt.Sprintf("%s failed for user %d on %s %d: %v",
		e.Operation, e.UserID, e.Resource, e.ID, e.Err)
}

// Unwrap returns the underlying error
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *LedgerError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "ledger_error",
		"operation":   e.Operation,
		"user_id":     e.UserID,
		"resource":    e.Resource,
		"resource_id": e.ID,
		"error":       e.Err.Error(),
		"error_code":  ErrorCode(e.Err),
	}
}

// NewLedgerError wraps err with the transition context
func NewLedgerError(operation string, userID uint64, resource string, id uint64, err error) error {
	return &LedgerError{
		Operation: operation,
		UserID:    userID,
		Resource:  resource,
		ID:        id,
		Err:       err,
	}
}

// InsufficientPointsError provides detailed error information for an uncovered point change
type InsufficientPointsError struct {
	UserID    uint64
	Required  int64
	Available int64
}

// Error implements the error interface
func (e *InsufficientPointsError) Error() string {
	return fmt.Sprintf("insufficient points for user %d: required %d, available %d",
		e.UserID, e.Required, e.Available)
}

// Is checks if the target error is an ErrInsufficientPoints
func (e *InsufficientPointsError) Is(target error) bool {
	return target == ErrInsufficientPoints
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientPointsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_points",
		"user_id":    e.UserID,
		"required":   e.Required,
		"available":  e.Available,
		"error_code": CodeInsufficientPoints,
	}
}

// NewInsufficientPointsError creates a new detailed insufficient points error
func NewInsufficientPointsError(userID uint64, required, available int64) error {
	return &InsufficientPointsError{
		UserID:    userID,
		Required:  required,
		Available: available,
	}
}

// ConflictError reports a unit of work that kept colliding with concurrent writers
type ConflictError struct {
	Operation string
	Attempts  int
	Err       error
}

// Error implements the error interface
func (e *ConflictError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: conflict after %d attempts", e.Operation, e.Attempts)
	}
	return fmt.Sprintf("%s: conflict after %d attempts: %v", e.Operation, e.Attempts, e.Err)
}

// Is checks if the target error is an ErrConflict
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// Unwrap returns the last underlying error
func (e *ConflictError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ConflictError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type": "conflict",
		"operation":  e.Operation,
		"attempts":   e.Attempts,
		"error_code": CodeConflict,
	}
	if e.Err != nil {
		fields["error"] = e.Err.Error()
	}
	return fields
}

// NewConflictError creates a retryable conflict error
func NewConflictError(operation string, attempts int, err error) error {
	return &ConflictError{
		Operation: operation,
		Attempts:  attempts,
		Err:       err,
	}
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflictError checks if the error is a retryable conflict
func IsConflictError(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsInsufficientPointsError checks if the error is related to an uncovered balance change
func IsInsufficientPointsError(err error) bool {
	return errors.Is(err, ErrInsufficientPoints)
}

// IsInvalidStateError checks if the error reports a wrong source state
func IsInvalidStateError(err error) bool {
	return errors.Is(err, ErrInvalidState)
}

// IsSkippable reports whether a bulk action may skip the record instead of aborting
func IsSkippable(err error) bool {
	return errors.Is(err, ErrInvalidState) || errors.Is(err, ErrNotFound)
}
