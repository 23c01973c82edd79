package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrInsufficientPoints.Error() != "insufficient points" {
		t.Errorf("ErrInsufficientPoints has unexpected message: %s", ErrInsufficientPoints.Error())
	}
	if ErrNoSeatsAvailable.Error() != "no seats available" {
		t.Errorf("ErrNoSeatsAvailable has unexpected message: %s", ErrNoSeatsAvailable.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"NotFound", ErrNotFound, 4040},
		{"Forbidden", ErrForbidden, 4030},
		{"InvalidState", ErrInvalidState, 4090},
		{"AlreadyEnrolled", ErrAlreadyEnrolled, 4091},
		{"NoSeatsAvailable", ErrNoSeatsAvailable, 4092},
		{"OutOfStock", ErrOutOfStock, 4093},
		{"InsufficientPoints", ErrInsufficientPoints, 4220},
		{"Conflict", ErrConflict, 5030},
		{"InvalidCategory", ErrInvalidCategory, 4002},
		{"Unauthenticated", ErrUnauthenticated, 4010},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrOutOfStock), 4093},
		{"TypedInsufficient", NewInsufficientPointsError(1, 50, 10), 4220},
		{"TypedConflict", NewConflictError("enroll", 3, nil), 5030},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestLedgerError(t *testing.T) {
	ledgerErr := NewLedgerError("enroll", 7, "activity", 3, ErrNoSeatsAvailable)

	expectedErrMsg := "enroll failed for user 7 on activity 3: no seats available"
	if ledgerErr.Error() != expectedErrMsg {
		t.Errorf("LedgerError.Error() = %s, want %s", ledgerErr.Error(), expectedErrMsg)
	}

	if !errors.Is(ledgerErr, ErrNoSeatsAvailable) {
		t.Errorf("errors.Is(ledgerErr, ErrNoSeatsAvailable) = false, want true")
	}

	var cast *LedgerError
	if !errors.As(ledgerErr, &cast) {
		t.Fatalf("errors.As failed: not a *LedgerError")
	}
	fields := cast.LogFields()
	if fields["error_code"] != CodeNoSeatsAvailable {
		t.Errorf("LogFields error_code = %v, want %d", fields["error_code"], CodeNoSeatsAvailable)
	}
	if fields["resource"] != "activity" {
		t.Errorf("LogFields resource = %v, want activity", fields["resource"])
	}
}

func TestInsufficientPointsError(t *testing.T) {
	err := NewInsufficientPointsError(789, 50, 20)
	if err == nil {
		t.Fatal("NewInsufficientPointsError returned nil")
	}

	expectedErrMsg := "insufficient points for user 789: required 50, available 20"
	if err.Error() != expectedErrMsg {
		t.Errorf("InsufficientPointsError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	if !IsInsufficientPointsError(err) {
		t.Errorf("IsInsufficientPointsError(err) = false, want true")
	}

	wrapped := NewLedgerError("redeem", 789, "product", 1, err)
	if !IsInsufficientPointsError(wrapped) {
		t.Errorf("IsInsufficientPointsError(wrapped) = false, want true")
	}
}

func TestConflictError(t *testing.T) {
	cause := errors.New("could not serialize access")
	err := NewConflictError("redeem", 4, cause)

	if !IsConflictError(err) {
		t.Errorf("IsConflictError(err) = false, want true")
	}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(err, cause) = false, want true")
	}

	expectedErrMsg := "redeem: conflict after 4 attempts: could not serialize access"
	if err.Error() != expectedErrMsg {
		t.Errorf("ConflictError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}
}

func TestIsSkippable(t *testing.T) {
	if !IsSkippable(fmt.Errorf("wrapped: %w", ErrInvalidState)) {
		t.Errorf("IsSkippable(InvalidState) = false, want true")
	}
	if !IsSkippable(ErrNotFound) {
		t.Errorf("IsSkippable(NotFound) = false, want true")
	}
	if IsSkippable(ErrConflict) {
		t.Errorf("IsSkippable(Conflict) = true, want false")
	}
	if IsNotFoundError(ErrForbidden) {
		t.Errorf("IsNotFoundError(ErrForbidden) = true, want false")
	}
}
