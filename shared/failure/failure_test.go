package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"lend/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "BadRequest",
			err:     failure.BadRequest(errors.New("malformed body")),
			code:    http.StatusBadRequest,
			message: "malformed body",
		},
		{
			name:    "BadRequestFromString",
			err:     failure.BadRequestFromString("Unknown state: FINISHED"),
			code:    http.StatusBadRequest,
			message: "Unknown state: FINISHED",
		},
		{
			name:    "Unauthorized",
			err:     failure.Unauthorized("missing identity"),
			code:    http.StatusUnauthorized,
			message: "missing identity",
		},
		{
			name:    "NotFound",
			err:     failure.NotFound("booking not found"),
			code:    http.StatusNotFound,
			message: "booking not found",
		},
		{
			name:    "Conflict",
			err:     failure.Conflict("email already in use"),
			code:    http.StatusConflict,
			message: "email already in use",
		},
		{
			name:    "Forbidden",
			err:     failure.Forbidden("not yours"),
			code:    http.StatusForbidden,
			message: "not yours",
		},
		{
			name:    "InternalError",
			err:     failure.InternalError(errors.New("db gone")),
			code:    http.StatusInternalServerError,
			message: "db gone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, got)
			}

			if tt.err.Error() != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, tt.err.Error())
			}
		})
	}
}

func TestGetCode_UnknownError(t *testing.T) {
	if got := failure.GetCode(errors.New("plain")); got != http.StatusInternalServerError {
		t.Errorf("expected %d for a plain error, got %d", http.StatusInternalServerError, got)
	}
}

func TestGetCode_WrappedFailure(t *testing.T) {
	wrapped := fmt.Errorf("list bookings: %w", failure.NotFound("booking not found"))

	if got := failure.GetCode(wrapped); got != http.StatusNotFound {
		t.Errorf("expected the wrapped code to surface, got %d", got)
	}
}

func TestPredicates(t *testing.T) {
	if !failure.IsNotFound(failure.NotFound("gone")) {
		t.Error("expected IsNotFound to match a not-found failure")
	}

	if failure.IsNotFound(failure.Conflict("taken")) {
		t.Error("expected IsNotFound to reject a conflict")
	}

	if !failure.IsValidation(failure.InvalidPageParam) {
		t.Error("expected IsValidation to match the page-param failure")
	}

	if !failure.IsConflict(failure.Conflict("taken")) {
		t.Error("expected IsConflict to match a conflict")
	}
}
