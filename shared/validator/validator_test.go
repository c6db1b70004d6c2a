package validator_test

import (
	"strings"
	"testing"

	"lend/shared/failure"
	"lend/shared/validator"
)

type newBookingBody struct {
	ItemID int64  `validate:"required,gt=0" json:"itemId"`
	Start  string `validate:"required"      json:"start"`
	End    string `validate:"required"      json:"end"`
}

type newUserBody struct {
	Name  string `validate:"required"       json:"name"`
	Email string `validate:"required,email" json:"email"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *newUserBody
		expectError bool
	}{
		{
			name: "valid struct",
			data: &newUserBody{
				Name:  "Anna",
				Email: "anna@example.com",
			},
		},
		{
			name: "missing required field",
			data: &newUserBody{
				Email: "anna@example.com",
			},
			expectError: true,
		},
		{
			name: "invalid email",
			data: &newUserBody{
				Name:  "Anna",
				Email: "not-an-email",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected a validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidate_FromReader(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{
			name: "valid json body",
			body: `{"itemId": 4, "start": "2026-04-01T10:00:00", "end": "2026-04-01T12:00:00"}`,
		},
		{
			name:        "malformed json",
			body:        `{"itemId": `,
			expectError: true,
		},
		{
			name:        "missing fields",
			body:        `{"itemId": 4}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data newBookingBody
			err := validator.Validate(strings.NewReader(tt.body), &data)

			if tt.expectError && err == nil {
				t.Error("expected an error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidate_ReturnsBadRequest(t *testing.T) {
	var data newUserBody

	err := validator.Validate(strings.NewReader(`{"name": "Anna"}`), &data)
	if err == nil {
		t.Fatal("expected a validation error")
	}

	if !failure.IsValidation(err) {
		t.Errorf("expected a bad-request failure, got code %d", failure.GetCode(err))
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("anna@example.com", "required,email"); err != nil {
		t.Errorf("expected no error for a valid email, got %v", err)
	}

	if err := validator.ValidateVar("", "required"); err == nil {
		t.Error("expected an error for an empty required value")
	}
}
