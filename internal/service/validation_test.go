package service

import (
	"errors"
	"testing"

	apperrors "parts-tracking-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainsMarkup(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"Hydraulic valve 3/4\"", false},
		{"<b>bold</b>", false},
		{"<script>alert(1)</script>", true},
		{"<ScRiPt src=x>", true},
		{"javascript:alert(1)", true},
		{"img onerror=steal()", true},
		{"btn OnClick=go()", true},
		{"onerror = spaced", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsMarkup(tt.in))
		})
	}
}

func TestValidatorCallID(t *testing.T) {
	v := NewValidator()
	type req struct {
		CallID string `json:"call_id" validate:"callid"`
	}

	for _, ok := range []string{"CALL-1", "call_2024_001", "A"} {
		assert.NoError(t, v.Struct(req{CallID: ok}), ok)
	}
	for _, bad := range []string{"CALL 1", "CALL/1", "call.1", "कॉल"} {
		err := validationError(v.Struct(req{CallID: bad}))
		var validationErr *apperrors.ValidationError
		require.True(t, errors.As(err, &validationErr), bad)
		assert.Equal(t, "call_id", validationErr.Field)
		assert.Contains(t, validationErr.Message, "letters, numbers")
	}
}

func TestValidationErrorMessages(t *testing.T) {
	v := NewValidator()
	type req struct {
		Username string `json:"username" validate:"min=3"`
		Password string `json:"password" validate:"max=4"`
	}

	err := validationError(v.Struct(req{Username: "ab", Password: "ok"}))
	assert.EqualError(t, err, "validation error: username - must be at least 3 characters")

	err = validationError(v.Struct(req{Username: "abc", Password: "toolong"}))
	assert.EqualError(t, err, "validation error: password - must be at most 4 characters")
}
