package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "team"}
		assert.Equal(t, "team not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "team"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrTeamNotFound, ErrPulseLogNotFound))
	})

	t.Run("wrapped errors keep identity", func(t *testing.T) {
		wrapped := fmt.Errorf("lookup failed: %w", ErrFeedbackNotFound)
		assert.True(t, errors.Is(wrapped, ErrFeedbackNotFound))
		assert.True(t, IsNotFound(wrapped))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrTeamNotFound))
		assert.False(t, IsNotFound(ErrLastAdmin))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		assert.Equal(t, "workload already exists with this value", ErrWorkloadExists.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "team"}
		assert.Equal(t, "team already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrEmailExists))
		assert.False(t, IsAlreadyExists(ErrTeamNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := NewValidationError("message", "This field may not be blank.")
		assert.Equal(t, "validation error: message - This field may not be blank.", err.Error())
		assert.True(t, IsValidation(err))
	})

	t.Run("without field", func(t *testing.T) {
		err := NewValidationError("", "bad input")
		assert.Equal(t, "validation error: bad input", err.Error())
	})

	t.Run("field errors count as validation", func(t *testing.T) {
		err := FieldErrors{"username": "taken", "email": "taken"}
		assert.True(t, IsValidation(err))
		assert.Contains(t, err.Error(), "2 invalid field(s)")
	})
}

func TestFields(t *testing.T) {
	t.Run("single field", func(t *testing.T) {
		assert.Equal(t, map[string]string{"is_staff": ErrLastAdmin.Message}, Fields(ErrLastAdmin))
	})

	t.Run("non field", func(t *testing.T) {
		assert.Equal(t, map[string]string{"non_field_errors": "oops"}, Fields(NewValidationError("", "oops")))
	})

	t.Run("field errors are copied", func(t *testing.T) {
		src := FieldErrors{"value": "workload with this value already exists"}
		out := Fields(fmt.Errorf("create: %w", src))
		out["value"] = "changed"
		assert.Equal(t, "workload with this value already exists", src["value"])
	})

	t.Run("other errors", func(t *testing.T) {
		assert.Nil(t, Fields(ErrTeamNotFound))
	})
}

func TestAuthErrors(t *testing.T) {
	assert.True(t, IsAuthentication(ErrInvalidCredentials))
	assert.True(t, IsAuthentication(ErrUserDisabled))
	assert.False(t, IsAuthentication(ErrAdminRequired))
	assert.True(t, IsAuthorization(ErrAdminRequired))
	assert.True(t, IsConfiguration(NewConfigurationError("missing")))
	assert.Equal(t, "Invalid credentials", ErrInvalidCredentials.Error())
}
