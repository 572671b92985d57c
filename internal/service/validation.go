package service

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	apperrors "teampulse-backend/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"gorm.io/gorm"
)

// Pagination bounds shared by every list endpoint. MaxPage keeps the row offset
// from overflowing.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	MaxPage         = math.MaxInt32 / MaxPageSize
)

const (
	requiredMessage = "This field is required."
	blankMessage    = "This field may not be blank."
)

// NewValidator returns a validator that reports fields by their JSON names
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return v
}

// normalizePage clamps pagination parameters and returns the row offset
func normalizePage(page, pageSize int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize
	}
	return page, pageSize, (page - 1) * pageSize
}

// validateRequest runs struct validation and merges the result with field errors
// found by hand. It returns nil, a FieldErrors value, or an unexpected error.
func validateRequest(v *validator.Validate, req interface{}, extra apperrors.FieldErrors) error {
	fields := apperrors.FieldErrors{}

	if err := v.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validation failed: %w", err)
		}
		for _, fe := range verrs {
			fields[fe.Field()] = fieldMessage(fe)
		}
	}

	for name, msg := range extra {
		if _, ok := fields[name]; !ok {
			fields[name] = msg
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return requiredMessage
	case "notblank":
		return blankMessage
	case "email":
		return "Enter a valid email address."
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	}
	return fmt.Sprintf("Failed on the '%s' rule.", fe.Tag())
}

// requireString records a required or blank error for a string field a full write must carry
func requireString(fields apperrors.FieldErrors, name string, value *string) {
	if value == nil {
		fields[name] = requiredMessage
		return
	}
	if strings.TrimSpace(*value) == "" {
		fields[name] = blankMessage
	}
}

// requireInt records a required error for a missing integer field
func requireInt(fields apperrors.FieldErrors, name string, value *int) {
	if value == nil {
		fields[name] = requiredMessage
	}
}

// lookupError maps a missing row to notFound and wraps anything else
func lookupError(err, notFound error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return fmt.Errorf("failed to get %s: %w", what, err)
}
