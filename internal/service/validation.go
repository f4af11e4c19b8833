package service

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	apperrors "parts-tracking-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

var (
	callIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	markupPattern = regexp.MustCompile(`(?i)<script|javascript:|onerror=|onclick=`)
)

// NewValidator returns a validator with the parts ledger tags registered:
// callid accepts letters, digits, dash and underscore; nomarkup refuses
// script-like content. Field names in errors use the json tag.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	_ = v.RegisterValidation("callid", func(fl validator.FieldLevel) bool {
		return callIDPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("nomarkup", func(fl validator.FieldLevel) bool {
		return !markupPattern.MatchString(fl.Field().String())
	})
	return v
}

// ContainsMarkup reports whether s carries script-like content
func ContainsMarkup(s string) bool {
	return markupPattern.MatchString(s)
}

// validationError converts validator output into an apperrors.ValidationError
// naming the first offending field
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperrors.NewValidationError("request", err.Error())
	}
	fe := fieldErrs[0]
	return apperrors.NewValidationError(fe.Field(), describe(fe))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "callid":
		return "may only contain letters, numbers, hyphens and underscores"
	case "nomarkup":
		return "contains invalid characters or scripts"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "eqfield":
		return fmt.Sprintf("must match %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	}
	return fmt.Sprintf("failed %s validation", fe.Tag())
}
