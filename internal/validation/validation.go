// Package validation wraps a shared go-playground validator configured with
// the NHPlus input rules. Failures are reported as common.ErrorValidation so
// callers can tell them apart from storage errors.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/hitec/nhplus/internal/common"
)

// MinPhoneLength is the shortest phone number accepted at input.
const MinPhoneLength = 5

var phonePattern = regexp.MustCompile(`^\+?[0-9 ()/\-]+$`)

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return NotBlank(fl.Field().String())
		})
		_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return Phone(fl.Field().String())
		})
		instance = v
	})
	return instance
}

// NotBlank reports whether s contains anything besides whitespace.
func NotBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

// Phone reports whether s looks like a phone number: at least MinPhoneLength
// characters, an optional leading '+', then digits, spaces, '-', '/', '(' or ')'.
func Phone(s string) bool {
	s = strings.TrimSpace(s)
	return len(s) >= MinPhoneLength && phonePattern.MatchString(s)
}

// Struct validates v against its `validate` tags.
func Struct(v any) error {
	err := get().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		fields := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
		}
		return Errorf("invalid fields: %s", strings.Join(fields, ", "))
	}
	return fmt.Errorf("%w: %w", common.ErrorValidation, err)
}

// Errorf builds a validation error with a formatted message.
func Errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", common.ErrorValidation, fmt.Sprintf(format, args...))
}
