package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/markme/markme-api/internal/repository"
)

var (
	ErrMissingField = errors.New("missing required field")
	ErrInvalidField = errors.New("invalid field")
	ErrNotFound     = repository.ErrNotFound
)

// FieldError names the input fields that failed validation. It unwraps to
// ErrMissingField or ErrInvalidField.
type FieldError struct {
	Kind   error
	Fields []string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, strings.Join(e.Fields, ", "))
}

func (e *FieldError) Unwrap() error {
	return e.Kind
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Slot ids become part of a dotted update path in the store.
	_ = v.RegisterValidation("slotkey", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return !strings.Contains(s, ".") && !strings.HasPrefix(s, "$")
	})
	return v
}

// check runs struct validation and folds the result into a FieldError.
// Missing fields win over malformed ones.
func check(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	var missing, invalid []string
	for _, fe := range verrs {
		name := strings.ToLower(fe.Field())
		if fe.Tag() == "required" {
			missing = append(missing, name)
		} else {
			invalid = append(invalid, name)
		}
	}
	if len(missing) > 0 {
		return &FieldError{Kind: ErrMissingField, Fields: missing}
	}
	return &FieldError{Kind: ErrInvalidField, Fields: invalid}
}
