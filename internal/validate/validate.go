package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// rejects values like "aaaaaaaaaa" that pass min-length checks but carry
	// no information
	v.RegisterValidation("noAllRepeatingChars", noAllRepeatingChars)

	return v
}

func noAllRepeatingChars(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}

	first := rune(value[0])
	for _, r := range value {
		if r != first {
			return true
		}
	}

	return false
}

// StructFields validates the struct's `validate` tags and returns a
// field-to-message map suitable for the errors field of an error response.
func StructFields(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	fieldErrs := make(FieldErrors, len(validationErrs))
	for _, fieldErr := range validationErrs {
		field := strings.ToLower(fieldErr.Field()[:1]) + fieldErr.Field()[1:]
		fieldErrs[field] = fmt.Sprintf(
			"failed on the '%s' rule",
			fieldErr.Tag(),
		)
	}

	return fieldErrs
}

// FieldErrors maps a request field name to the rule it failed.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for field := range fe {
		fields = append(fields, field)
	}

	return fmt.Sprintf(
		"validation failed for fields: %s",
		strings.Join(fields, ", "),
	)
}
