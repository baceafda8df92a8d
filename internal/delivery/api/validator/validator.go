// Package validator adapts go-playground/validator to echo.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports fields by their JSON names and
// compares decimal amounts numerically.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()

			return f
		}

		return nil
	}, decimal.Decimal{})

	return &CustomValidator{validate: v}
}

// Validate validates a struct and returns a user-friendly error.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		field := fe.Namespace()
		if idx := strings.Index(field, "."); idx >= 0 {
			field = field[idx+1:]
		}

		switch fe.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", field))
		case "uuid", "uuid4":
			messages = append(messages, fmt.Sprintf("%s must be a valid UUID", field))
		case "gte":
			messages = append(messages, fmt.Sprintf("%s must be at least %s", field, fe.Param()))
		case "gt":
			messages = append(messages, fmt.Sprintf("%s must be greater than %s", field, fe.Param()))
		case "min":
			messages = append(messages, fmt.Sprintf("%s must be at least %s", field, fe.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", field))
		}
	}

	return fmt.Errorf("%s", strings.Join(messages, "; "))
}
