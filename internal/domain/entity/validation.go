package entity

import (
	"fmt"
	"reflect"
	"regexp"

	domainerrors "hbnb/internal/domain/errors"
	"hbnb/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// emailPattern accepts anything shaped like local@domain.tld.
var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their attribute name (first_name, not FirstName).
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		if name := field.Tag.Get("attr"); name != "" {
			return name
		}

		return field.Name
	})

	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("loose_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return v
}

// check validates record against its struct tags and reports the first
// violated rule as a ValidationError.
func check(record any) error {
	return toValidationError(validate.Struct(record))
}

// checkValue validates a single value against tag, reporting failures as field.
func checkValue(field string, value any, tag string) error {
	err := validate.Var(value, tag)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]

		return domainerrors.NewValidationError(field, fe.Tag(), describe(field, fe.Tag(), fe.Param()))
	}

	return errors.WithStack(err)
}

func toValidationError(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errors.WithStack(err)
	}

	fe := fieldErrs[0]

	return domainerrors.NewValidationError(fe.Field(), fe.Tag(), describe(fe.Field(), fe.Tag(), fe.Param()))
}

func describe(field, tag, param string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, param)
	case "notblank":
		return fmt.Sprintf("%s must not be blank", field)
	case "loose_email":
		return fmt.Sprintf("%s must be a valid email address", field)
	default:
		return fmt.Sprintf("%s failed the %s rule", field, tag)
	}
}
