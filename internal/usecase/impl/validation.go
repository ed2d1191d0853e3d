package impl

import (
	"reflect"
	"regexp"
	"strings"

	"dindigul/internal/domain/entity"
	domainerrors "dindigul/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

var (
	// Indian mobile numbers: ten digits, first digit 6-9.
	phonePattern = regexp.MustCompile(`^[6-9]\d{9}$`)
	// Indian postal codes: exactly six digits.
	pincodePattern = regexp.MustCompile(`^\d{6}$`)
)

// formValidator validates form structs and collects every violated field
// at once, so the caller can show all messages simultaneously instead of
// stopping at the first.
var formValidator = newFormValidator()

func newFormValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields under their json names so messages line up with the
	// form fields the client submitted.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	_ = v.RegisterValidation("inphone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("pincode", func(fl validator.FieldLevel) bool {
		return pincodePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("deliveryarea", func(fl validator.FieldLevel) bool {
		return entity.Area(fl.Field().String()).IsValid()
	})

	return v
}

// fieldMessages maps field name and violated rule to the message shown
// next to the field.
type fieldMessages map[string]map[string]string

// validateForm runs the validator over form and translates violations
// into a ValidationError using the supplied messages. A missing message
// falls back to a generic one so a new rule can never panic the form.
func validateForm(form any, messages fieldMessages) *domainerrors.ValidationError {
	err := formValidator.Struct(form)
	if err == nil {
		return nil
	}

	violations, ok := err.(validator.ValidationErrors)
	if !ok {
		return domainerrors.NewValidationError(domainerrors.FieldErrors{"form": err.Error()})
	}

	fields := domainerrors.FieldErrors{}
	for _, violation := range violations {
		field := violation.Field()
		if _, seen := fields[field]; seen {
			continue
		}

		message := "Invalid value"
		if byRule, ok := messages[field]; ok {
			if m, ok := byRule[violation.Tag()]; ok {
				message = m
			}
		}
		fields[field] = message
	}

	return domainerrors.NewValidationError(fields)
}
