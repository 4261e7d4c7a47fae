package validator

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	phoneRegex = regexp.MustCompile(`^\d{10,11}$`)
	cpfRegex   = regexp.MustCompile(`^\d{11}$`)
	hhmmRegex  = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// brphone: Brazilian phone, exactly 10 or 11 digits. Empty is allowed;
	// combine with "required" when the field is mandatory.
	v.RegisterValidation("brphone", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true
		}
		return phoneRegex.MatchString(value)
	})

	// cpf: exactly 11 digits or empty. Digit-check only, no checksum.
	v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true
		}
		return cpfRegex.MatchString(value)
	})

	// maxwords=N: at most N whitespace-separated words. Empty passes.
	v.RegisterValidation("maxwords", func(fl validator.FieldLevel) bool {
		max, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		value := fl.Field().String()
		if value == "" {
			return true
		}
		return len(strings.Fields(value)) <= max
	})

	// hhmm: 24-hour HH:MM time of day.
	v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return hhmmRegex.MatchString(fl.Field().String())
	})

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "email":
				errors[field] = field + " must be a valid email address"
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "gte":
				errors[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[field] = field + " must be less than or equal to " + e.Param()
			case "oneof":
				errors[field] = field + " must be one of: " + e.Param()
			case "brphone":
				errors[field] = field + " must have exactly 10 or 11 digits"
			case "cpf":
				errors[field] = field + " must have exactly 11 digits"
			case "maxwords":
				errors[field] = field + " must have at most " + e.Param() + " words"
			case "hhmm":
				errors[field] = field + " must be a time in HH:MM format"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
