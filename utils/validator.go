package utils

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report field errors under their json names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidateStruct checks a request payload and returns per-field messages,
// empty when the payload is valid.
func ValidateStruct(s interface{}) map[string]string {
	errs := map[string]string{}

	err := validate.Struct(s)
	if err == nil {
		return errs
	}

	for _, e := range err.(validator.ValidationErrors) {
		errs[e.Field()] = messageFor(e)
	}
	return errs
}

func messageFor(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "min":
		return fmt.Sprintf("Must be at least %s characters long.", e.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters long.", e.Param())
	case "len":
		return fmt.Sprintf("Must be exactly %s characters long.", e.Param())
	case "datetime":
		return "Must be a valid date in YYYY-MM-DD format."
	case "oneof":
		return fmt.Sprintf("Must be one of: %s.", e.Param())
	default:
		return "Invalid value."
	}
}
