package httputil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var registerOnce sync.Once

// RegisterValidations configures gin's validator: fields are reported by
// their JSON name and the custom "notblank" and "given" tags are available.
func RegisterValidations() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("notblank", validators.NotBlank)
		_ = v.RegisterValidation("given", given)
	})
}

// given validates that a raw JSON value is present and neither null nor
// an empty string. Zero is a given value.
func given(fl validator.FieldLevel) bool {
	raw, ok := fl.Field().Interface().(json.RawMessage)
	if !ok {
		return !fl.Field().IsZero()
	}

	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null")) && !bytes.Equal(trimmed, []byte(`""`))
}

// ValidationErrorToText returns a message for a single failed validation.
func ValidationErrorToText(e validator.FieldError) string {
	switch e.Tag() {
	case "required", "given", "notblank":
		return fmt.Sprintf("%s is required", e.Field())
	case "max":
		return fmt.Sprintf("%s cannot be longer than %s", e.Field(), e.Param())
	case "min":
		return fmt.Sprintf("%s must be longer than %s", e.Field(), e.Param())
	case "email":
		return "Invalid email format"
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", e.Field(), e.Param())
	}
	return fmt.Sprintf("%s is not valid", e.Field())
}

func isRequiredTag(tag string) bool {
	return tag == "required" || tag == "given" || tag == "notblank"
}

// ValidationMessage joins validation errors into one message. If all
// errors are about absent fields, they are listed together.
func ValidationMessage(errs validator.ValidationErrors) string {
	var missing, other []string
	for _, e := range errs {
		if isRequiredTag(e.Tag()) {
			missing = append(missing, e.Field())
			continue
		}
		other = append(other, ValidationErrorToText(e))
	}

	if len(other) == 0 {
		return "missing required fields: " + strings.Join(missing, ", ")
	}

	for _, field := range missing {
		other = append(other, field+" is required")
	}
	return strings.Join(other, "; ")
}
