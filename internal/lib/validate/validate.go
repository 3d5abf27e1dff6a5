// Package validate builds the registration validator and turns its errors into
// the per-field messages shown next to each form input.
package validate

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"festRegistration/internal/catalog"

	"github.com/go-playground/validator/v10"
)

var (
	emailRe = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)
	phoneRe = regexp.MustCompile(`^[0-9]{10}$`)
)

// messages is keyed by json field name and then validation tag.
var messages = map[string]map[string]string{
	"name": {
		"required": "Name is required",
	},
	"email": {
		"required":  "Email is required",
		"emaillite": "Invalid email address",
	},
	"phone": {
		"required": "Phone number is required",
		"phone10":  "Invalid phone number",
	},
	"college": {
		"required": "College name is required",
	},
	"events": {
		"min":           "Please select at least one event",
		"required":      "Please select at least one event",
		"catalogevents": "Unknown event selected",
	},
}

func New() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// registration only fails for duplicate or malformed tags, both fixed here
	mustRegister(v, "emaillite", func(fl validator.FieldLevel) bool {
		return emailRe.MatchString(fl.Field().String())
	})
	mustRegister(v, "phone10", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})
	mustRegister(v, "catalogevents", func(fl validator.FieldLevel) bool {
		names, ok := fl.Field().Interface().([]string)
		if !ok {
			return false
		}
		return len(catalog.Unknown(names)) == 0
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// FieldErrors maps each failing field to its display message. It returns nil
// when err is not a validation error.
func FieldErrors(err error) map[string]string {
	var validateErr validator.ValidationErrors
	if !errors.As(err, &validateErr) {
		return nil
	}

	out := make(map[string]string, len(validateErr))
	for _, fe := range validateErr {
		field := fe.Field()
		if _, ok := out[field]; ok {
			continue
		}
		out[field] = Message(field, fe.Tag())
	}

	return out
}

func Message(field, tag string) string {
	if m, ok := messages[field][tag]; ok {
		return m
	}
	return "Invalid " + field
}
