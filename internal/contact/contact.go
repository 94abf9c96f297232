// Package contact validates enquiries submitted through the contact form.
package contact

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)
	whitespace = regexp.MustCompile(`\s`)
)

// Enquiry is one contact-form submission. Service and Message are optional.
type Enquiry struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,contact_email"`
	Phone   string `json:"phone" validate:"required,contact_phone"`
	Service string `json:"service"`
	Message string `json:"message"`
}

// FieldError names the field that failed and the message shown next to it.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var messages = map[string]map[string]string{
	"name": {
		"required": "Name is required",
	},
	"email": {
		"required":      "Email is required",
		"contact_email": "Please enter a valid email",
	},
	"phone": {
		"required":      "Phone number is required",
		"contact_phone": "Please enter a valid 10-digit phone number",
	},
}

// Validator checks enquiries against the contact-form rules.
type Validator struct {
	validate *validator.Validate
}

// NewValidator sets up the underlying validator with the custom rules.
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("contact_email", emailValidator)
	_ = v.RegisterValidation("contact_phone", phoneValidator)
	return &Validator{validate: v}
}

// Validate returns one error per invalid field, in form order. Surrounding
// whitespace is ignored.
func (v *Validator) Validate(e Enquiry) []FieldError {
	e.Name = strings.TrimSpace(e.Name)
	e.Email = strings.TrimSpace(e.Email)
	e.Phone = strings.TrimSpace(e.Phone)

	err := v.validate.Struct(e)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "", Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg, ok := messages[fe.Field()][fe.Tag()]
		if !ok {
			msg = fe.Error()
		}
		out = append(out, FieldError{Field: fe.Field(), Message: msg})
	}
	return out
}

func emailValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return emailRegex.MatchString(val)
}

// phoneValidator accepts ten digits once all whitespace is removed, so
// "98765 43210" is valid.
func phoneValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return phoneRegex.MatchString(whitespace.ReplaceAllString(val, ""))
}
