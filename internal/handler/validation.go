package handler

import (
	"regexp"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

// character classes the booking form accepts, mirrored by the widget
var (
	personNameRegex  = regexp.MustCompile(`^[a-zA-Z\s.'-]+$`)
	phoneNumberRegex = regexp.MustCompile(`^[0-9+\-\s()]+$`)
)

func registerCustomValidators(validate *validator.Validate, trans ut.Translator) error {
	if err := validate.RegisterValidation("person_name", func(fl validator.FieldLevel) bool {
		return personNameRegex.MatchString(fl.Field().String())
	}); err != nil {
		return err
	}
	if err := validate.RegisterValidation("phone_number", func(fl validator.FieldLevel) bool {
		return phoneNumberRegex.MatchString(fl.Field().String())
	}); err != nil {
		return err
	}

	if err := validate.RegisterTranslation("person_name", trans, func(ut ut.Translator) error {
		return ut.Add("person_name", "{0} can only contain letters, spaces, and common punctuation", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("person_name", fe.Field())
		return t
	}); err != nil {
		return err
	}
	if err := validate.RegisterTranslation("phone_number", trans, func(ut ut.Translator) error {
		return ut.Add("phone_number", "{0} is not a valid phone number", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("phone_number", fe.Field())
		return t
	}); err != nil {
		return err
	}

	return nil
}
