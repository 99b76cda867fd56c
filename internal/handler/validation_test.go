package handler

import (
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

func newTestValidator(t *testing.T) *validator.Validate {
	t.Helper()

	validate := validator.New(validator.WithRequiredStructEnabled())
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		t.Fatalf("failed to register default translations: %v", err)
	}
	if err := registerCustomValidators(validate, trans); err != nil {
		t.Fatalf("failed to register custom validators: %v", err)
	}

	return validate
}

type bookingFields struct {
	CustomerName  string `validate:"required,min=1,max=100,person_name"`
	CustomerPhone string `validate:"required,min=1,max=20,phone_number"`
	CustomerEmail string `validate:"omitempty,email,max=255"`
}

func TestBookingFieldValidation(t *testing.T) {
	validate := newTestValidator(t)

	cases := []struct {
		name    string
		fields  bookingFields
		wantErr bool
	}{
		{
			name:   "typical booking",
			fields: bookingFields{CustomerName: "Juan Dela Cruz", CustomerPhone: "09123456789"},
		},
		{
			name:   "name with punctuation",
			fields: bookingFields{CustomerName: "Ma. Theresa O'Neil-Santos", CustomerPhone: "+63 (917) 123-4567"},
		},
		{
			name:   "email provided",
			fields: bookingFields{CustomerName: "Ana Reyes", CustomerPhone: "09171234567", CustomerEmail: "ana@example.com"},
		},
		{
			name:    "missing name",
			fields:  bookingFields{CustomerPhone: "09123456789"},
			wantErr: true,
		},
		{
			name:    "name with digits",
			fields:  bookingFields{CustomerName: "Juan2", CustomerPhone: "09123456789"},
			wantErr: true,
		},
		{
			name:    "phone with letters",
			fields:  bookingFields{CustomerName: "Juan Dela Cruz", CustomerPhone: "abc"},
			wantErr: true,
		},
		{
			name:    "malformed email",
			fields:  bookingFields{CustomerName: "Juan Dela Cruz", CustomerPhone: "09123456789", CustomerEmail: "not-an-email"},
			wantErr: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := validate.Struct(c.fields)
			if c.wantErr && err == nil {
				t.Fatalf("expected validation error, got none")
			}
			if !c.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}
