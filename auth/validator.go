package auth

import (
	"fmt"
	"strings"
	"unicode"

	"tauthy/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type RegisterRequest struct {
	FirstName string `validate:"required,max=64"`
	LastName  string `validate:"required,max=64"`
	Username  string `validate:"required,alphanum,min=3,max=32"`
	Password  string `validate:"required,min=8,max=72"`
	Email     string `validate:"omitempty,email"`
}

// ValidateRegister checks field rules first, then password content.
func ValidateRegister(req RegisterRequest) error {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidRegistration, err)
	}
	if !hasLetterAndDigit(req.Password) {
		return fmt.Errorf("%w: password needs a letter and a digit", errors.ErrInvalidRegistration)
	}
	return nil
}

// ValidateStruct runs the shared validator on any tagged struct (configs, requests).
func ValidateStruct(s any) error {
	return validate.Struct(s)
}

func hasLetterAndDigit(s string) bool {
	var letter, digit bool
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			letter = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return letter && digit
}
