package auth

import (
	"fmt"
	"group-talk/errors"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Credentials struct {
	Username string `validate:"required,alphanum,min=3,max=32"`
	Password string `validate:"required,min=8,max=72"`
}

// ValidateCredentials checks the rules applied when an account is created.
func ValidateCredentials(c Credentials) error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrValidation, err)
	}
	if !hasLetterAndDigit(c.Password) {
		return errors.ErrInvalidPassword
	}
	return nil
}

func hasLetterAndDigit(s string) bool {
	var hasLetter, hasDigit bool
	for _, char := range s {
		switch {
		case unicode.IsLetter(char):
			hasLetter = true
		case unicode.IsDigit(char):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}
