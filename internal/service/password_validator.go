package service

import (
	"errors"
	"unicode"
)

var (
	// ErrPasswordTooShort is returned when the password is shorter than 8 characters.
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	// ErrPasswordNoUpper is returned when the password lacks an uppercase letter.
	ErrPasswordNoUpper = errors.New("password must contain an uppercase letter")
	// ErrPasswordNoLower is returned when the password lacks a lowercase letter.
	ErrPasswordNoLower = errors.New("password must contain a lowercase letter")
	// ErrPasswordNoDigit is returned when the password lacks a digit.
	ErrPasswordNoDigit = errors.New("password must contain a digit")
)

// PasswordValidator enforces the password policy used when changing passwords.
type PasswordValidator struct{}

// NewPasswordValidator creates a new password validator.
func NewPasswordValidator() *PasswordValidator {
	return &PasswordValidator{}
}

// ValidatePassword checks length and character-class requirements.
func (v *PasswordValidator) ValidatePassword(password string) error {
	if len(password) < 8 {
		return ErrPasswordTooShort
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasUpper {
		return ErrPasswordNoUpper
	}
	if !hasLower {
		return ErrPasswordNoLower
	}
	if !hasDigit {
		return ErrPasswordNoDigit
	}
	return nil
}
