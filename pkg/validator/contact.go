package validator

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// ErrEmptyEmail indicates the email address is empty
	ErrEmptyEmail = errors.New("email cannot be empty")

	// ErrInvalidEmail indicates the email address is malformed
	ErrInvalidEmail = errors.New("email address is not valid")

	// ErrEmptyPhone indicates the phone number is empty
	ErrEmptyPhone = errors.New("phone number cannot be empty")

	// ErrInvalidPhoneFormat indicates the phone number contains invalid characters
	ErrInvalidPhoneFormat = errors.New("phone number can only contain digits")

	// ErrInvalidPhoneLength indicates the phone number length is out of range
	ErrInvalidPhoneLength = errors.New("phone number must be 10 to 15 digits")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

var digitsRegex = regexp.MustCompile(`^\d+$`)

// ContactValidator validates booking contact details
type ContactValidator struct{}

// NewContactValidator creates a new contact validator instance
func NewContactValidator() *ContactValidator {
	return &ContactValidator{}
}

// ValidateEmail validates an email address
func (v *ContactValidator) ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmptyEmail
	}
	if !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// ValidatePhone validates a contact phone number.
// Accepts formats like 0771234567, 077 123 4567 or +91-98765-43210; all
// separators and a leading + are stripped before checking.
func (v *ContactValidator) ValidatePhone(phone string) error {
	if phone == "" {
		return ErrEmptyPhone
	}

	sanitized := v.SanitizePhone(phone)
	if !digitsRegex.MatchString(sanitized) {
		return ErrInvalidPhoneFormat
	}
	if len(sanitized) < 10 || len(sanitized) > 15 {
		return ErrInvalidPhoneLength
	}

	return nil
}

// SanitizePhone removes spaces, dashes, parentheses and a leading plus sign.
func (v *ContactValidator) SanitizePhone(phone string) string {
	replacer := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
	sanitized := replacer.Replace(strings.TrimSpace(phone))
	return strings.TrimPrefix(sanitized, "+")
}
