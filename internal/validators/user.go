package validators

import (
	"context"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-crm-front/models"
)

// Field names understood by [UserValidator].
const (
	// FieldUsername requires a non-empty username without spaces or
	// control characters.
	FieldUsername = "username"

	// FieldPasswordPresent only requires a non-empty password. Used at
	// sign-in, where the stored policy may have been different.
	FieldPasswordPresent = "password_present"

	// FieldPassword applies the password policy for new accounts.
	FieldPassword = "password"
)

const (
	// MinPasswordLength is the shortest accepted password, in characters.
	MinPasswordLength = 8

	// maxPasswordBytes is the bcrypt input limit.
	maxPasswordBytes = 72

	maxUsernameLength = 64
)

// UserValidator validates [models.User] values.
type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate checks obj, a models.User or *models.User. Without field names
// the username and the full password policy are checked.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if err := validateUsername(user.Username); err != nil {
				return err
			}
		case FieldPasswordPresent:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		case FieldPassword:
			if err := validatePassword(user.Password); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, f)
		}
	}

	return nil
}

func validateUsername(username string) error {
	if username == "" {
		return ErrEmptyUsername
	}
	if utf8.RuneCountInString(username) > maxUsernameLength {
		return ErrUsernameTooLong
	}
	for _, r := range username {
		if r == utf8.RuneError || unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return ErrInvalidUsername
		}
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > maxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}
