package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-crm-front/internal/validators"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")
	ErrWeakPassword        = errors.New("password is too short")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrSessionNotFound = errors.New("session not found")

	ErrRequirementUnknown = errors.New("runtime requirement could not be determined")

	ErrAlreadyInstalled = errors.New("site is already installed")
	ErrNotInstalled     = errors.New("site is not installed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// validationError maps a validators error to the service error callers
// match on, keeping the original as the reason.
func validationError(err error) error {
	if errors.Is(err, validators.ErrPasswordTooShort) {
		return fmt.Errorf("%w: %w", ErrWeakPassword, err)
	}
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}
