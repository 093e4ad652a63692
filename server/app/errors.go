package app

import (
	"errors"
)

var (
	ErrUserNotFound                  = errors.New("user not found.")
	ErrFederationConstraintViolation = errors.New("user is federated on rooms.")
	ErrNoDeletionIntent              = errors.New("no deletion in progress.")
	ErrInvalidErasureMode            = errors.New("invalid erasure mode.")
)

var errorCodes = map[error]string{
	ErrUserNotFound:                  "error-user-not-found",
	ErrFederationConstraintViolation: "FEDERATION_Error_user_is_federated_on_rooms",
	ErrNoDeletionIntent:              "error-no-deletion-intent",
	ErrInvalidErasureMode:            "error-invalid-erasure-mode",
}

// ErrorCode returns the machine readable code of a rejected deletion, or an empty string for
// errors that are not a rejection.
func ErrorCode(err error) string {
	for sentinel, code := range errorCodes {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return ""
}
