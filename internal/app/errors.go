package app

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks input rejected before any request was sent
	ErrValidation = errors.New("validation failed")
	// ErrRejected marks a request the server answered with success=false
	ErrRejected = errors.New("rejected by server")
)

func validationError(message string) error {
	return fmt.Errorf("%w: %s", ErrValidation, message)
}
