package service

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks bad input.
	ErrValidation = errors.New("validation failed")
	// ErrConflict marks valid input arriving in a state that cannot accept it.
	ErrConflict = errors.New("conflict")
)

func validationError(err error) error {
	return fmt.Errorf("%w: %v", ErrValidation, err)
}

func conflictError(msg string) error {
	return fmt.Errorf("%w: %s", ErrConflict, msg)
}
