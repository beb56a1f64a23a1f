package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrEmailInUse       = errors.New("this email address is already in use")
	ErrIDInUse          = errors.New("a resource with this ID already exists")
	ErrNoRowsWritten    = errors.New("the resource could not be written to the database")
)

// isKnown reports if the error is one of the errors of this package
// that are safe to show to users.
func isKnown(err error) bool {
	for _, known := range []error{ErrGeneral, ErrResourceNotFound, ErrEmailInUse, ErrIDInUse, ErrNoRowsWritten} {
		if errors.Is(err, known) {
			return true
		}
	}

	return false
}
