package domain

import (
	"errors"
	"strings"
)

// ErrUnauthenticated is returned when a read is attempted without a
// resolvable session cookie. Resolved by first performing a write.
var ErrUnauthenticated = errors.New("no session")

// ValidationError reports a malformed request body or parameter. Fields
// holds the names of the violating fields so the boundary layer can
// surface them to the caller.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid fields: " + strings.Join(e.Fields, ", ")
}
