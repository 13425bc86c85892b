package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnauthorized matches (via errors.Is) any *Error carrying a 401 status.
// Commands treat it as "session invalid, log in again".
var ErrUnauthorized = errors.New("unauthorized")

// Error is a server-reported failure: either an HTTP error status or an
// envelope with success=false. Message is the server's own message and is
// shown to the user as-is.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: request failed with status %d", e.Status)
	}
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

func (e *Error) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == http.StatusUnauthorized
}
