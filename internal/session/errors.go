package session

import "github.com/ayoisaiah/tally/internal/apperr"

// ErrInvalidSelection is returned when a selection does not name one of the
// fixed intervals or contexts.
var ErrInvalidSelection = &apperr.Error{
	Message: "invalid %s selection: %v",
}
