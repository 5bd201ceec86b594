package haloscan

import (
	"errors"
	"fmt"
)

// ErrUnsupportedVerb is returned for capabilities declaring a verb other than GET or POST.
var ErrUnsupportedVerb = errors.New("unsupported HTTP verb")

// RequestError reports a failed upstream call. Status is 0 when no response
// was received.
type RequestError struct {
	Route   string
	Status  int
	Message string
	Err     error
}

func (e *RequestError) Error() string { return e.Message }

func (e *RequestError) Unwrap() error { return e.Err }

// Detail formats the error with its route and status for logs.
func (e *RequestError) Detail() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s: %s", e.Route, e.Message)
	}
	return fmt.Sprintf("%s (HTTP %d): %s", e.Route, e.Status, e.Message)
}
