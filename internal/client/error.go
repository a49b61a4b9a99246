package client

import (
	"errors"
	"fmt"

	"supplydesk/internal/contract"
)

// ErrRequestFailed is what every gateway failure unwraps to: transport
// errors, non-2xx answers and undecodable bodies alike.
var ErrRequestFailed = errors.New("gateway request failed")

// RequestError keeps the details for logs. Callers should only need
// errors.Is(err, ErrRequestFailed).
type RequestError struct {
	Action  contract.Action
	Status  int
	Message string
	Err     error
}

func (e *RequestError) Error() string {
	switch {
	case e.Status != 0 && e.Message != "":
		return fmt.Sprintf("%s: %s (status %d): %s", ErrRequestFailed, e.Action, e.Status, e.Message)
	case e.Status != 0:
		return fmt.Sprintf("%s: %s (status %d)", ErrRequestFailed, e.Action, e.Status)
	case e.Message != "":
		return fmt.Sprintf("%s: %s: %s", ErrRequestFailed, e.Action, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", ErrRequestFailed, e.Action, e.Err)
	default:
		return fmt.Sprintf("%s: %s", ErrRequestFailed, e.Action)
	}
}

func (e *RequestError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrRequestFailed}
	}
	return []error{ErrRequestFailed, e.Err}
}
