package pokeapi

import (
	"errors"
	"fmt"
)

// ErrTransport matches every failure to obtain a decoded response: network
// errors, non-success statuses and malformed bodies.
var ErrTransport = errors.New("pokeapi transport failure")

type TransportError struct {
	Url        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("GET %s: unexpected status %d", e.Url, e.StatusCode)
	}
	return fmt.Sprintf("GET %s: %v", e.Url, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}
