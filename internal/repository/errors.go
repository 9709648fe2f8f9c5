package repository

import (
	"errors"
	"fmt"
)

// ErrRequestFailed matches every RequestError via errors.Is.
var ErrRequestFailed = errors.New("log service request failed")

// Kind tells apart why a request failed.
type Kind int

const (
	// KindNetwork: the request could not complete (dial, reset, timeout).
	KindNetwork Kind = iota + 1
	// KindStatus: the service answered with a non-2xx status.
	KindStatus
	// KindParse: the body was not the expected JSON.
	KindParse
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindStatus:
		return "status"
	case KindParse:
		return "parse"
	default:
		return "unknown"
	}
}

// RequestError is returned by LogHTTP for any failed operation.
type RequestError struct {
	Op         string
	Kind       Kind
	StatusCode int // zero unless Kind == KindStatus
	Err        error
}

func (e *RequestError) Error() string {
	switch e.Kind {
	case KindStatus:
		return fmt.Sprintf("%s: log service returned status %d", e.Op, e.StatusCode)
	case KindParse:
		return fmt.Sprintf("%s: decode response: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("%s: request failed: %v", e.Op, e.Err)
	}
}

func (e *RequestError) Unwrap() error { return e.Err }

func (e *RequestError) Is(target error) bool { return target == ErrRequestFailed }

// AsRequestError extracts a *RequestError from err's chain.
func AsRequestError(err error) (*RequestError, bool) {
	var re *RequestError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}
