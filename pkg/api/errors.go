package api

import (
	"errors"
	"fmt"
)

// ErrRequest is wrapped by every error Post returns, for callers that only
// care that the call failed.
var ErrRequest = errors.New("api request failed")

// DefaultErrorMessage is used when a non-200 response carries no readable
// error field.
const DefaultErrorMessage = "No or invalid error message received."

// TransportError means the request never produced a response.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("post %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() []error { return []error{ErrRequest, e.Err} }

// StatusError is a response with a status other than 200.
type StatusError struct {
	Code int
	Msg  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status %d: %s", e.Code, e.Msg)
}

func (e *StatusError) Unwrap() error { return ErrRequest }

// DecodeError is a 200 response whose body is not JSON.
type DecodeError struct {
	Body []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid response body: %v", e.Err)
}

func (e *DecodeError) Unwrap() []error { return []error{ErrRequest, e.Err} }

// ServerError is a 200 response whose body has an "error" field. Value is
// that field as decoded JSON.
type ServerError struct {
	Value any
}

func (e *ServerError) Error() string {
	if s, ok := e.Value.(string); ok {
		return "server error: " + s
	}
	return fmt.Sprintf("server error: %v", e.Value)
}

func (e *ServerError) Unwrap() error { return ErrRequest }
