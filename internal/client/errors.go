package client

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a request to the scoring service failed.
type ErrorKind string

const (
	// KindNetwork: the request could not be sent or no response arrived.
	KindNetwork ErrorKind = "NETWORK_ERROR"
	// KindHTTP: the service answered with a non-2xx status.
	KindHTTP ErrorKind = "HTTP_ERROR"
	// KindParse: the body is not JSON or does not have the expected shape.
	KindParse ErrorKind = "PARSE_ERROR"
)

// RequestError is returned by every Client call that fails.
type RequestError struct {
	Kind      ErrorKind
	Op        string // e.g. "POST /recommend"
	Status    int    // set for KindHTTP
	Message   string
	RequestID string
	Err       error
}

func (e *RequestError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Kind == KindHTTP {
		return fmt.Sprintf("%s: %s: status %d: %s", e.Op, e.Kind, e.Status, msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, msg)
}

func (e *RequestError) Unwrap() error { return e.Err }

// KindOf returns the kind of a *RequestError in err's chain, or "".
func KindOf(err error) ErrorKind {
	var re *RequestError
	if errors.As(err, &re) {
		return re.Kind
	}
	return ""
}

func IsNetwork(err error) bool { return KindOf(err) == KindNetwork }
func IsHTTP(err error) bool    { return KindOf(err) == KindHTTP }
func IsParse(err error) bool   { return KindOf(err) == KindParse }
