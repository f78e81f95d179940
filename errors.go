package wbs

import (
	"errors"
	"fmt"
)

// Sentinel errors for the client. Callers should use errors.Is to match
// these values.
var (
	// ErrValidation means the caller supplied missing or invalid input
	// before any network call was made.
	ErrValidation = errors.New("validation error")

	// ErrTransport means the network call failed or the response body was
	// not a JSON object.
	ErrTransport = errors.New("transport error")

	// ErrProtocol means the response parsed as JSON but did not follow the
	// WBS envelope (no numeric status field, malformed body payload).
	ErrProtocol = errors.New("protocol error")
)

// RemoteError is returned when the service explicitly reports a non-zero
// status. Match with errors.As.
type RemoteError struct {
	Service string
	Code    int
	Message string
}

func (e *RemoteError) Error() string {
	return e.Message
}

// responseCodes maps "<service>-<status>" to the messages published in the
// WBS API documentation. Kept byte-for-byte for compatibility.
var responseCodes = map[string]string{
	"account-2555": "An unknown error occurred",
	"account-264":  "The email address provided is either unknown or invalid",
	"account-100":  "The hash is missing, invalid, or does not match the provided email",
	"getmeas-2555": "An unknown error occurred",
	"getmeas-250":  "The userid and publickey provided do not match, or the user does not share its data",
	"getmeas-247":  "The userid provided is absent, or incorrect",
}

func newRemoteError(service string, code int) *RemoteError {
	key := fmt.Sprintf("%s-%d", service, code)
	msg, ok := responseCodes[key]
	if !ok {
		msg = fmt.Sprintf("Remote service returned error code: %d", code)
	}
	return &RemoteError{Service: service, Code: code, Message: msg}
}
