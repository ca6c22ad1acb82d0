package currencylayer

import (
	"errors"
	"fmt"
)

// ErrInvalidRequest reports a request that could not be built from the
// configured URL and parameters. Nothing was sent to the service.
var ErrInvalidRequest = errors.New("invalid request")

// RemoteError is a non-2xx reply from the service. The body is left
// unread.
type RemoteError struct {
	StatusCode int
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("currencylayer http %d", e.StatusCode)
}

// TransportError is an I/O failure while sending the request or reading
// the response body.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
