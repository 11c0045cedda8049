package api

import (
	"errors"
	"fmt"
	"net/url"
)

// NetworkErrorPrefix starts the message of every NetworkError
const NetworkErrorPrefix = "Network error: "

// APIError is a non-2xx response from the service
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// NetworkError is a request that never produced a usable response: the
// transport failed or a 2xx body could not be decoded
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return NetworkErrorPrefix + causeMessage(e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// causeMessage drops the "Get \"http://...\":" envelope net/http adds
func causeMessage(err error) string {
	if err == nil {
		return "unknown error"
	}
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Err != nil {
		return uerr.Err.Error()
	}
	return err.Error()
}

// Detail returns the service-provided detail carried by err, if any
func Detail(err error) (string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail, true
	}
	return "", false
}

// IsNetwork reports whether err is a NetworkError
func IsNetwork(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}
