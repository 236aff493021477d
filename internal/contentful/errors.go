package contentful

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport covers network failures and non-2xx responses.
	ErrTransport = errors.New("contentful: request failed")
	// ErrMalformedResponse is returned when entries do not match the expected shape.
	ErrMalformedResponse = errors.New("contentful: malformed response")
	// ErrPreviewDisabled is returned for preview reads without a preview token.
	ErrPreviewDisabled = errors.New("contentful: preview token not configured")
)

// APIError is a non-2xx answer from the Content Delivery API.
type APIError struct {
	StatusCode int
	Message    string `json:"message"`
	RequestID  string `json:"requestId"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("contentful: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("contentful: HTTP %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrTransport
}
