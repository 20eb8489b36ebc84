package animethemes

import (
	"fmt"
	"net/http"
)

// APIError is returned when the API answers with a non-success status code.
type APIError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int
	// Status is the full status line, e.g. "404 Not Found".
	Status string
	// Endpoint is the request path that produced the error.
	Endpoint string
	// Body holds the response payload, truncated for readability.
	Body string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("animethemes: %s returned %s", e.Endpoint, e.Status)
}

// IsNotFound reports whether the error is a 404, which the API uses for
// unknown slugs and ids.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// ParseError is returned when a response body cannot be decoded as the
// expected JSON shape. The result object passed to the call is left in an
// undefined state and must not be used.
type ParseError struct {
	// Endpoint is the request path whose response failed to decode.
	Endpoint string
	// Err is the underlying decode error.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("animethemes: invalid JSON from %s: %v", e.Endpoint, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
