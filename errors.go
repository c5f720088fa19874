package functions

import "fmt"

// HTTPError is returned when an edge function responds with a non-2xx
// status code. Message carries the server-provided "error" field when the
// response body is JSON and contains one; otherwise it is a generic message
// naming the request URL.
type HTTPError struct {
	Message    string
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// RelayError is returned when the relay in front of an edge function signals
// an application-level failure via the x-relay-header response header. It is
// raised regardless of the HTTP status code.
type RelayError struct {
	Message string
}

func (e *RelayError) Error() string {
	if e.Message == "" {
		return "relay error invoking edge function"
	}
	return e.Message
}

func genericHTTPMessage(url string) string {
	return fmt.Sprintf("an error occurred while requesting your edge function at %s", url)
}
