package functions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// relayHeader marks an application-level relay failure, independent of the
// HTTP status code.
const relayHeader = "x-relay-header"

// ResponseType selects how Invoke handles the response body.
type ResponseType int

const (
	// ResponseTypeBytes returns the raw response body unchanged. This is
	// the default.
	ResponseTypeBytes ResponseType = iota

	// ResponseTypeJSON decodes the response body as JSON into
	// [InvokeResult.JSON].
	ResponseTypeJSON
)

// InvokeOptions carries per-call configuration overriding client defaults.
// A nil *InvokeOptions means all defaults: no body, no extra headers, raw
// response bytes.
type InvokeOptions struct {
	// Headers are overlaid on the client's headers for this call only.
	Headers map[string]string

	// Body is the request body. A string is sent as text/plain; any other
	// non-nil value is JSON-encoded and sent as application/json, except
	// []byte which is sent unmodified with no forced Content-Type. A nil
	// Body sends no body.
	Body any

	// ResponseType selects JSON decoding or raw bytes.
	ResponseType ResponseType

	// Region pins the invocation to a deploy region via the x-region
	// header. The value is trimmed and lowercased; empty or [RegionAny]
	// leaves region selection to the relay.
	Region string
}

// InvokeResult is the outcome of a successful invocation.
type InvokeResult struct {
	// Data is the raw response body.
	Data []byte

	// JSON is the decoded response body. It is populated only when the
	// invocation requested [ResponseTypeJSON].
	JSON any

	// StatusCode is the HTTP status code of the response.
	StatusCode int
}

// Invoke calls the edge function functionName with a single synchronous
// POST to {baseURL}/{functionName}.
//
// The request headers are a per-call copy of the client's headers with
// opts.Headers overlaid, so per-call overrides never leak into later
// invocations; [Client.SetAuth] is the only way to mutate persistent state.
//
// Failures surface as typed errors retrievable with [errors.As]: a non-2xx
// status yields a [*HTTPError] and a response flagged by the relay yields a
// [*RelayError]. Transport failures propagate wrapped.
func (c *Client) Invoke(ctx context.Context, functionName string, opts *InvokeOptions) (*InvokeResult, error) {
	if c == nil {
		return nil, errors.New("functions client is nil")
	}

	if functionName == "" {
		return nil, errors.New("function name must be set")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	headers := make(map[string]string, len(c.headers)+4)
	for header, value := range c.headers {
		headers[header] = value
	}

	var body any
	responseType := ResponseTypeBytes

	if opts != nil {
		for header, value := range opts.Headers {
			headers[header] = value
		}
		responseType = opts.ResponseType

		// The literal "any" sentinel is matched before normalization, so
		// e.g. " ANY " still pins the region.
		if opts.Region != "" && opts.Region != RegionAny {
			headers["x-region"] = normalizeRegion(opts.Region)
		}

		body = opts.Body
		switch body.(type) {
		case nil:
			// No body, no forced Content-Type.
		case string:
			headers["Content-Type"] = "text/plain"
		case []byte:
			// Raw payload; the caller controls Content-Type.
		default:
			headers["Content-Type"] = "application/json"
		}
	}

	requestURL := c.baseURL + "/" + functionName
	c.options.requestLogger.Debugf("invoking edge function: POST %s", requestURL)

	req := c.httpc.R().
		SetContext(ctx).
		SetHeaders(headers)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Post("/" + functionName)
	if err != nil {
		c.options.requestLogger.Errorf("edge function request failed: POST %s: %v", requestURL, err)
		return nil, fmt.Errorf("failed to invoke edge function %q: %w", functionName, err)
	}

	if !resp.IsSuccess() {
		message := errorField(resp.Body())
		if message == "" {
			message = genericHTTPMessage(requestURL)
		}
		c.options.requestLogger.Errorf("edge function returned status %d: POST %s", resp.StatusCode(), requestURL)
		return nil, &HTTPError{
			Message:    message,
			StatusCode: resp.StatusCode(),
			URL:        requestURL,
		}
	}

	if resp.Header().Get(relayHeader) == "true" {
		c.options.requestLogger.Errorf("edge function relay error: POST %s", requestURL)
		return nil, &RelayError{Message: errorField(resp.Body())}
	}

	result := &InvokeResult{
		Data:       resp.Body(),
		StatusCode: resp.StatusCode(),
	}

	if responseType == ResponseTypeJSON {
		if err := json.Unmarshal(resp.Body(), &result.JSON); err != nil {
			return nil, fmt.Errorf("failed to decode edge function %q response: %w", functionName, err)
		}
	}

	c.options.requestLogger.Debugf("edge function %q returned status %d", functionName, resp.StatusCode())
	return result, nil
}

// errorField extracts the "error" field from a JSON response body.
// Best-effort: a body that is not JSON, or whose error field is not a
// string, yields "".
func errorField(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Error
}
