package functions

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Version is the library version reported in the default User-Agent header.
const Version = "0.1.0"

const defaultUserAgent = "supabase-go/functions-go v" + Version

// Client invokes edge functions deployed behind a functions relay. It wraps
// [github.com/go-resty/resty/v2] for transport: base URL handling, default
// headers, TLS configuration, timeouts and redirect following.
//
// The client is safe for concurrent Invoke calls, but SetAuth mutates shared
// state and must not race with in-flight invocations; serialize access
// externally or use one client per logical caller.
type Client struct {
	baseURL string
	headers map[string]string
	options *Options
	httpc   *resty.Client
}

// New creates a Client for the functions endpoint at baseURL, for example
// https://xyz.supabase.co/functions/v1. Configuration is supplied as [Option]
// functions; invalid option values are silently ignored and the default is
// retained.
//
// A User-Agent header identifying this library is merged under any
// caller-supplied headers, so [WithHeaders] may override it.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("base URL must be set")
	}

	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base URL %q must be absolute", baseURL)
	}

	options := newClientOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(options)
		}
	}

	// Copy the caller's headers so later mutation of the source map does not
	// leak into the client.
	headers := map[string]string{"User-Agent": options.userAgent}
	for header, value := range options.headers {
		headers[header] = value
	}

	var httpc *resty.Client
	if options.httpClient != nil {
		httpc = resty.NewWithClient(options.httpClient)
	} else {
		httpc = resty.New()
	}

	httpc.SetBaseURL(baseURL)
	httpc.SetTimeout(options.timeout)
	httpc.SetRedirectPolicy(resty.FlexibleRedirectPolicy(10))
	if !options.tlsVerify {
		httpc.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true}) //nolint:gosec // explicit opt-out via WithTLSVerify(false)
	}

	return &Client{
		baseURL: baseURL,
		headers: headers,
		options: options,
		httpc:   httpc,
	}, nil
}

// SetAuth sets the Authorization header to "Bearer {token}" for all
// subsequent invocations. It has no effect on requests already in flight.
func (c *Client) SetAuth(token string) {
	c.headers["Authorization"] = "Bearer " + token
}
