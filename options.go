package functions

import (
	"net/http"
	"strings"
	"time"
)

type Option func(*Options)

type Options struct {
	timeout       time.Duration
	tlsVerify     bool
	headers       map[string]string
	userAgent     string
	httpClient    *http.Client
	requestLogger RequestLogger
}

func newClientOptions() *Options {
	return &Options{
		timeout:       DefaultTimeout,
		tlsVerify:     true,
		headers:       map[string]string{},
		userAgent:     defaultUserAgent,
		requestLogger: &NoopLogger{},
	}
}

// DefaultTimeout is the per-client request timeout used when no
// WithTimeout option is supplied.
const DefaultTimeout = 60 * time.Second

func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

func WithTLSVerify(verify bool) Option {
	return func(o *Options) {
		o.tlsVerify = verify
	}
}

func WithHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" {
			return
		}

		o.headers[header] = value
	}
}

func WithHeaders(headers map[string]string) Option {
	return func(o *Options) {
		for header, value := range headers {
			WithHeader(header, value)(o)
		}
	}
}

func WithUserAgent(userAgent string) Option {
	return func(o *Options) {
		if strings.TrimSpace(userAgent) != "" {
			o.userAgent = userAgent
		}
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *Options) {
		if httpClient != nil {
			o.httpClient = httpClient
		}
	}
}

func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}
