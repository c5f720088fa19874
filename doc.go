// Package functions provides an HTTP client for invoking edge functions.
//
// The client wraps [github.com/go-resty/resty/v2] and issues a single
// synchronous POST per invocation. There is no queueing, retrying, or
// connection management beyond what the transport provides.
//
// # Basic Usage
//
//	c, err := functions.New("https://xyz.supabase.co/functions/v1",
//	    functions.WithHeaders(map[string]string{"apikey": anonKey}),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	c.SetAuth(userToken)
//
//	res, err := c.Invoke(ctx, "hello-world", &functions.InvokeOptions{
//	    Body:         map[string]string{"name": "functions"},
//	    ResponseType: functions.ResponseTypeJSON,
//	})
//
// # Configuration
//
// All configuration is supplied as [Option] functions passed to [New].
// Invalid values are silently ignored and the default is retained; the base
// URL is validated when [New] is called.
//
// # Response Parsing
//
// By default [Client.Invoke] returns the raw response bytes in
// [InvokeResult.Data]. Select [ResponseTypeJSON] in [InvokeOptions] to also
// decode the body into [InvokeResult.JSON].
//
// # Error Handling
//
// A non-2xx response yields a [*HTTPError] carrying the server-provided
// error message when the body is JSON with an "error" field. A 2xx response
// flagged by the relay via the x-relay-header header yields a [*RelayError].
// Both are retrievable with [errors.As]. Neither is retried; transport
// failures propagate wrapped.
//
// # Authentication
//
// [Client.SetAuth] sets the bearer token used by all subsequent
// invocations. Per-call headers supplied in [InvokeOptions] override the
// client's headers for that call only.
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger] to
// integrate with your logging library, or use [NewConsoleLogger] for a
// zerolog-backed console logger. The default [NoopLogger] discards all log
// output.
package functions
