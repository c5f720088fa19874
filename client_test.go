package functions

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	t.Parallel()

	client, err := New("http://example.com/functions/v1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if client == nil {
		t.Fatal("expected client to be created")
	}

	if client.baseURL != "http://example.com/functions/v1" {
		t.Errorf("expected baseURL=http://example.com/functions/v1, got %s", client.baseURL)
	}
}

func TestNew_EmptyURL(t *testing.T) {
	t.Parallel()

	_, err := New("")

	if err == nil {
		t.Fatal("expected error for empty URL")
	}

	if err.Error() != "base URL must be set" {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNew_RelativeURL(t *testing.T) {
	t.Parallel()

	_, err := New("example.com/functions/v1")

	if err == nil {
		t.Fatal("expected error for relative URL")
	}

	if !strings.Contains(err.Error(), "must be absolute") {
		t.Errorf("expected error to contain 'must be absolute', got: %v", err)
	}
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	t.Parallel()

	var requestedPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := New(server.URL + "/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := client.Invoke(context.Background(), "hello", nil); err != nil {
		t.Fatalf("invoke failed: %v", err)
	}

	if requestedPath != "/hello" {
		t.Errorf("expected path=/hello, got %s", requestedPath)
	}
}

func TestNew_SetsUserAgent(t *testing.T) {
	t.Parallel()

	var userAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := New(server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := client.Invoke(context.Background(), "hello", nil); err != nil {
		t.Fatalf("invoke failed: %v", err)
	}

	if userAgent != defaultUserAgent {
		t.Errorf("expected User-Agent=%s, got %s", defaultUserAgent, userAgent)
	}
}

func TestNew_CallerHeadersWinOverUserAgent(t *testing.T) {
	t.Parallel()

	var userAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := New(server.URL, WithHeaders(map[string]string{"User-Agent": "my-app/1.0"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := client.Invoke(context.Background(), "hello", nil); err != nil {
		t.Fatalf("invoke failed: %v", err)
	}

	if userAgent != "my-app/1.0" {
		t.Errorf("expected User-Agent=my-app/1.0, got %s", userAgent)
	}
}

func TestNew_CopiesCallerHeaders(t *testing.T) {
	t.Parallel()

	var apikey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apikey = r.Header.Get("apikey")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	headers := map[string]string{"apikey": "anon-key"}
	client, err := New(server.URL, WithHeaders(headers))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Mutating the source map after construction must not affect the client.
	headers["apikey"] = "tampered"

	if _, err := client.Invoke(context.Background(), "hello", nil); err != nil {
		t.Fatalf("invoke failed: %v", err)
	}

	if apikey != "anon-key" {
		t.Errorf("expected apikey=anon-key, got %s", apikey)
	}
}

func TestSetAuth(t *testing.T) {
	t.Parallel()

	var authHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := New(server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	client.SetAuth("abc")

	if _, err := client.Invoke(context.Background(), "hello", nil); err != nil {
		t.Fatalf("invoke failed: %v", err)
	}

	if authHeader != "Bearer abc" {
		t.Errorf("expected 'Bearer abc', got %s", authHeader)
	}
}

func TestSetAuth_OverridesForSubsequentCalls(t *testing.T) {
	t.Parallel()

	var authHeaders []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeaders = append(authHeaders, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := New(server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	client.SetAuth("abc")
	if _, err := client.Invoke(context.Background(), "hello", nil); err != nil {
		t.Fatalf("first invoke failed: %v", err)
	}

	client.SetAuth("def")
	if _, err := client.Invoke(context.Background(), "hello", nil); err != nil {
		t.Fatalf("second invoke failed: %v", err)
	}

	if len(authHeaders) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(authHeaders))
	}

	if authHeaders[0] != "Bearer abc" {
		t.Errorf("expected first request with 'Bearer abc', got %s", authHeaders[0])
	}

	if authHeaders[1] != "Bearer def" {
		t.Errorf("expected second request with 'Bearer def', got %s", authHeaders[1])
	}
}
