package client

import (
	"net/http"
	"testing"
)

func TestDebugLoggingFromEnv(t *testing.T) {
	t.Setenv("JOURNAL_CLIENT_DEBUG", "true")
	c, err := New("http://localhost:8080")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := c.http.Transport.(*debugTransport); !ok {
		t.Fatalf("expected debug transport when JOURNAL_CLIENT_DEBUG=true, got %T", c.http.Transport)
	}
}

func TestDebugLoggingNotDoubleWrapped(t *testing.T) {
	t.Setenv("DEBUG", "true")
	c, err := New("http://localhost:8080", WithDebugLogging(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	dt, ok := c.http.Transport.(*debugTransport)
	if !ok {
		t.Fatalf("expected debug transport, got %T", c.http.Transport)
	}
	if _, nested := dt.base.(*debugTransport); nested {
		t.Fatalf("debug transport wrapped twice")
	}
}

func TestWithHTTPClient(t *testing.T) {
	hc := &http.Client{}
	c, err := New("http://localhost:8080", WithHTTPClient(hc))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.http != hc {
		t.Fatalf("custom http client not used")
	}
}
