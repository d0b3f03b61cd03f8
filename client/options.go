package client

// Functional options that configure the Client during construction.

import (
	"fmt"
	"net/http"
	"time"
)

// Option configures a Client during construction in New.
type Option func(*Client) error

// WithToken sets the initial bearer token.
func WithToken(token string) Option {
	return func(c *Client) error {
		c.token = token
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithRetry bounds the number of attempts for recoverable failures of
// GET, PUT, PATCH and DELETE calls. One means no retry. POST calls are never
// retried.
func WithRetry(maxAttempts int) Option {
	return func(c *Client) error {
		if maxAttempts < 1 {
			return fmt.Errorf("max attempts must be >= 1")
		}
		c.maxAttempts = maxAttempts
		return nil
	}
}

// WithRetryBackoff sets the first retry delay; later delays grow exponentially.
func WithRetryBackoff(initial time.Duration) Option {
	return func(c *Client) error {
		if initial <= 0 {
			return fmt.Errorf("retry backoff must be > 0")
		}
		c.retryInitial = initial
		return nil
	}
}

// WithHTTPClient replaces the http.Client used for all calls. Apply it
// before WithHTTPTimeout or WithDebugLogging.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client cannot be nil")
		}
		c.http = hc
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true. Do not enable this in production: dumps
// include bearer tokens and entry content.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			if _, already := c.http.Transport.(*debugTransport); !already {
				c.http.Transport = &debugTransport{base: c.http.Transport}
			}
		}
		return nil
	}
}
