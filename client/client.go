// Package client is the Go SDK for the journal service REST API.
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"

	cerr "github.com/sravanipallapu19/healthComp/client/internal/errors"
)

const (
	defaultTimeout      = 30 * time.Second
	defaultMaxAttempts  = 3
	defaultRetryInitial = 200 * time.Millisecond
)

// Client talks to one journal service instance. It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	rc      *resty.Client

	maxAttempts  int
	retryInitial time.Duration

	mu    sync.RWMutex
	token string
}

// New constructs a Client for baseURL. Options are applied before the
// underlying resty client is built.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL cannot be empty")
	}
	c := &Client{
		baseURL:      baseURL,
		http:         &http.Client{Timeout: defaultTimeout},
		maxAttempts:  defaultMaxAttempts,
		retryInitial: defaultRetryInitial,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.rc = resty.NewWithClient(c.http).
		SetBaseURL(c.baseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	return c, nil
}

// BaseURL returns the service root the client was built for.
func (c *Client) BaseURL() string { return c.baseURL }

// SetToken replaces the bearer token sent on authenticated calls.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Token returns the current bearer token, empty when unauthenticated.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

type call struct {
	op     string
	method string
	path   string
	query  map[string]string
	body   any
	out    any
}

// do executes one API call. Recoverable failures of idempotent methods are
// retried with exponential backoff until the attempt budget or ctx runs out.
// POST is attempted once: a timed-out create may already be stored.
func (c *Client) do(ctx context.Context, k call) error {
	requestsTotal.WithLabelValues(k.op).Inc()

	attempt := func() error {
		req := c.rc.R().SetContext(ctx)
		if tok := c.Token(); tok != "" {
			req.SetAuthToken(tok)
		}
		if k.query != nil {
			req.SetQueryParams(k.query)
		}
		if k.body != nil {
			req.SetBody(k.body)
		}
		if k.out != nil {
			req.SetResult(k.out)
		}
		var body errorBody
		req.SetError(&body)

		resp, err := req.Execute(k.method, k.path)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			return cerr.NewNetworkError(k.op, err)
		}
		if !resp.IsError() {
			return nil
		}
		apiErr := newAPIError(k.op, resp.StatusCode(), body)
		classified := cerr.NewHTTPError(resp.StatusCode(), apiErr)
		if classified.Category == cerr.Irrecoverable {
			return backoff.Permanent(classified)
		}
		return classified
	}

	var err error
	if idempotent(k.method) {
		err = backoff.Retry(attempt, c.backoff(ctx))
	} else {
		err = attempt()
	}
	if err != nil {
		failuresTotal.WithLabelValues(k.op, category(err)).Inc()
		return unwrapClassified(err)
	}
	return nil
}

func (c *Client) backoff(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = c.retryInitial
	exp.MaxInterval = 20 * c.retryInitial
	exp.MaxElapsedTime = 0
	retries := c.maxAttempts - 1
	if retries < 0 {
		retries = 0
	}
	return backoff.WithContext(backoff.WithMaxRetries(exp, uint64(retries)), ctx)
}

func idempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

func category(err error) string {
	if cerr.IsIrrecoverable(err) {
		return cerr.Irrecoverable.String()
	}
	return cerr.Recoverable.String()
}

// unwrapClassified surfaces the *APIError to callers while keeping network
// failures wrapped with their operation.
func unwrapClassified(err error) error {
	var perm *backoff.PermanentError
	if errors.As(err, &perm) {
		err = perm.Err
	}
	var ce *cerr.ClassifiedError
	if errors.As(err, &ce) && ce.StatusCode > 0 {
		return ce.Underlying
	}
	return err
}
