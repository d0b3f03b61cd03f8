package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	cerr "github.com/sravanipallapu19/healthComp/client/internal/errors"
)

// Health makes a single, unretried probe. A DOWN report (503) is returned as
// a Health value, not an error.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	requestsTotal.WithLabelValues("health").Inc()
	resp, err := c.rc.R().SetContext(ctx).Get("/api/health")
	if err != nil {
		failuresTotal.WithLabelValues("health", cerr.Recoverable.String()).Inc()
		return nil, cerr.NewNetworkError("health", err)
	}
	if resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusServiceUnavailable {
		failuresTotal.WithLabelValues("health", cerr.CategoryForStatus(resp.StatusCode()).String()).Inc()
		return nil, newAPIError("health", resp.StatusCode(), errorBody{})
	}
	var out Health
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("decode health response: %w", err)
	}
	return &out, nil
}
