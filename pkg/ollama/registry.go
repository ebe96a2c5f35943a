package ollama

import (
	"context"
	"slices"
	"time"

	"go.uber.org/zap"
)

const (
	tagsPath = "/api/tags"
	pullPath = "/api/pull"
)

// Models returns the names of the models installed on the service.
func (c *Client) Models(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	var tags tagsResponse
	if err := c.GetJSON(ctx, tagsPath, &tags); err != nil {
		return nil, err
	}

	names := make([]string, len(tags.Models))
	for i, m := range tags.Models {
		names[i] = m.Name
	}

	return names, nil
}

// Available reports whether the service is reachable and serving its model
// catalog.
func (c *Client) Available(ctx context.Context) bool {
	_, err := c.Models(ctx)
	if err != nil {
		c.logger().Warn("service availability check failed", zap.Error(err))
		return false
	}

	return true
}

// ValidateModel reports whether the named model is installed on the service.
// This is an advisory check: any transport or decode failure degrades to
// false rather than propagating as an error.
func (c *Client) ValidateModel(ctx context.Context, name string) bool {
	names, err := c.Models(ctx)
	if err != nil {
		c.logger().Warn("model validation degraded to unavailable",
			zap.String("model", name), zap.Error(err))
		return false
	}

	return slices.Contains(names, name)
}

// PullModel requests installation of the named model if it is not already
// present, waits the configured grace period for the service to register it,
// and reports whether the model became available. A non-success installation
// response is returned as a hard error.
func (c *Client) PullModel(ctx context.Context, name string) (bool, error) {
	if c.ValidateModel(ctx, name) {
		return true, nil
	}

	if err := c.PostJSON(ctx, pullPath, pullRequest{Name: name}, nil); err != nil {
		return false, err
	}

	// Installation is asynchronous on the service side; give it a moment
	// before re-checking.
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case <-time.After(c.cfg.PullGrace):
	}

	return c.ValidateModel(ctx, name), nil
}

// --- wire types ---

type tagsResponse struct {
	Models []tagModel `json:"models"`
}

type tagModel struct {
	Name string `json:"name"`
}

type pullRequest struct {
	Name string `json:"name"`
}
