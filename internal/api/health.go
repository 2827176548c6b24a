package api

import (
	"context"
	"fmt"
)

// Health calls /api/health and returns its status string.
func (c *Client) Health(ctx context.Context) (string, error) {
	data, err := c.get(ctx, "/api/health")
	if err != nil {
		return "", fmt.Errorf("health: %w", err)
	}

	payload, err := decodeInto[struct {
		Status string `json:"status"`
	}](data)
	if err != nil {
		return "", err
	}
	return payload.Status, nil
}
