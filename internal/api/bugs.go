package api

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/sync/errgroup"
)

// maxParallelLookups bounds GetBugs fan-out.
const maxParallelLookups = 4

// GetBug fetches /api/bug/{id}.json. Concurrent lookups of the same id share
// one request.
func (c *Client) GetBug(ctx context.Context, id string) (*BugSummary, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.New("bug id is required")
	}

	v, err, _ := c.lookups.Do(id, func() (any, error) {
		return c.fetchBug(ctx, id)
	})
	if err != nil && ctx.Err() == nil && errors.Is(err, context.Canceled) {
		// The shared request belonged to a caller that gave up.
		return c.fetchBug(ctx, id)
	}
	if err != nil {
		return nil, err
	}
	return v.(*BugSummary), nil
}

func (c *Client) fetchBug(ctx context.Context, id string) (*BugSummary, error) {
	data, err := c.get(ctx, "/api/bug/"+url.PathEscape(id)+".json")
	if err != nil {
		return nil, fmt.Errorf("bug %s: %w", id, err)
	}
	return decodeInto[BugSummary](data)
}

// GetBugs fetches several bugs concurrently. Results are in input order; the
// first failure cancels the remaining lookups.
func (c *Client) GetBugs(ctx context.Context, ids []string) ([]*BugSummary, error) {
	out := make([]*BugSummary, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelLookups)
	for i, id := range ids {
		g.Go(func() error {
			bug, err := c.GetBug(gctx, id)
			if err != nil {
				return err
			}
			out[i] = bug
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateBug posts a new bug.
func (c *Client) CreateBug(ctx context.Context, draft BugDraft) (*CreatedBug, error) {
	if strings.TrimSpace(draft.Summary) == "" {
		return nil, errors.New("summary is required")
	}
	data, err := c.post(ctx, "/api/bug.json", draft)
	if err != nil {
		return nil, fmt.Errorf("create bug: %w", err)
	}
	return decodeInto[CreatedBug](data)
}
