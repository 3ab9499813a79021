package repository

import (
	"context"

	"github.com/opmodel/enhance/internal/output"
	"github.com/opmodel/enhance/internal/project"
)

// Chain resolves against a local repository and falls back to remotes,
// installing downloaded artifacts into the local repository.
type Chain struct {
	local   *Local
	remotes []*Remote
}

// NewChain creates a Chain. Remotes are tried in the given order.
func NewChain(local *Local, remotes ...*Remote) *Chain {
	return &Chain{local: local, remotes: remotes}
}

// Resolve implements Resolver.
func (c *Chain) Resolve(ctx context.Context, coords project.Coordinates) (string, error) {
	p, err := c.local.Resolve(ctx, coords)
	if err == nil {
		return p, nil
	}
	if !IsNotFound(err) {
		return "", err
	}

	causes := []error{err}
	for _, r := range c.remotes {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}

		output.Debug("downloading artifact", "artifact", coords, "repository", r.ID)
		if err := r.Fetch(ctx, coords, c.local.PathOf(coords)); err != nil {
			causes = append(causes, err)
			continue
		}
		return c.local.Resolve(ctx, coords)
	}

	return "", &UnresolvedError{Coordinates: coords, Causes: causes}
}
