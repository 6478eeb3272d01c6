package api

import (
	"context"
	"time"

	cache "github.com/patrickmn/go-cache"
	investfolio "github.com/vtorres/investfolio"
)

// portfolioTag is the single logical key of the holdings cache.
const portfolioTag = "portfolio"

// Holdings fetches the backend-computed portfolio aggregates, uncached.
func (c *Client) Holdings(ctx context.Context) ([]investfolio.Holding, error) {
	var holdings []investfolio.Holding
	if err := c.get(ctx, "/portfolio/portfolio", &holdings); err != nil {
		return nil, err
	}
	return holdings, nil
}

// PortfolioView serves holdings through a disposable cache. The cached value
// lives under one tag; invalidation is a single delete, so concurrent
// readers see either the pre- or post-invalidation value, never a torn one.
type PortfolioView struct {
	client *Client
	cache  *cache.Cache
}

// NewPortfolioView builds a view over the client. Entries expire on their
// own after a minute; a recorded trade invalidates them immediately.
func NewPortfolioView(client *Client) *PortfolioView {
	return &PortfolioView{
		client: client,
		cache:  cache.New(time.Minute, 5*time.Minute),
	}
}

// Holdings returns the cached aggregates, fetching on a miss.
func (v *PortfolioView) Holdings(ctx context.Context) ([]investfolio.Holding, error) {
	if cached, ok := v.cache.Get(portfolioTag); ok {
		return cached.([]investfolio.Holding), nil
	}
	holdings, err := v.client.Holdings(ctx)
	if err != nil {
		return nil, err
	}
	v.cache.SetDefault(portfolioTag, holdings)
	return holdings, nil
}

// Invalidate marks the portfolio stale so the next read refetches.
func (v *PortfolioView) Invalidate() {
	v.cache.Delete(portfolioTag)
}
