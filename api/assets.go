package api

import (
	"context"
	"errors"
	"strings"

	investfolio "github.com/vtorres/investfolio"
)

// ResolveAsset maps a ticker and category to a durable asset identifier by
// attempting creation, exactly once. Three outcomes:
//
//   - the asset was created (or the backend handed back an existing one):
//     the returned identifier is authoritative;
//   - the backend answered with a business conflict: the asset exists but
//     the response carries no identifier, reported as AlreadyExists;
//   - anything else (network fault, server error, unrelated validation
//     failure) propagates as an error, never retried.
func (c *Client) ResolveAsset(ctx context.Context, ticker string, category investfolio.Category, name string) (investfolio.Resolution, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if name == "" {
		name = ticker
	}

	in := struct {
		Ticker   string `json:"ticker"`
		Category string `json:"category"`
		Name     string `json:"name"`
	}{ticker, category.String(), name}

	var asset investfolio.Asset
	err := c.postJSON(ctx, "/portfolio/assets", nil, in, &asset)
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Conflict() {
		return investfolio.Resolution{AlreadyExists: true}, nil
	}
	if err != nil {
		return investfolio.Resolution{}, err
	}
	return investfolio.Resolution{ID: asset.ID}, nil
}
