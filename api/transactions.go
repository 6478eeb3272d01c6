package api

import (
	"context"

	investfolio "github.com/vtorres/investfolio"
)

// RecordTrade submits an immutable trade record to the backend ledger. The
// created-transaction payload is discarded: the client keeps no local copy
// of submitted trades.
func (c *Client) RecordTrade(ctx context.Context, rec investfolio.Record) error {
	return c.postJSON(ctx, "/portfolio/transactions", nil, rec, nil)
}
