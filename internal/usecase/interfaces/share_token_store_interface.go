package interfaces

import (
	"context"

	"threadquote/internal/domain/entities"
)

// IShareTokenStore is the registry mapping opaque share tokens to frozen
// quote snapshots. The in-memory implementation has no TTL or revocation;
// the interface is the swap point for one that does.
//
// Mint deep-copies the quote so later edits never reach the snapshot.
// Get and SetResponse report unknown tokens as zero values with nil error.
// SetResponse is last-write-wins: the entry keeps only the latest response,
// while the live quote keeps the full history.

type IShareTokenStore interface {
	Mint(ctx context.Context, quote entities.Quote) (entities.ShareTokenEntry, error)
	Get(ctx context.Context, token string) (entities.ShareTokenEntry, error)
	SetResponse(ctx context.Context, token string, status entities.ResponseStatus, notes string) (entities.Response, error)
}
