package interfaces

import (
	"context"

	"threadquote/internal/domain/entities"
)

// IQuoteRepository abstracts persistence for Quote aggregates.
//
// Conventions (shared by all repositories here):
//   - "not found" is reported as a zero-value entity with a nil error;
//     use cases translate that into their own sentinel errors.
//   - Responses is an append-only log: AppendResponse is the only write
//     path for it, and it also derives the quote status from the appended
//     entry.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
	UpdateDetails(ctx context.Context, id string, name string, customer entities.Customer, notes string) (entities.Quote, error)
	ReplaceLineItems(ctx context.Context, id string, items []entities.LineItem) (entities.Quote, error)
	SetShareToken(ctx context.Context, id string, token string) (entities.Quote, error)
	AppendResponse(ctx context.Context, id string, r entities.Response) (entities.Quote, error)
	Delete(ctx context.Context, id string) error
}
