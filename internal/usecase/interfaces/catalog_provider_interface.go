package interfaces

import (
	"context"

	"threadquote/internal/domain/entities"
)

// ICatalogProvider abstracts the supplier catalog API. It is consulted only
// while building a line item's cost-by-size map, never during pricing
// computation.
type ICatalogProvider interface {
	GetUnitCost(ctx context.Context, productID string, size string) (float64, error)
	ListBrands(ctx context.Context) ([]entities.Brand, error)
}
