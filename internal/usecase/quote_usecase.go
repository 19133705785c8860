package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"threadquote/internal/domain/entities"
	"threadquote/internal/domain/pricing"
	"threadquote/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound    = errors.New("quote not found")
	ErrInvalidQuoteID   = errors.New("invalid quote id")
	ErrLineItemNotFound = errors.New("line item not found")
	ErrInvalidLineItem  = errors.New("invalid line item")
)

const defaultQuoteName = "Untitled Quote"

// IQuoteUseCase exposes operator-side quote assembly: quote CRUD, line item
// CRUD and live totals. Customer-facing flows live in IApprovalUseCase.

type IQuoteUseCase interface {
	CreateQuote(ctx context.Context, name string, customer entities.Customer, notes string) (entities.Quote, error)
	GetQuote(ctx context.Context, id string) (entities.Quote, error)
	ListQuotes(ctx context.Context) ([]entities.Quote, error)
	UpdateQuote(ctx context.Context, id string, name string, customer entities.Customer, notes string) (entities.Quote, error)
	DeleteQuote(ctx context.Context, id string) error
	AddLineItem(ctx context.Context, quoteID string, item entities.LineItem) (entities.Quote, error)
	UpdateLineItem(ctx context.Context, quoteID string, lineItemID string, item entities.LineItem) (entities.Quote, error)
	RemoveLineItem(ctx context.Context, quoteID string, lineItemID string) (entities.Quote, error)
	QuoteTotals(ctx context.Context, quoteID string) (pricing.QuoteTotals, error)
}

type QuoteUseCase struct {
	repo    interfaces.IQuoteRepository
	catalog interfaces.ICatalogProvider
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, catalog interfaces.ICatalogProvider) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, catalog: catalog}
}

func (u *QuoteUseCase) CreateQuote(ctx context.Context, name string, customer entities.Customer, notes string) (entities.Quote, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultQuoteName
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:        uuid.NewString(),
		Name:      name,
		Customer:  customer,
		Notes:     notes,
		LineItems: []entities.LineItem{},
		Status:    entities.QuoteStatusDraft,
		Responses: []entities.Response{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, q)
}

func (u *QuoteUseCase) GetQuote(ctx context.Context, id string) (entities.Quote, error) {
	return u.loadQuote(ctx, id)
}

func (u *QuoteUseCase) ListQuotes(ctx context.Context) ([]entities.Quote, error) {
	return u.repo.List(ctx)
}

func (u *QuoteUseCase) UpdateQuote(ctx context.Context, id string, name string, customer entities.Customer, notes string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultQuoteName
	}

	updated, err := u.repo.UpdateDetails(ctx, id, name, customer, notes)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

func (u *QuoteUseCase) DeleteQuote(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidQuoteID
	}

	// Outstanding share tokens are NOT revoked here; an already-sent link
	// keeps serving its frozen snapshot.
	if _, err := u.loadQuote(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

func (u *QuoteUseCase) AddLineItem(ctx context.Context, quoteID string, item entities.LineItem) (entities.Quote, error) {
	q, err := u.loadQuote(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if len(item.SizeQty) == 0 {
		return entities.Quote{}, ErrInvalidLineItem
	}

	item.ID = uuid.NewString()
	if item.MarkupType == "" {
		item.MarkupType = entities.MarkupTypeDollar
	}
	if err := u.fillMissingCosts(ctx, &item); err != nil {
		return entities.Quote{}, err
	}

	return u.saveLineItems(ctx, q.ID, append(q.LineItems, item))
}

func (u *QuoteUseCase) UpdateLineItem(ctx context.Context, quoteID string, lineItemID string, item entities.LineItem) (entities.Quote, error) {
	q, err := u.loadQuote(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}

	idx := -1
	for i, li := range q.LineItems {
		if li.ID == lineItemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return entities.Quote{}, ErrLineItemNotFound
	}
	if len(item.SizeQty) == 0 {
		return entities.Quote{}, ErrInvalidLineItem
	}

	item.ID = lineItemID
	if item.MarkupType == "" {
		item.MarkupType = q.LineItems[idx].MarkupType
	}

	items := make([]entities.LineItem, len(q.LineItems))
	copy(items, q.LineItems)
	items[idx] = item

	return u.saveLineItems(ctx, q.ID, items)
}

func (u *QuoteUseCase) RemoveLineItem(ctx context.Context, quoteID string, lineItemID string) (entities.Quote, error) {
	q, err := u.loadQuote(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}

	items := make([]entities.LineItem, 0, len(q.LineItems))
	for _, li := range q.LineItems {
		if li.ID != lineItemID {
			items = append(items, li)
		}
	}
	if len(items) == len(q.LineItems) {
		return entities.Quote{}, ErrLineItemNotFound
	}

	return u.saveLineItems(ctx, q.ID, items)
}

func (u *QuoteUseCase) QuoteTotals(ctx context.Context, quoteID string) (pricing.QuoteTotals, error) {
	q, err := u.loadQuote(ctx, quoteID)
	if err != nil {
		return pricing.QuoteTotals{}, err
	}
	return pricing.InternalQuoteTotals(q.LineItems), nil
}

func (u *QuoteUseCase) loadQuote(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) saveLineItems(ctx context.Context, quoteID string, items []entities.LineItem) (entities.Quote, error) {
	updated, err := u.repo.ReplaceLineItems(ctx, quoteID, items)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

// fillMissingCosts resolves unit costs from the catalog for sizes that carry
// a quantity but no cost. Sizes the catalog cannot price are costed at 0,
// which pricing treats the same as an absent cost entry.
func (u *QuoteUseCase) fillMissingCosts(ctx context.Context, item *entities.LineItem) error {
	if u.catalog == nil || item.ProductID == "" {
		return nil
	}

	if item.CostBySize == nil {
		item.CostBySize = make(map[string]float64, len(item.SizeQty))
	}
	for size, qty := range item.SizeQty {
		if qty <= 0 {
			continue
		}
		if _, ok := item.CostBySize[size]; ok {
			continue
		}

		cost, err := u.catalog.GetUnitCost(ctx, item.ProductID, size)
		if err != nil {
			return err
		}
		item.CostBySize[size] = cost
	}
	return nil
}
