package response

import (
	"threadquote/internal/domain/entities"
	"threadquote/internal/domain/pricing"
)

// CustomerLineItemView is one line item as the customer sees it: display
// fields plus the sell-side pricing table. It is built exclusively from the
// customer projection, so cost and profit fields cannot appear here.
type CustomerLineItemView struct {
	ID            string                `json:"id"`
	Title         string                `json:"title"`
	Brand         string                `json:"brand"`
	StyleNumber   string                `json:"style_number"`
	Color         string                `json:"color"`
	Rows          []pricing.CustomerRow `json:"rows"`
	LineTotal     float64               `json:"line_total"`
	FlatAdjusters float64               `json:"flat_adjusters,omitempty"`
}

// CustomerQuoteView is the customer-safe projection of a quote snapshot.
type CustomerQuoteView struct {
	ID        string                      `json:"id"`
	Name      string                      `json:"name"`
	Customer  entities.Customer           `json:"customer"`
	Notes     string                      `json:"notes"`
	LineItems []CustomerLineItemView      `json:"line_items"`
	Totals    pricing.CustomerQuoteTotals `json:"totals"`
}

// FromQuoteSnapshot maps a frozen quote snapshot to its customer-safe view.
// Line items pass through pricing.CustomerLineProjection; the raw entity
// with its cost map is never marshaled.
func FromQuoteSnapshot(q entities.Quote) CustomerQuoteView {
	items := make([]CustomerLineItemView, 0, len(q.LineItems))
	for _, li := range q.LineItems {
		p := pricing.CustomerLineProjection(li)
		items = append(items, CustomerLineItemView{
			ID:            li.ID,
			Title:         li.Title,
			Brand:         li.Brand,
			StyleNumber:   li.StyleNumber,
			Color:         li.Color,
			Rows:          p.Rows,
			LineTotal:     p.LineTotal,
			FlatAdjusters: p.FlatAdjusters,
		})
	}

	return CustomerQuoteView{
		ID:        q.ID,
		Name:      q.Name,
		Customer:  q.Customer,
		Notes:     q.Notes,
		LineItems: items,
		Totals:    pricing.CustomerTotals(q.LineItems),
	}
}
