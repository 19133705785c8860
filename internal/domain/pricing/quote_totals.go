package pricing

import "threadquote/internal/domain/entities"

// QuoteTotals is the operator-facing roll-up across all line items.
type QuoteTotals struct {
	TotalQty     int     `json:"total_qty"`
	CostSubtotal float64 `json:"cost_subtotal"`
	SellTotal    float64 `json:"sell_total"`
	Profit       float64 `json:"profit"`
}

// CustomerQuoteTotals is the customer-safe roll-up.
type CustomerQuoteTotals struct {
	TotalQty  int     `json:"total_qty"`
	SellTotal float64 `json:"sell_total"`
}

// InternalQuoteTotals folds InternalLineTotals across the quote. Per-line
// values are summed and then rounded once more at the quote level
// (sum-then-round, not round-then-sum).
func InternalQuoteTotals(lineItems []entities.LineItem) QuoteTotals {
	out := QuoteTotals{}

	for _, li := range lineItems {
		t := InternalLineTotals(li)
		out.TotalQty += t.QtyTotal
		out.CostSubtotal += t.CostTotal
		out.SellTotal += t.SellTotal
		out.Profit += t.Profit
	}

	out.CostSubtotal = Round2(out.CostSubtotal)
	out.SellTotal = Round2(out.SellTotal)
	out.Profit = Round2(out.Profit)

	return out
}

// CustomerTotals folds the customer projections across the quote.
func CustomerTotals(lineItems []entities.LineItem) CustomerQuoteTotals {
	out := CustomerQuoteTotals{}

	for _, li := range lineItems {
		p := CustomerLineProjection(li)
		out.TotalQty += p.TotalQty
		out.SellTotal += p.LineTotal
	}

	out.SellTotal = Round2(out.SellTotal)

	return out
}
