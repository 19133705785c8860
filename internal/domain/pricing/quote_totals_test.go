package pricing

import (
	"testing"

	"threadquote/internal/domain/entities"
)

func TestInternalQuoteTotals(t *testing.T) {
	tee := baseLineItem()

	hoodie := entities.LineItem{
		ID:            "li-2",
		Title:         "Fleece Hoodie",
		SizeQty:       map[string]int{"M": 1, "L": 2},
		CostBySize:    map[string]float64{"M": 12.5, "L": 13},
		MarkupType:    entities.MarkupTypePercent,
		MarkupPerItem: 20,
		Adjusters: []entities.Adjuster{
			{ID: "a1", Name: "Embroidery setup", Type: entities.AdjusterTypeFlat, Amount: 40},
		},
	}

	got := InternalQuoteTotals([]entities.LineItem{tee, hoodie})

	// hoodie: sells 15.00 and 15.60, sell = 15 + 31.20 + 40 = 86.20, cost = 38.50
	if got.TotalQty != 8 {
		t.Fatalf("expected qty 8, got %d", got.TotalQty)
	}
	if got.CostSubtotal != 66.5 {
		t.Fatalf("expected cost 66.50, got %v", got.CostSubtotal)
	}
	if got.SellTotal != 124.2 {
		t.Fatalf("expected sell 124.20, got %v", got.SellTotal)
	}
	if got.Profit != Round2(got.SellTotal-got.CostSubtotal) {
		t.Fatalf("profit %v != sell - cost", got.Profit)
	}

	t.Run("empty quote", func(t *testing.T) {
		got := InternalQuoteTotals(nil)
		if got.TotalQty != 0 || got.SellTotal != 0 || got.CostSubtotal != 0 || got.Profit != 0 {
			t.Fatalf("expected zero totals, got %+v", got)
		}
	})
}

func TestCustomerTotals(t *testing.T) {
	tee := baseLineItem()
	polo := entities.LineItem{
		ID:            "li-3",
		SizeQty:       map[string]int{"S": 1},
		CostBySize:    map[string]float64{"S": 10},
		MarkupType:    entities.MarkupTypeDollar,
		MarkupPerItem: 5,
	}

	got := CustomerTotals([]entities.LineItem{tee, polo})

	if got.TotalQty != 6 {
		t.Fatalf("expected qty 6, got %d", got.TotalQty)
	}
	if got.SellTotal != 53 {
		t.Fatalf("expected sell 53, got %v", got.SellTotal)
	}

	t.Run("matches internal sell totals", func(t *testing.T) {
		items := []entities.LineItem{tee, polo}
		internal := InternalQuoteTotals(items)
		customer := CustomerTotals(items)
		if customer.SellTotal != internal.SellTotal {
			t.Fatalf("customer %v != internal %v", customer.SellTotal, internal.SellTotal)
		}
	})
}
