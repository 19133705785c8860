package pricing

import (
	"encoding/json"
	"strings"
	"testing"

	"threadquote/internal/domain/entities"
)

func baseLineItem() entities.LineItem {
	return entities.LineItem{
		ID:            "li-1",
		Title:         "Heavy Cotton Tee",
		SizeQty:       map[string]int{"S": 2, "M": 3},
		CostBySize:    map[string]float64{"S": 5, "M": 6},
		MarkupType:    entities.MarkupTypeDollar,
		MarkupPerItem: 2,
	}
}

func TestInternalLineTotals(t *testing.T) {
	t.Run("dollar markup", func(t *testing.T) {
		got := InternalLineTotals(baseLineItem())

		if got.QtyTotal != 5 {
			t.Fatalf("expected qty 5, got %d", got.QtyTotal)
		}
		if got.CostTotal != 28 {
			t.Fatalf("expected cost 28, got %v", got.CostTotal)
		}
		if got.SellTotal != 38 {
			t.Fatalf("expected sell 38, got %v", got.SellTotal)
		}
		if got.Profit != 10 {
			t.Fatalf("expected profit 10, got %v", got.Profit)
		}
	})

	t.Run("percent markup multiplies cost only", func(t *testing.T) {
		li := baseLineItem()
		li.MarkupType = entities.MarkupTypePercent
		li.MarkupPerItem = 10

		got := InternalLineTotals(li)

		// unit sells 5.50 and 6.60
		if got.SellTotal != 30.8 {
			t.Fatalf("expected sell 30.80, got %v", got.SellTotal)
		}
	})

	t.Run("flat adjuster is pure margin", func(t *testing.T) {
		li := baseLineItem()
		li.Adjusters = []entities.Adjuster{
			{ID: "a1", Name: "Setup", Type: entities.AdjusterTypeFlat, Amount: 15},
		}

		got := InternalLineTotals(li)

		if got.SellTotal != 53 {
			t.Fatalf("expected sell 53, got %v", got.SellTotal)
		}
		if got.Profit != 25 {
			t.Fatalf("expected profit 25, got %v", got.Profit)
		}
		if got.CostTotal != 28 {
			t.Fatalf("expected cost unchanged at 28, got %v", got.CostTotal)
		}
	})

	t.Run("per item adjuster shifts every unit", func(t *testing.T) {
		li := baseLineItem()
		li.Adjusters = []entities.Adjuster{
			{ID: "a1", Name: "Extra print", Type: entities.AdjusterTypePerItem, Amount: 1},
		}

		if got := InternalLineTotals(li); got.SellTotal != 43 {
			t.Fatalf("expected sell 43, got %v", got.SellTotal)
		}
	})

	t.Run("profit equals sell minus cost", func(t *testing.T) {
		li := baseLineItem()
		li.MarkupType = entities.MarkupTypePercent
		li.MarkupPerItem = 17.5
		li.Adjusters = []entities.Adjuster{
			{Type: entities.AdjusterTypePerItem, Amount: 0.33},
			{Type: entities.AdjusterTypeFlat, Amount: 12.99},
		}

		got := InternalLineTotals(li)
		if got.Profit != Round2(got.SellTotal-got.CostTotal) {
			t.Fatalf("profit %v != sell %v - cost %v", got.Profit, got.SellTotal, got.CostTotal)
		}
	})

	t.Run("zero and missing quantities are skipped", func(t *testing.T) {
		li := baseLineItem()
		li.SizeQty["L"] = 0
		li.SizeQty["XL"] = -2
		li.CostBySize["L"] = 100

		got := InternalLineTotals(li)
		if got.QtyTotal != 5 || got.SellTotal != 38 {
			t.Fatalf("zero-qty sizes leaked into totals: %+v", got)
		}
	})

	t.Run("missing cost defaults to zero", func(t *testing.T) {
		li := baseLineItem()
		delete(li.CostBySize, "M")

		got := InternalLineTotals(li)
		// M sells at 0 + 2 markup
		if got.CostTotal != 10 || got.SellTotal != 20 {
			t.Fatalf("unexpected totals with missing cost: %+v", got)
		}
	})

	t.Run("empty line item", func(t *testing.T) {
		got := InternalLineTotals(entities.LineItem{})
		if got.QtyTotal != 0 || got.SellTotal != 0 || got.UnitSellAvg != 0 {
			t.Fatalf("expected zero totals, got %+v", got)
		}
	})

	t.Run("deterministic for unmutated input", func(t *testing.T) {
		li := baseLineItem()
		first := InternalLineTotals(li)
		second := InternalLineTotals(li)
		if first != second {
			t.Fatalf("totals differ across calls: %+v vs %+v", first, second)
		}
	})
}

func TestCustomerLineProjection(t *testing.T) {
	t.Run("rows in size-run order with sell prices only", func(t *testing.T) {
		got := CustomerLineProjection(baseLineItem())

		if len(got.Rows) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(got.Rows))
		}
		if got.Rows[0].Size != "S" || got.Rows[1].Size != "M" {
			t.Fatalf("unexpected row order: %+v", got.Rows)
		}
		if got.Rows[0].UnitSell != 7 || got.Rows[0].Total != 14 {
			t.Fatalf("unexpected S row: %+v", got.Rows[0])
		}
		if got.LineTotal != 38 {
			t.Fatalf("expected line total 38, got %v", got.LineTotal)
		}
	})

	t.Run("never exposes cost or profit", func(t *testing.T) {
		li := baseLineItem()
		li.Adjusters = []entities.Adjuster{
			{ID: "a1", Name: "Setup", Type: entities.AdjusterTypeFlat, Amount: 15},
		}

		b, err := json.Marshal(CustomerLineProjection(li))
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		lower := strings.ToLower(string(b))
		for _, forbidden := range []string{"cost", "profit", "markup"} {
			if strings.Contains(lower, forbidden) {
				t.Fatalf("customer projection leaks %q: %s", forbidden, b)
			}
		}
	})

	t.Run("excludes zero quantity rows", func(t *testing.T) {
		li := baseLineItem()
		li.SizeQty["L"] = 0

		got := CustomerLineProjection(li)
		for _, row := range got.Rows {
			if row.Size == "L" {
				t.Fatalf("zero-qty row present: %+v", got.Rows)
			}
		}
	})

	t.Run("line total includes flat adjusters", func(t *testing.T) {
		li := baseLineItem()
		li.Adjusters = []entities.Adjuster{
			{Type: entities.AdjusterTypeFlat, Amount: 15},
		}

		got := CustomerLineProjection(li)
		if got.LineTotal != 53 || got.FlatAdjusters != 15 {
			t.Fatalf("unexpected flat handling: %+v", got)
		}
	})

	t.Run("agrees with internal sell total", func(t *testing.T) {
		li := baseLineItem()
		li.MarkupType = entities.MarkupTypePercent
		li.MarkupPerItem = 10

		internal := InternalLineTotals(li)
		customer := CustomerLineProjection(li)
		if customer.LineTotal != internal.SellTotal {
			t.Fatalf("projections disagree: customer %v, internal %v", customer.LineTotal, internal.SellTotal)
		}
	})
}

func TestSortedSizes(t *testing.T) {
	sizes := sortedSizes(map[string]int{"One Size": 1, "M": 1, "XS": 1, "2XL": 1, "L": 1})
	want := []string{"XS", "M", "L", "2XL", "One Size"}
	for i, s := range want {
		if sizes[i] != s {
			t.Fatalf("unexpected order %v, want %v", sizes, want)
		}
	}
}
