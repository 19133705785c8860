package response

import (
	"testing"
	"time"

	"threadquote/internal/domain/entities"
)

func testQuote() entities.Quote {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return entities.Quote{
		ID:       "quote-1",
		Name:     "Spring Tees",
		Customer: entities.Customer{Name: "Acme Co", Email: "buyer@acme.test"},
		LineItems: []entities.LineItem{
			{
				ID:            "li-1",
				Title:         "Team Tee",
				SizeQty:       map[string]int{"S": 2, "M": 3},
				CostBySize:    map[string]float64{"S": 5, "M": 6},
				MarkupType:    entities.MarkupTypeDollar,
				MarkupPerItem: 2,
			},
		},
		Status: entities.QuoteStatusPending,
		Responses: []entities.Response{
			{Status: entities.ResponseStatusPending, Date: now},
		},
		ShareToken: "tok-abc",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestFromQuote(t *testing.T) {
	q := testQuote()

	res := FromQuote(q)
	if res.ID != "quote-1" || res.Name != "Spring Tees" {
		t.Fatalf("unexpected header fields: %+v", res)
	}
	if res.Status != "pending" || res.ShareToken != "tok-abc" {
		t.Fatalf("unexpected status fields: %+v", res)
	}
	if len(res.LineItems) != 1 || len(res.Responses) != 1 {
		t.Fatalf("unexpected collections: %+v", res)
	}
	if res.Responses[0].Status != "pending" {
		t.Fatalf("unexpected response entry: %+v", res.Responses[0])
	}
	// S:2@5 + M:3@6 = 28 cost; +$2/unit = 38 sell; profit 10.
	if res.Totals.TotalQty != 5 || res.Totals.CostSubtotal != 28 || res.Totals.SellTotal != 38 || res.Totals.Profit != 10 {
		t.Fatalf("unexpected totals: %+v", res.Totals)
	}
	if !res.CreatedAt.Equal(q.CreatedAt) || !res.UpdatedAt.Equal(q.UpdatedAt) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromQuotes(t *testing.T) {
	out := FromQuotes([]entities.Quote{testQuote(), testQuote()})
	if len(out) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(out))
	}

	if out := FromQuotes(nil); len(out) != 0 {
		t.Fatalf("expected empty slice, got %+v", out)
	}
}
