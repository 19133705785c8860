package response

import (
	"encoding/json"
	"strings"
	"testing"

	"threadquote/internal/domain/entities"
)

func TestFromQuoteSnapshot(t *testing.T) {
	q := testQuote()

	view := FromQuoteSnapshot(q)
	if view.ID != "quote-1" || len(view.LineItems) != 1 {
		t.Fatalf("unexpected view: %+v", view)
	}

	li := view.LineItems[0]
	if li.ID != "li-1" || li.Title != "Team Tee" {
		t.Fatalf("unexpected line item fields: %+v", li)
	}
	// S:2@7 + M:3@8 = 38.
	if li.LineTotal != 38 {
		t.Fatalf("unexpected line total: %v", li.LineTotal)
	}
	if len(li.Rows) != 2 || li.Rows[0].Size != "S" || li.Rows[1].Size != "M" {
		t.Fatalf("unexpected rows: %+v", li.Rows)
	}
	if view.Totals.TotalQty != 5 || view.Totals.SellTotal != 38 {
		t.Fatalf("unexpected totals: %+v", view.Totals)
	}
}

func TestFromQuoteSnapshotNeverMarshalsCostFields(t *testing.T) {
	q := testQuote()
	q.LineItems[0].Adjusters = []entities.Adjuster{
		{ID: "adj-1", Name: "Setup fee", Type: entities.AdjusterTypeFlat, Amount: 25},
	}

	b, err := json.Marshal(FromQuoteSnapshot(q))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	raw := string(b)
	for _, leak := range []string{"cost", "profit", "markup", "adjuster_list"} {
		if strings.Contains(raw, leak) {
			t.Fatalf("customer payload leaks %q: %s", leak, raw)
		}
	}
	if !strings.Contains(raw, `"flat_adjusters":25`) {
		t.Fatalf("flat adjusters missing from payload: %s", raw)
	}
}
