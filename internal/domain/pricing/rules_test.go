package pricing

import (
	"testing"

	"threadquote/internal/domain/entities"
)

func TestUnitSellPrice(t *testing.T) {
	t.Run("dollar markup adds to cost", func(t *testing.T) {
		if got := UnitSellPrice(5, entities.MarkupTypeDollar, 2, 0); got != 7 {
			t.Fatalf("expected 7, got %v", got)
		}
	})

	t.Run("percent markup multiplies cost only", func(t *testing.T) {
		got := UnitSellPrice(10, entities.MarkupTypePercent, 10, 1)
		// 10 * 1.10 = 11, adjuster applied after markup, never multiplied.
		if Round2(got) != 12 {
			t.Fatalf("expected 12, got %v", got)
		}
	})

	t.Run("per item adjuster applied after dollar markup", func(t *testing.T) {
		if got := UnitSellPrice(5, entities.MarkupTypeDollar, 2, 1.5); got != 8.5 {
			t.Fatalf("expected 8.5, got %v", got)
		}
	})

	t.Run("empty markup type behaves as dollar", func(t *testing.T) {
		if got := UnitSellPrice(5, "", 2, 0); got != 7 {
			t.Fatalf("expected 7, got %v", got)
		}
	})

	t.Run("negative adjuster may drive sell below zero", func(t *testing.T) {
		if got := UnitSellPrice(3, entities.MarkupTypeDollar, 0, -5); got != -2 {
			t.Fatalf("expected -2, got %v", got)
		}
	})
}

func TestAdjusterTotals(t *testing.T) {
	adjusters := []entities.Adjuster{
		{ID: "a1", Name: "Setup fee", Type: entities.AdjusterTypeFlat, Amount: 25},
		{ID: "a2", Name: "Extra print", Type: entities.AdjusterTypePerItem, Amount: 1.5},
		{ID: "a3", Name: "Loyalty discount", Type: entities.AdjusterTypePerItem, Amount: -0.5},
		{ID: "a4", Name: "Rush", Type: entities.AdjusterTypeFlat, Amount: 10},
	}

	if got := PerItemAdjusterTotal(adjusters); got != 1 {
		t.Fatalf("expected per item total 1, got %v", got)
	}
	if got := FlatAdjusterTotal(adjusters); got != 35 {
		t.Fatalf("expected flat total 35, got %v", got)
	}

	t.Run("order does not change totals", func(t *testing.T) {
		reversed := []entities.Adjuster{adjusters[3], adjusters[2], adjusters[1], adjusters[0]}
		if PerItemAdjusterTotal(reversed) != PerItemAdjusterTotal(adjusters) {
			t.Fatalf("per item total changed under reordering")
		}
		if FlatAdjusterTotal(reversed) != FlatAdjusterTotal(adjusters) {
			t.Fatalf("flat total changed under reordering")
		}
	})

	t.Run("empty list", func(t *testing.T) {
		if PerItemAdjusterTotal(nil) != 0 || FlatAdjusterTotal(nil) != 0 {
			t.Fatalf("expected zero totals for nil adjusters")
		}
	})
}
