package pricing

import "threadquote/internal/domain/entities"

// This file is the single canonical implementation of the cost-to-sell
// formula. Line item totals, quote totals and the customer projection all
// call into it; the markup math must never be restated elsewhere.

// UnitSellPrice computes the unit sell price from unit cost, markup mode and
// the per-item adjuster total.
//
// Order matters: percent markup multiplies cost only, then per-item
// adjusters are added after markup in both modes. There is no floor at
// zero; a negative markup or adjuster may drive the result negative and
// callers must display that correctly.
func UnitSellPrice(unitCost float64, markupType entities.MarkupType, markupPerItem, perItemAdjusterTotal float64) float64 {
	unitSell := unitCost

	switch markupType {
	case entities.MarkupTypePercent:
		unitSell *= 1 + markupPerItem/100
	default:
		// dollar markup is the default mode
		unitSell += markupPerItem
	}

	return unitSell + perItemAdjusterTotal
}

// PerItemAdjusterTotal sums the amounts of perItem adjusters.
func PerItemAdjusterTotal(adjusters []entities.Adjuster) float64 {
	total := 0.0
	for _, a := range adjusters {
		if a.Type == entities.AdjusterTypePerItem {
			total += a.Amount
		}
	}
	return total
}

// FlatAdjusterTotal sums the amounts of flat adjusters. Flat adjusters are
// added once per line item, independent of quantity, and carry no cost, so
// they are pure margin.
func FlatAdjusterTotal(adjusters []entities.Adjuster) float64 {
	total := 0.0
	for _, a := range adjusters {
		if a.Type == entities.AdjusterTypeFlat {
			total += a.Amount
		}
	}
	return total
}
