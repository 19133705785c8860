package pricing

import (
	"sort"

	"threadquote/internal/domain/entities"
)

// LineItemTotals is the operator-facing aggregation of one line item.
type LineItemTotals struct {
	QtyTotal         int     `json:"qty_total"`
	CostTotal        float64 `json:"cost_total"`
	SellTotal        float64 `json:"sell_total"`
	Profit           float64 `json:"profit"`
	UnitSellAvg      float64 `json:"unit_sell_avg"`
	PerItemAdjusters float64 `json:"per_item_adjusters"`
	FlatAdjusters    float64 `json:"flat_adjusters"`
}

// InternalLineTotals aggregates pricing across the size/quantity map of one
// line item. Sizes with quantity <= 0 are skipped; a size without a cost is
// costed at 0. Monetary fields are rounded once at return, not per size.
//
// Profit is derived from the rounded sell and cost totals so that
// profit == sellTotal - costTotal holds exactly.
func InternalLineTotals(li entities.LineItem) LineItemTotals {
	perItemAdj := PerItemAdjusterTotal(li.Adjusters)
	flatAdj := FlatAdjusterTotal(li.Adjusters)

	qtyTotal := 0
	costTotal := 0.0
	sellTotal := 0.0

	for size, qty := range li.SizeQty {
		if qty <= 0 {
			continue
		}

		unitCost := li.CostBySize[size]
		unitSell := UnitSellPrice(unitCost, li.MarkupType, li.MarkupPerItem, perItemAdj)

		qtyTotal += qty
		costTotal += unitCost * float64(qty)
		sellTotal += unitSell * float64(qty)
	}

	// Flat adjusters are added after the per-unit math and carry no cost.
	sellTotal += flatAdj

	unitSellAvg := 0.0
	if qtyTotal > 0 {
		unitSellAvg = sellTotal / float64(qtyTotal)
	}

	roundedSell := Round2(sellTotal)
	roundedCost := Round2(costTotal)

	return LineItemTotals{
		QtyTotal:         qtyTotal,
		CostTotal:        roundedCost,
		SellTotal:        roundedSell,
		Profit:           Round2(roundedSell - roundedCost),
		UnitSellAvg:      Round2(unitSellAvg),
		PerItemAdjusters: Round2(perItemAdj),
		FlatAdjusters:    Round2(flatAdj),
	}
}

// CustomerRow is one size row of the customer-facing pricing table.
type CustomerRow struct {
	Size     string  `json:"size"`
	Qty      int     `json:"qty"`
	UnitSell float64 `json:"unit_sell"`
	Total    float64 `json:"total"`
}

// CustomerLinePricing is the customer-safe projection of one line item. It
// carries no cost or profit fields by construction.
type CustomerLinePricing struct {
	Rows          []CustomerRow `json:"rows"`
	TotalQty      int           `json:"total_qty"`
	LineTotal     float64       `json:"line_total"`
	FlatAdjusters float64       `json:"flat_adjusters"`
}

// CustomerLineProjection computes the pricing table a customer is allowed to
// see. Unit costs enter only through UnitSellPrice; the sell-by-size map is
// resolved first and rows are built without access to the cost map, so the
// projection cannot leak cost fields. Rows exclude sizes with qty <= 0 and
// are emitted in size-run order for deterministic output.
func CustomerLineProjection(li entities.LineItem) CustomerLinePricing {
	perItemAdj := PerItemAdjusterTotal(li.Adjusters)
	flatAdj := FlatAdjusterTotal(li.Adjusters)

	sellBySize := make(map[string]float64, len(li.SizeQty))
	for size := range li.SizeQty {
		sellBySize[size] = UnitSellPrice(li.CostBySize[size], li.MarkupType, li.MarkupPerItem, perItemAdj)
	}

	rows := make([]CustomerRow, 0, len(li.SizeQty))
	totalQty := 0
	lineTotal := 0.0

	for _, size := range sortedSizes(li.SizeQty) {
		qty := li.SizeQty[size]
		if qty <= 0 {
			continue
		}

		unitSell := sellBySize[size]
		rowTotal := Round2(unitSell * float64(qty))

		rows = append(rows, CustomerRow{
			Size:     size,
			Qty:      qty,
			UnitSell: Round2(unitSell),
			Total:    rowTotal,
		})

		totalQty += qty
		lineTotal += rowTotal
	}

	roundedFlat := Round2(flatAdj)

	return CustomerLinePricing{
		Rows:          rows,
		TotalQty:      totalQty,
		LineTotal:     Round2(lineTotal + roundedFlat),
		FlatAdjusters: roundedFlat,
	}
}

// Standard apparel size-run order; unknown labels sort after known ones,
// alphabetically.
var sizeRank = map[string]int{
	"XXS": 0, "XS": 1, "S": 2, "M": 3, "L": 4, "XL": 5,
	"XXL": 6, "2XL": 6, "3XL": 7, "4XL": 8, "5XL": 9, "6XL": 10,
}

func sortedSizes(sizeQty map[string]int) []string {
	sizes := make([]string, 0, len(sizeQty))
	for size := range sizeQty {
		sizes = append(sizes, size)
	}

	sort.Slice(sizes, func(i, j int) bool {
		ri, iKnown := sizeRank[sizes[i]]
		rj, jKnown := sizeRank[sizes[j]]
		switch {
		case iKnown && jKnown:
			if ri != rj {
				return ri < rj
			}
			return sizes[i] < sizes[j]
		case iKnown:
			return true
		case jKnown:
			return false
		default:
			return sizes[i] < sizes[j]
		}
	})

	return sizes
}
