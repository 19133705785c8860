package entities

// MarkupType selects how the operator margin is applied to unit cost.

type MarkupType string

const (
	MarkupTypeDollar  MarkupType = "dollar"
	MarkupTypePercent MarkupType = "percent"
)

// AdjusterType distinguishes per-unit price shifts from one-time charges.

type AdjusterType string

const (
	AdjusterTypePerItem AdjusterType = "perItem"
	AdjusterTypeFlat    AdjusterType = "flat"
)

// Adjuster is a named price modification on a line item. Amount may be
// negative to represent a discount. Order matters only for display; totals
// are commutative sums.
type Adjuster struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Type   AdjusterType `json:"type"`
	Amount float64      `json:"amount"`
}

// LineItem is one product/color with a quantity-per-size breakdown.
//
// Invariants:
//   - Only SizeQty entries with quantity > 0 contribute to totals; zero or
//     missing quantities never appear as rows in customer-facing output.
//   - A size present in SizeQty but absent from CostBySize is costed at 0.
type LineItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Brand       string `json:"brand"`
	StyleNumber string `json:"style_number"`
	Color       string `json:"color"`
	ProductID   string `json:"product_id"`

	SizeQty    map[string]int     `json:"size_qty"`
	CostBySize map[string]float64 `json:"cost_by_size"`

	MarkupType    MarkupType `json:"markup_type"`
	MarkupPerItem float64    `json:"markup_per_item"`
	Adjusters     []Adjuster `json:"adjusters"`
}

// Clone returns a deep copy of the line item.
func (li LineItem) Clone() LineItem {
	out := li

	if li.SizeQty != nil {
		out.SizeQty = make(map[string]int, len(li.SizeQty))
		for k, v := range li.SizeQty {
			out.SizeQty[k] = v
		}
	}
	if li.CostBySize != nil {
		out.CostBySize = make(map[string]float64, len(li.CostBySize))
		for k, v := range li.CostBySize {
			out.CostBySize[k] = v
		}
	}
	if li.Adjusters != nil {
		out.Adjusters = make([]Adjuster, len(li.Adjusters))
		copy(out.Adjusters, li.Adjusters)
	}

	return out
}
