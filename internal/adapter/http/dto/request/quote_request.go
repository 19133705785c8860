package request

import (
	"strings"

	"threadquote/internal/domain/entities"
)

type CustomerRequest struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

func (r CustomerRequest) ToEntity() entities.Customer {
	return entities.Customer{
		Name:    strings.TrimSpace(r.Name),
		Company: strings.TrimSpace(r.Company),
		Email:   strings.TrimSpace(r.Email),
		Phone:   strings.TrimSpace(r.Phone),
	}
}

// QuoteRequest creates or updates a quote's header fields. Line items have
// their own endpoints.
type QuoteRequest struct {
	Name     string          `json:"name"`
	Customer CustomerRequest `json:"customer"`
	Notes    string          `json:"notes"`
}

type AdjusterRequest struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Type   string  `json:"type" binding:"required,oneof=perItem flat"`
	Amount float64 `json:"amount"`
}

// LineItemRequest carries one product/color with its size run. CostBySize
// may be partial; missing sizes are resolved from the catalog when a
// product id is given.
type LineItemRequest struct {
	Title         string             `json:"title"`
	Brand         string             `json:"brand"`
	StyleNumber   string             `json:"style_number"`
	Color         string             `json:"color"`
	ProductID     string             `json:"product_id"`
	SizeQty       map[string]int     `json:"size_qty" binding:"required"`
	CostBySize    map[string]float64 `json:"cost_by_size"`
	MarkupType    string             `json:"markup_type" binding:"omitempty,oneof=dollar percent"`
	MarkupPerItem float64            `json:"markup_per_item"`
	Adjusters     []AdjusterRequest  `json:"adjusters" binding:"omitempty,dive"`
}

func (r LineItemRequest) ToEntity() entities.LineItem {
	adjusters := make([]entities.Adjuster, 0, len(r.Adjusters))
	for _, a := range r.Adjusters {
		adjusters = append(adjusters, entities.Adjuster{
			ID:     a.ID,
			Name:   a.Name,
			Type:   entities.AdjusterType(a.Type),
			Amount: a.Amount,
		})
	}

	return entities.LineItem{
		Title:         strings.TrimSpace(r.Title),
		Brand:         strings.TrimSpace(r.Brand),
		StyleNumber:   strings.TrimSpace(r.StyleNumber),
		Color:         strings.TrimSpace(r.Color),
		ProductID:     strings.TrimSpace(r.ProductID),
		SizeQty:       r.SizeQty,
		CostBySize:    r.CostBySize,
		MarkupType:    entities.MarkupType(r.MarkupType),
		MarkupPerItem: r.MarkupPerItem,
		Adjusters:     adjusters,
	}
}
