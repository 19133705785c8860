package response

import (
	"time"

	"threadquote/internal/domain/entities"
	"threadquote/internal/domain/pricing"
)

// QuoteResponse is the operator-facing view: full line items including
// costs, plus internal totals. Never serve this to a share-token caller.
type QuoteResponse struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	Customer   entities.Customer   `json:"customer"`
	Notes      string              `json:"notes"`
	Status     string              `json:"status"`
	LineItems  []entities.LineItem `json:"line_items"`
	Responses  []ResponseView      `json:"responses"`
	ShareToken string              `json:"share_token,omitempty"`
	Totals     pricing.QuoteTotals `json:"totals"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// ResponseView is one entry of a quote's response history.
type ResponseView struct {
	Status string    `json:"status"`
	Notes  string    `json:"notes"`
	Date   time.Time `json:"date"`
}

func FromResponse(r entities.Response) ResponseView {
	return ResponseView{Status: string(r.Status), Notes: r.Notes, Date: r.Date}
}

func FromQuote(q entities.Quote) QuoteResponse {
	responses := make([]ResponseView, 0, len(q.Responses))
	for _, r := range q.Responses {
		responses = append(responses, FromResponse(r))
	}

	return QuoteResponse{
		ID:         q.ID,
		Name:       q.Name,
		Customer:   q.Customer,
		Notes:      q.Notes,
		Status:     string(q.Status),
		LineItems:  q.LineItems,
		Responses:  responses,
		ShareToken: q.ShareToken,
		Totals:     pricing.InternalQuoteTotals(q.LineItems),
		CreatedAt:  q.CreatedAt,
		UpdatedAt:  q.UpdatedAt,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}
