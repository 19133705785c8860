package request

import "strings"

// SendQuoteRequest is the body of POST /quotes/{quote_id}/send. QuoteID is
// optional; when present it must match the path parameter.
type SendQuoteRequest struct {
	QuoteID string `json:"quote_id"`
	ToEmail string `json:"to_email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// MatchesQuoteID reports whether the optional body quote id agrees with the
// path parameter.
func (r SendQuoteRequest) MatchesQuoteID(pathID string) bool {
	body := strings.TrimSpace(r.QuoteID)
	return body == "" || body == pathID
}

// RespondRequest is the body of POST /quote-share/{token}/respond.
type RespondRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}
