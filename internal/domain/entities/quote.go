package entities

import "time"

// QuoteStatus represents the lifecycle of a quote.
//
// Domain notes:
//   - A quote starts as draft while the operator assembles line items.
//   - Sending the quote to a customer moves it to pending.
//   - Only a recorded customer Response moves it to approved/rejected.

type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusApproved QuoteStatus = "approved"
	QuoteStatusRejected QuoteStatus = "rejected"
)

// Customer is the recipient of a quote.
type Customer struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// Quote is the operator-owned aggregate persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Invariants:
//   - Status always equals the status of the most recently appended
//     Response, or draft while Responses is empty.
//   - Responses is an append-only log; entries are never edited or removed.
//   - ShareToken references the currently active share link, empty if the
//     quote was never sent.
type Quote struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Customer   Customer    `json:"customer"`
	Notes      string      `json:"notes"`
	LineItems  []LineItem  `json:"line_items"`
	Status     QuoteStatus `json:"status"`
	Responses  []Response  `json:"responses"`
	ShareToken string      `json:"share_token,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// Clone returns a deep copy of the quote. Share token snapshots are built
// from clones so that later edits to the live quote never reach a customer
// who is reviewing what was sent.
func (q Quote) Clone() Quote {
	out := q

	if q.LineItems != nil {
		out.LineItems = make([]LineItem, len(q.LineItems))
		for i, li := range q.LineItems {
			out.LineItems[i] = li.Clone()
		}
	}
	if q.Responses != nil {
		out.Responses = make([]Response, len(q.Responses))
		copy(out.Responses, q.Responses)
	}

	return out
}
