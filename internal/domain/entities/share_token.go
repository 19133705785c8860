package entities

import "time"

// ShareTokenEntry binds an unguessable token to a frozen quote snapshot.
// The token is the only access control on the customer-facing view, so it
// must come from a cryptographically secure random source.
//
// QuoteSnapshot is a deep copy taken at mint time: the customer reviews
// exactly what they were sent, not the live, possibly-since-edited quote.
// Response holds the latest customer decision for this link; the full
// decision history lives on the live quote.
type ShareTokenEntry struct {
	Token         string    `json:"token"`
	QuoteSnapshot Quote     `json:"quote_snapshot"`
	Response      *Response `json:"response,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
