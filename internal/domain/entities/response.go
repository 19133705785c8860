package entities

import "time"

// ResponseStatus is the customer decision carried by a Response.

type ResponseStatus string

const (
	ResponseStatusPending  ResponseStatus = "pending"
	ResponseStatusApproved ResponseStatus = "approved"
	ResponseStatusRejected ResponseStatus = "rejected"
)

// Response records one customer decision on a quote. Responses are immutable
// once appended; Notes is optional free text from the customer.
type Response struct {
	Status ResponseStatus `json:"status"`
	Notes  string         `json:"notes"`
	Date   time.Time      `json:"date"`
}
