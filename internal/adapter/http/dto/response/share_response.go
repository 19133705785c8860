package response

// SendQuoteResponse reports a successful (or partially successful) send.
// EmailSent is false when the notification failed; the token is already
// valid and the operator can resend the link.
type SendQuoteResponse struct {
	Token     string `json:"token"`
	Status    string `json:"status"`
	EmailSent bool   `json:"email_sent"`
}

// ShareViewResponse is the payload of GET /quote-share/{token}.
type ShareViewResponse struct {
	Quote    CustomerQuoteView `json:"quote"`
	Response *ResponseView     `json:"response"`
}

// RespondResponse is the payload of POST /quote-share/{token}/respond.
type RespondResponse struct {
	Response ResponseView `json:"response"`
}
