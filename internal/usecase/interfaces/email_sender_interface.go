package interfaces

import "context"

// EmailMessage is a rendered outbound email.
type EmailMessage struct {
	To      string
	Subject string
	HTML    string
}

// IEmailSender abstracts the outbound email transport (e.g. SMTP). A send
// failure must not roll back share token minting; the operator can resend
// the link.
type IEmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}
