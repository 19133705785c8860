package usecase

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log"
	"strings"
	"time"

	"threadquote/internal/domain/entities"
	"threadquote/internal/usecase/interfaces"
)

var (
	ErrShareTokenNotFound     = errors.New("share token not found")
	ErrMissingRecipientEmail  = errors.New("missing recipient email")
	ErrInvalidResponseStatus  = errors.New("invalid response status")
	ErrEmailDeliveryFailed    = errors.New("email delivery failed")
	ErrShareTokenStoreMissing = errors.New("share token store not configured")
)

// IApprovalUseCase orchestrates the customer approval workflow:
//
//	Draft -> Pending -> {Approved, Rejected}
//
// Send mints an unguessable token bound to a frozen snapshot of the quote
// and emails the link. View serves the snapshot. Respond records the
// customer decision on the token entry and mirrors it into the live quote's
// append-only response history.

type IApprovalUseCase interface {
	Send(ctx context.Context, quoteID string, toEmail string, subject string, message string) (SendResult, error)
	View(ctx context.Context, token string) (entities.ShareTokenEntry, error)
	Respond(ctx context.Context, token string, status string, notes string) (entities.Response, error)
}

// SendResult reports the outcome of Send. EmailSent is false when the
// notification failed; the token is valid regardless and the operator can
// resend the link.
type SendResult struct {
	Token     string
	EmailSent bool
}

type ApprovalUseCase struct {
	repo         interfaces.IQuoteRepository
	store        interfaces.IShareTokenStore
	sender       interfaces.IEmailSender
	clientOrigin string
}

var _ IApprovalUseCase = (*ApprovalUseCase)(nil)

func NewApprovalUseCase(repo interfaces.IQuoteRepository, store interfaces.IShareTokenStore, sender interfaces.IEmailSender, clientOrigin string) *ApprovalUseCase {
	return &ApprovalUseCase{repo: repo, store: store, sender: sender, clientOrigin: strings.TrimRight(clientOrigin, "/")}
}

func (u *ApprovalUseCase) Send(ctx context.Context, quoteID string, toEmail string, subject string, message string) (SendResult, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return SendResult{}, ErrInvalidQuoteID
	}
	toEmail = strings.TrimSpace(toEmail)
	if toEmail == "" {
		return SendResult{}, ErrMissingRecipientEmail
	}
	if u.store == nil {
		return SendResult{}, ErrShareTokenStoreMissing
	}

	q, err := u.repo.GetByID(ctx, quoteID)
	if err != nil {
		return SendResult{}, err
	}
	if q.ID == "" {
		return SendResult{}, ErrQuoteNotFound
	}

	entry, err := u.store.Mint(ctx, q)
	if err != nil {
		return SendResult{}, err
	}
	log.Printf("[share][usecase] token minted quote_id=%s", q.ID)

	if _, err := u.repo.SetShareToken(ctx, q.ID, entry.Token); err != nil {
		return SendResult{}, err
	}
	pendingResp := entities.Response{Status: entities.ResponseStatusPending, Notes: "", Date: time.Now().UTC()}
	if _, err := u.repo.AppendResponse(ctx, q.ID, pendingResp); err != nil {
		return SendResult{}, err
	}

	if subject == "" {
		subject = fmt.Sprintf("Quote: %s", q.Name)
	}

	msg := interfaces.EmailMessage{
		To:      toEmail,
		Subject: subject,
		HTML:    quoteEmailHTML(q, u.shareLink(entry.Token), message),
	}
	if u.sender == nil {
		log.Printf("[share][usecase] email sender not configured quote_id=%s", q.ID)
		return SendResult{Token: entry.Token, EmailSent: false}, ErrEmailDeliveryFailed
	}
	if err := u.sender.Send(ctx, msg); err != nil {
		// The token stays valid: the operator can copy or resend the link.
		log.Printf("[share][usecase] email delivery failed quote_id=%s err=%v", q.ID, err)
		return SendResult{Token: entry.Token, EmailSent: false}, fmt.Errorf("%w: %v", ErrEmailDeliveryFailed, err)
	}

	log.Printf("[share][usecase] quote sent quote_id=%s to=%s", q.ID, toEmail)
	return SendResult{Token: entry.Token, EmailSent: true}, nil
}

func (u *ApprovalUseCase) View(ctx context.Context, token string) (entities.ShareTokenEntry, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.ShareTokenEntry{}, ErrShareTokenNotFound
	}

	entry, err := u.store.Get(ctx, token)
	if err != nil {
		return entities.ShareTokenEntry{}, err
	}
	if entry.Token == "" {
		return entities.ShareTokenEntry{}, ErrShareTokenNotFound
	}
	return entry, nil
}

func (u *ApprovalUseCase) Respond(ctx context.Context, token string, status string, notes string) (entities.Response, error) {
	respStatus := entities.ResponseStatus(strings.TrimSpace(status))
	if respStatus != entities.ResponseStatusApproved && respStatus != entities.ResponseStatusRejected {
		return entities.Response{}, ErrInvalidResponseStatus
	}

	entry, err := u.View(ctx, token)
	if err != nil {
		return entities.Response{}, err
	}

	resp, err := u.store.SetResponse(ctx, token, respStatus, notes)
	if err != nil {
		return entities.Response{}, err
	}
	if resp.Status == "" {
		return entities.Response{}, ErrShareTokenNotFound
	}

	// Mirror into the live quote. The snapshot stays frozen; only the live
	// aggregate takes the new status and history entry. A deleted quote is
	// not an error here: the orphaned token keeps working.
	mirrored, err := u.repo.AppendResponse(ctx, entry.QuoteSnapshot.ID, resp)
	if err != nil {
		return entities.Response{}, err
	}
	if mirrored.ID == "" {
		log.Printf("[share][usecase] live quote gone, response kept on token quote_id=%s", entry.QuoteSnapshot.ID)
	} else {
		log.Printf("[share][usecase] response recorded quote_id=%s status=%s", mirrored.ID, resp.Status)
	}

	return resp, nil
}

func (u *ApprovalUseCase) shareLink(token string) string {
	origin := u.clientOrigin
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return fmt.Sprintf("%s/q/view/%s", origin, token)
}

// quoteEmailHTML renders the notification body. All interpolated values are
// escaped; the share link is the only call to action.
func quoteEmailHTML(q entities.Quote, link string, message string) string {
	greeting := "Hello,"
	if q.Customer.Name != "" {
		greeting = fmt.Sprintf("Hello %s,", html.EscapeString(q.Customer.Name))
	}

	title := q.Name
	if title == "" {
		title = "Your Quote"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<div style="font-family: 'Segoe UI', Arial, sans-serif; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">`)
	fmt.Fprintf(&b, `<h2 style="color: #0d6efd;">%s</h2>`, html.EscapeString(title))
	fmt.Fprintf(&b, `<p>%s</p>`, greeting)
	if message != "" {
		fmt.Fprintf(&b, `<p>%s</p>`, html.EscapeString(message))
	}
	b.WriteString(`<p>You can review your quote by clicking the button below:</p>`)
	fmt.Fprintf(&b, `<p style="text-align: center; margin: 30px 0;"><a href="%s" style="display: inline-block; background-color: #0d6efd; color: white; padding: 12px 24px; border-radius: 6px; text-decoration: none; font-weight: bold;">View Quote</a></p>`, link)
	fmt.Fprintf(&b, `<p style="font-size: 12px; color: #888;">If the button doesn&#39;t work, copy and paste this link into your browser:<br/><a href="%s">%s</a></p>`, link, link)
	b.WriteString(`</div>`)
	return b.String()
}
