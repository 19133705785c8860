package handlers

import (
	"errors"
	"net/http"

	"threadquote/internal/adapter/http/dto/request"
	"threadquote/internal/adapter/http/dto/response"
	"threadquote/internal/usecase"
	"threadquote/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSendPayload    = pkg.NewDomainErrorSimple("INVALID_SEND_INPUT", "Invalid send payload", http.StatusBadRequest)
	errQuoteIDMismatch       = pkg.NewDomainErrorSimple("QUOTE_ID_MISMATCH", "Body quote_id does not match path", http.StatusBadRequest)
	errInvalidRespondPayload = pkg.NewDomainErrorSimple("INVALID_RESPOND_INPUT", "Invalid respond payload", http.StatusBadRequest)
)

// QuoteShareHandler handles the share-token workflow: sending a quote to a
// customer and the customer's token-scoped view/respond calls.

type QuoteShareHandler struct {
	usecase usecase.IApprovalUseCase
}

func NewQuoteShareHandler(uc usecase.IApprovalUseCase) *QuoteShareHandler {
	return &QuoteShareHandler{usecase: uc}
}

// SendQuote godoc
// @Summary  Send a quote to the customer for approval
// @Tags     quote-share
// @Accept   json
// @Produce  json
// @Param    quote_id path string true "Quote ID"
// @Param    send body request.SendQuoteRequest true "Recipient and message"
// @Success  200 {object} response.SendQuoteResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /quotes/{quote_id}/send [post]
func (h *QuoteShareHandler) SendQuote(c *gin.Context) {
	var payload request.SendQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSendPayload.HTTPStatus, errInvalidSendPayload.ToHTTPError())
		return
	}

	quoteID := c.Param("quote_id")
	if !payload.MatchesQuoteID(quoteID) {
		c.JSON(errQuoteIDMismatch.HTTPStatus, errQuoteIDMismatch.ToHTTPError())
		return
	}

	result, err := h.usecase.Send(c.Request.Context(), quoteID, payload.ToEmail, payload.Subject, payload.Message)
	if err != nil && !errors.Is(err, usecase.ErrEmailDeliveryFailed) {
		appErr := mapShareError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	// Delivery failure is not fatal: the token was minted and the quote is
	// pending, so report success with email_sent=false.
	c.JSON(http.StatusOK, response.SendQuoteResponse{
		Token:     result.Token,
		Status:    "pending",
		EmailSent: result.EmailSent,
	})
}

// ViewSharedQuote godoc
// @Summary  Customer view of a shared quote snapshot
// @Tags     quote-share
// @Produce  json
// @Param    token path string true "Share token"
// @Success  200 {object} response.ShareViewResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /quote-share/{token} [get]
func (h *QuoteShareHandler) ViewSharedQuote(c *gin.Context) {
	entry, err := h.usecase.View(c.Request.Context(), c.Param("token"))
	if err != nil {
		appErr := mapShareError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var resp *response.ResponseView
	if entry.Response != nil {
		v := response.FromResponse(*entry.Response)
		resp = &v
	}

	c.JSON(http.StatusOK, response.ShareViewResponse{
		Quote:    response.FromQuoteSnapshot(entry.QuoteSnapshot),
		Response: resp,
	})
}

// RespondToQuote godoc
// @Summary  Record the customer's approve/reject decision
// @Tags     quote-share
// @Accept   json
// @Produce  json
// @Param    token path string true "Share token"
// @Param    respond body request.RespondRequest true "Decision"
// @Success  200 {object} response.RespondResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /quote-share/{token}/respond [post]
func (h *QuoteShareHandler) RespondToQuote(c *gin.Context) {
	var payload request.RespondRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRespondPayload.HTTPStatus, errInvalidRespondPayload.ToHTTPError())
		return
	}

	resp, err := h.usecase.Respond(c.Request.Context(), c.Param("token"), payload.Status, payload.Notes)
	if err != nil {
		appErr := mapShareError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.RespondResponse{Response: response.FromResponse(resp)})
}

func mapShareError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrMissingRecipientEmail),
		errors.Is(err, usecase.ErrInvalidResponseStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrShareTokenNotFound):
		return pkg.NewDomainErrorSimple("SHARE_TOKEN_NOT_FOUND", "Share token not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
