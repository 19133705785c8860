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
	errInvalidQuotePayload    = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
	errInvalidLineItemPayload = pkg.NewDomainErrorSimple("INVALID_LINE_ITEM_INPUT", "Invalid line item payload", http.StatusBadRequest)
)

// QuoteHandler handles operator-side quote assembly requests.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote godoc
// @Summary  Create a quote
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    quote body request.QuoteRequest true "Quote header fields"
// @Success  201 {object} response.QuoteResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.usecase.CreateQuote(c.Request.Context(), payload.Name, payload.Customer.ToEntity(), payload.Notes)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(q))
}

// ListQuotes godoc
// @Summary  List quotes
// @Tags     quotes
// @Produce  json
// @Success  200 {array} response.QuoteResponse
// @Router   /quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.ListQuotes(c.Request.Context())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

// GetQuote godoc
// @Summary  Get a quote with internal totals
// @Tags     quotes
// @Produce  json
// @Param    quote_id path string true "Quote ID"
// @Success  200 {object} response.QuoteResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /quotes/{quote_id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.usecase.GetQuote(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q))
}

// UpdateQuote godoc
// @Summary  Update quote header fields
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    quote_id path string true "Quote ID"
// @Param    quote body request.QuoteRequest true "Quote header fields"
// @Success  200 {object} response.QuoteResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /quotes/{quote_id} [patch]
func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.usecase.UpdateQuote(c.Request.Context(), c.Param("quote_id"), payload.Name, payload.Customer.ToEntity(), payload.Notes)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q))
}

// DeleteQuote godoc
// @Summary  Delete a quote
// @Tags     quotes
// @Param    quote_id path string true "Quote ID"
// @Success  204
// @Failure  404 {object} pkg.HTTPError
// @Router   /quotes/{quote_id} [delete]
func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	if err := h.usecase.DeleteQuote(c.Request.Context(), c.Param("quote_id")); err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// AddLineItem godoc
// @Summary  Add a line item to a quote
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    quote_id path string true "Quote ID"
// @Param    line_item body request.LineItemRequest true "Line item"
// @Success  201 {object} response.QuoteResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /quotes/{quote_id}/line-items [post]
func (h *QuoteHandler) AddLineItem(c *gin.Context) {
	var payload request.LineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLineItemPayload.HTTPStatus, errInvalidLineItemPayload.ToHTTPError())
		return
	}

	q, err := h.usecase.AddLineItem(c.Request.Context(), c.Param("quote_id"), payload.ToEntity())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(q))
}

// UpdateLineItem godoc
// @Summary  Replace a line item
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    quote_id path string true "Quote ID"
// @Param    line_item_id path string true "Line item ID"
// @Param    line_item body request.LineItemRequest true "Line item"
// @Success  200 {object} response.QuoteResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /quotes/{quote_id}/line-items/{line_item_id} [patch]
func (h *QuoteHandler) UpdateLineItem(c *gin.Context) {
	var payload request.LineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLineItemPayload.HTTPStatus, errInvalidLineItemPayload.ToHTTPError())
		return
	}

	q, err := h.usecase.UpdateLineItem(c.Request.Context(), c.Param("quote_id"), c.Param("line_item_id"), payload.ToEntity())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q))
}

// RemoveLineItem godoc
// @Summary  Remove a line item
// @Tags     quotes
// @Param    quote_id path string true "Quote ID"
// @Param    line_item_id path string true "Line item ID"
// @Success  200 {object} response.QuoteResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /quotes/{quote_id}/line-items/{line_item_id} [delete]
func (h *QuoteHandler) RemoveLineItem(c *gin.Context) {
	q, err := h.usecase.RemoveLineItem(c.Request.Context(), c.Param("quote_id"), c.Param("line_item_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q))
}

// QuoteTotals godoc
// @Summary  Internal quote totals (cost, sell, profit)
// @Tags     quotes
// @Produce  json
// @Param    quote_id path string true "Quote ID"
// @Success  200 {object} pricing.QuoteTotals
// @Failure  404 {object} pkg.HTTPError
// @Router   /quotes/{quote_id}/totals [get]
func (h *QuoteHandler) QuoteTotals(c *gin.Context) {
	totals, err := h.usecase.QuoteTotals(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, totals)
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidLineItem):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLineItemNotFound):
		return pkg.NewDomainErrorSimple("LINE_ITEM_NOT_FOUND", "Line item not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
