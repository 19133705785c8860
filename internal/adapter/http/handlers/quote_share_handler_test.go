package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"threadquote/internal/adapter/http/handlers/mocks"
	"threadquote/internal/domain/entities"
	"threadquote/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuoteShareHandler_SendQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApprovalUseCase(ctrl)
		h := NewQuoteShareHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:quote_id/send", h.SendQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/quote-1/send", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("body quote id mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApprovalUseCase(ctrl)
		h := NewQuoteShareHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:quote_id/send", h.SendQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/quote-1/send", bytes.NewBufferString(`{"quote_id":"quote-2","to_email":"buyer@acme.test"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing recipient", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApprovalUseCase(ctrl)
		h := NewQuoteShareHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:quote_id/send", h.SendQuote)

		uc.EXPECT().Send(gomock.Any(), "quote-1", "", "", "").Return(usecase.SendResult{}, usecase.ErrMissingRecipientEmail)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/quote-1/send", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("quote not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApprovalUseCase(ctrl)
		h := NewQuoteShareHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:quote_id/send", h.SendQuote)

		uc.EXPECT().Send(gomock.Any(), "missing", "buyer@acme.test", "", "").Return(usecase.SendResult{}, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/missing/send", bytes.NewBufferString(`{"to_email":"buyer@acme.test"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("email failure still returns token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApprovalUseCase(ctrl)
		h := NewQuoteShareHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:quote_id/send", h.SendQuote)

		uc.EXPECT().Send(gomock.Any(), "quote-1", "buyer@acme.test", "", "").
			Return(usecase.SendResult{Token: "tok-abc", EmailSent: false}, usecase.ErrEmailDeliveryFailed)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/quote-1/send", bytes.NewBufferString(`{"to_email":"buyer@acme.test"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["token"] != "tok-abc" || body["email_sent"] != false {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApprovalUseCase(ctrl)
		h := NewQuoteShareHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:quote_id/send", h.SendQuote)

		uc.EXPECT().Send(gomock.Any(), "quote-1", "buyer@acme.test", "Your quote", "Hi there").
			Return(usecase.SendResult{Token: "tok-abc", EmailSent: true}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/quote-1/send", bytes.NewBufferString(`{"quote_id":"quote-1","to_email":"buyer@acme.test","subject":"Your quote","message":"Hi there"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["token"] != "tok-abc" || body["email_sent"] != true || body["status"] != "pending" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestQuoteShareHandler_ViewSharedQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApprovalUseCase(ctrl)
		h := NewQuoteShareHandler(uc)

		r := gin.New()
		r.GET("/v1/quote-share/:token", h.ViewSharedQuote)

		uc.EXPECT().View(gomock.Any(), "nope").Return(entities.ShareTokenEntry{}, usecase.ErrShareTokenNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/quote-share/nope", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success hides cost fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApprovalUseCase(ctrl)
		h := NewQuoteShareHandler(uc)

		r := gin.New()
		r.GET("/v1/quote-share/:token", h.ViewSharedQuote)

		entry := entities.ShareTokenEntry{
			Token:         "tok-abc",
			QuoteSnapshot: sampleQuote(),
			CreatedAt:     time.Now().UTC(),
		}
		uc.EXPECT().View(gomock.Any(), "tok-abc").Return(entry, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quote-share/tok-abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		raw := w.Body.String()
		for _, leak := range []string{"cost", "profit", "markup"} {
			if strings.Contains(raw, leak) {
				t.Fatalf("customer payload leaks %q: %s", leak, raw)
			}
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["response"] != nil {
			t.Fatalf("expected null response before any decision: %s", raw)
		}
		quote, ok := body["quote"].(map[string]any)
		if !ok || quote["id"] != "quote-1" {
			t.Fatalf("unexpected quote view: %s", raw)
		}
	})
}

func TestQuoteShareHandler_RespondToQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApprovalUseCase(ctrl)
		h := NewQuoteShareHandler(uc)

		r := gin.New()
		r.POST("/v1/quote-share/:token/respond", h.RespondToQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quote-share/tok-abc/respond", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApprovalUseCase(ctrl)
		h := NewQuoteShareHandler(uc)

		r := gin.New()
		r.POST("/v1/quote-share/:token/respond", h.RespondToQuote)

		uc.EXPECT().Respond(gomock.Any(), "tok-abc", "maybe", "").Return(entities.Response{}, usecase.ErrInvalidResponseStatus)

		req := httptest.NewRequest(http.MethodPost, "/v1/quote-share/tok-abc/respond", bytes.NewBufferString(`{"status":"maybe"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApprovalUseCase(ctrl)
		h := NewQuoteShareHandler(uc)

		r := gin.New()
		r.POST("/v1/quote-share/:token/respond", h.RespondToQuote)

		uc.EXPECT().Respond(gomock.Any(), "nope", "approved", "").Return(entities.Response{}, usecase.ErrShareTokenNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/quote-share/nope/respond", bytes.NewBufferString(`{"status":"approved"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApprovalUseCase(ctrl)
		h := NewQuoteShareHandler(uc)

		r := gin.New()
		r.POST("/v1/quote-share/:token/respond", h.RespondToQuote)

		now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
		uc.EXPECT().Respond(gomock.Any(), "tok-abc", "approved", "Looks great").
			Return(entities.Response{Status: entities.ResponseStatusApproved, Notes: "Looks great", Date: now}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quote-share/tok-abc/respond", bytes.NewBufferString(`{"status":"approved","notes":"Looks great"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		resp, ok := body["response"].(map[string]any)
		if !ok || resp["status"] != "approved" || resp["notes"] != "Looks great" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapShareError(t *testing.T) {
	if got := mapShareError(usecase.ErrInvalidQuoteID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapShareError(usecase.ErrMissingRecipientEmail); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapShareError(usecase.ErrInvalidResponseStatus); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapShareError(usecase.ErrQuoteNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapShareError(usecase.ErrShareTokenNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapShareError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
