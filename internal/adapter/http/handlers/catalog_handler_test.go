package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"threadquote/internal/domain/entities"
	mock_interfaces "threadquote/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCatalogHandler_ListBrands(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not configured", func(t *testing.T) {
		h := NewCatalogHandler(nil)

		r := gin.New()
		r.GET("/v1/brands", h.ListBrands)

		req := httptest.NewRequest(http.MethodGet, "/v1/brands", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("provider error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogProvider(ctrl)
		h := NewCatalogHandler(catalog)

		r := gin.New()
		r.GET("/v1/brands", h.ListBrands)

		catalog.EXPECT().ListBrands(gomock.Any()).Return(nil, errors.New("supplier down"))

		req := httptest.NewRequest(http.MethodGet, "/v1/brands", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogProvider(ctrl)
		h := NewCatalogHandler(catalog)

		r := gin.New()
		r.GET("/v1/brands", h.ListBrands)

		catalog.EXPECT().ListBrands(gomock.Any()).Return([]entities.Brand{{ID: "b-1", Name: "Bella+Canvas"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/brands", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["name"] != "Bella+Canvas" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
