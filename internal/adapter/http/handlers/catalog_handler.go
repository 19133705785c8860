package handlers

import (
	"net/http"

	"threadquote/internal/usecase/interfaces"
	"threadquote/pkg"

	"github.com/gin-gonic/gin"
)

var errCatalogUnavailable = pkg.NewDomainErrorSimple("CATALOG_UNAVAILABLE", "Supplier catalog unavailable", http.StatusServiceUnavailable)

// CatalogHandler serves supplier catalog lookups used by the quote editor.

type CatalogHandler struct {
	catalog interfaces.ICatalogProvider
}

func NewCatalogHandler(catalog interfaces.ICatalogProvider) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListBrands godoc
// @Summary  List supplier brands
// @Tags     catalog
// @Produce  json
// @Success  200 {array} entities.Brand
// @Failure  503 {object} pkg.HTTPError
// @Router   /brands [get]
func (h *CatalogHandler) ListBrands(c *gin.Context) {
	if h.catalog == nil {
		c.JSON(errCatalogUnavailable.HTTPStatus, errCatalogUnavailable.ToHTTPError())
		return
	}

	brands, err := h.catalog.ListBrands(c.Request.Context())
	if err != nil {
		c.JSON(errCatalogUnavailable.HTTPStatus, errCatalogUnavailable.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, brands)
}
