package routes

import (
	"threadquote/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes     = "/quotes"
	PathQuoteShare = "/quote-share"
	PathBrands     = "/brands"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, shareHandler *handlers.QuoteShareHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.GET("/:quote_id", quoteHandler.GetQuote)
		quotes.PATCH("/:quote_id", quoteHandler.UpdateQuote)
		quotes.DELETE("/:quote_id", quoteHandler.DeleteQuote)
		quotes.GET("/:quote_id/totals", quoteHandler.QuoteTotals)
		quotes.POST("/:quote_id/line-items", quoteHandler.AddLineItem)
		quotes.PATCH("/:quote_id/line-items/:line_item_id", quoteHandler.UpdateLineItem)
		quotes.DELETE("/:quote_id/line-items/:line_item_id", quoteHandler.RemoveLineItem)
		quotes.POST("/:quote_id/send", shareHandler.SendQuote)
	}

	// Token-scoped customer endpoints. No auth beyond the token itself.
	share := rg.Group(PathQuoteShare)
	{
		share.GET("/:token", shareHandler.ViewSharedQuote)
		share.POST("/:token/respond", shareHandler.RespondToQuote)
	}
}

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	rg.GET(PathBrands, catalogHandler.ListBrands)
}
