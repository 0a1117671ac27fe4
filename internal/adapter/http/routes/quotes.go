package routes

import (
	"schilderpro/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes   = "/quotes"
	PathPreviews = "/previews"
	PathContact  = "/contact"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("/calculate", quoteHandler.CalculateQuote)
		quotes.POST("", quoteHandler.CreateQuote)
	}
}

func addPreviewRoutes(rg *gin.RouterGroup, previewHandler *handlers.PreviewHandler) {
	previews := rg.Group(PathPreviews)
	{
		previews.POST("", previewHandler.GeneratePreview)
	}
}

func addContactRoutes(rg *gin.RouterGroup, contactHandler *handlers.ContactHandler) {
	contact := rg.Group(PathContact)
	{
		contact.POST("", contactHandler.SubmitContact)
	}
}
