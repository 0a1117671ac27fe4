package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "schilderpro/internal/adapter/http/dto/request"
	response "schilderpro/internal/adapter/http/dto/response"
	"schilderpro/internal/domain/entities"
	"schilderpro/internal/domain/pricing"
	"schilderpro/internal/usecase"
	"schilderpro/pkg"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler handles both quote surfaces: the internal calculate endpoint
// and the production compute-and-email endpoint. Both go through the same
// pricing engine via the usecase.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CalculateQuote prices a job spec without sending anything. Used by the
// internal rate-testing tool.
func (h *QuoteHandler) CalculateQuote(c *gin.Context) {
	spec, ok := h.bindJobSpec(c)
	if !ok {
		return
	}

	breakdown, err := h.usecase.Calculate(c.Request.Context(), spec)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBreakdown(breakdown))
}

// CreateQuote prices a job spec and emails the result to the customer and
// the business inbox.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	spec, ok := h.bindJobSpec(c)
	if !ok {
		return
	}

	breakdown, delivery, err := h.usecase.RequestQuote(c.Request.Context(), spec)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(breakdown, delivery))
}

func (h *QuoteHandler) bindJobSpec(c *gin.Context) (entities.JobSpec, bool) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return entities.JobSpec{}, false
	}

	spec, err := payload.ResolveJobSpec()
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return entities.JobSpec{}, false
	}
	return spec, true
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, request.ErrUnknownLineItemKind), errors.Is(err, request.ErrInvalidProjectType):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidContactInfo):
		return pkg.NewDomainErrorSimple("INVALID_CONTACT_INFO", "Name and a valid email address are required", http.StatusBadRequest)
	case errors.Is(err, pricing.ErrUnknownLineItemKind), errors.Is(err, pricing.ErrUnknownRegion):
		return pkg.NewDomainError("PRICING_CONFIG_ERROR", "Quote could not be priced", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrQuoteDeliveryFailed):
		return pkg.NewDomainError("QUOTE_DELIVERY_FAILED", "Quote email could not be delivered", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
