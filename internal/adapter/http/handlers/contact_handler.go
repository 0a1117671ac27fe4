package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "schilderpro/internal/adapter/http/dto/request"
	"schilderpro/internal/usecase"
	"schilderpro/pkg"
)

var errInvalidContactPayload = pkg.NewDomainErrorSimple("INVALID_CONTACT_INPUT", "Invalid contact payload", http.StatusBadRequest)

// ContactHandler forwards the public contact form.

type ContactHandler struct {
	usecase usecase.IContactUseCase
}

func NewContactHandler(uc usecase.IContactUseCase) *ContactHandler {
	return &ContactHandler{usecase: uc}
}

func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var payload request.ContactRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContactPayload.HTTPStatus, errInvalidContactPayload.ToHTTPError())
		return
	}

	if err := h.usecase.Submit(c.Request.Context(), payload.ResolveMessage()); err != nil {
		appErr := mapContactError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func mapContactError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidContactMessage):
		return errInvalidContactPayload
	default:
		return pkg.NewDomainError("CONTACT_FORWARD_FAILED", "Message could not be submitted", err, http.StatusBadGateway)
	}
}
