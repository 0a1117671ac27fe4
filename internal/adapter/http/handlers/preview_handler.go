package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "schilderpro/internal/adapter/http/dto/request"
	response "schilderpro/internal/adapter/http/dto/response"
	"schilderpro/internal/usecase"
	"schilderpro/pkg"
)

var errInvalidPreviewPayload = pkg.NewDomainErrorSimple("INVALID_PREVIEW_INPUT", "Invalid preview payload", http.StatusBadRequest)

// PreviewHandler handles the "preview my painted house" endpoint.

type PreviewHandler struct {
	usecase usecase.IPreviewUseCase
}

func NewPreviewHandler(uc usecase.IPreviewUseCase) *PreviewHandler {
	return &PreviewHandler{usecase: uc}
}

func (h *PreviewHandler) GeneratePreview(c *gin.Context) {
	var payload request.PreviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPreviewPayload.HTTPStatus, errInvalidPreviewPayload.ToHTTPError())
		return
	}

	req, err := payload.ResolvePreview()
	if err != nil {
		c.JSON(errInvalidPreviewPayload.HTTPStatus, errInvalidPreviewPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.GeneratePreview(c.Request.Context(), req)
	if err != nil {
		appErr := mapPreviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPreviewResult(result))
}

func mapPreviewError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingPhoto):
		return pkg.NewDomainErrorSimple("MISSING_PHOTO", "A photo or photo URL is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPreviewInput):
		return pkg.NewDomainErrorSimple("INVALID_PREVIEW_INPUT", "Invalid preview payload", http.StatusBadRequest)
	default:
		// Photo fetch and generation failures are all upstream; the
		// user-visible message stays generic.
		return pkg.NewDomainError("PREVIEW_GENERATION_FAILED", "Preview could not be generated", err, http.StatusBadGateway)
	}
}
