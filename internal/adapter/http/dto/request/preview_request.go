package request

import (
	"encoding/base64"
	"errors"
	"strings"

	"schilderpro/internal/domain/entities"
)

var (
	ErrInvalidSurface   = errors.New("invalid surface")
	ErrInvalidPhotoData = errors.New("invalid photo data")
)

// PreviewRequest asks for an AI repaint preview of a customer photo.
// PhotoData is base64; PhotoURL is the alternative for already-hosted photos.
type PreviewRequest struct {
	PhotoURL  string `json:"photo_url"`
	PhotoData string `json:"photo_data"`
	MimeType  string `json:"mime_type"`
	Surface   string `json:"surface" binding:"required"`
	Color     string `json:"color" binding:"required"`
}

func (r PreviewRequest) ResolvePreview() (entities.PreviewRequest, error) {
	surface := entities.PaintSurface(strings.TrimSpace(r.Surface))
	if !surface.IsValid() {
		return entities.PreviewRequest{}, ErrInvalidSurface
	}

	var photo []byte
	if r.PhotoData != "" {
		decoded, err := base64.StdEncoding.DecodeString(r.PhotoData)
		if err != nil {
			return entities.PreviewRequest{}, ErrInvalidPhotoData
		}
		photo = decoded
	}

	return entities.PreviewRequest{
		PhotoURL:  strings.TrimSpace(r.PhotoURL),
		PhotoData: photo,
		MimeType:  strings.TrimSpace(r.MimeType),
		Surface:   surface,
		Color:     strings.TrimSpace(r.Color),
	}, nil
}
