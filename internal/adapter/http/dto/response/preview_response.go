package response

import (
	"encoding/base64"

	"schilderpro/internal/domain/entities"
)

type PreviewResponse struct {
	ImageData string `json:"image_data"`
	MimeType  string `json:"mime_type"`
}

func FromPreviewResult(r entities.PreviewResult) PreviewResponse {
	return PreviewResponse{
		ImageData: base64.StdEncoding.EncodeToString(r.ImageData),
		MimeType:  r.MimeType,
	}
}
