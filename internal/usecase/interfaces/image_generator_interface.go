package interfaces

import "context"

// IImageGenerator abstracts the image-generation collaborator used by the
// repaint preview (e.g. Gemini image editing).
//
// The instruction is a natural-language transformation; photo carries the
// inline source image bytes with its mime type. Implementations return the
// generated image bytes and their mime type, or an error when the provider
// yields no image payload.
type IImageGenerator interface {
	GenerateImage(ctx context.Context, instruction string, photo []byte, mimeType string) (image []byte, outMimeType string, err error)
}
