package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"schilderpro/internal/domain/entities"
	"schilderpro/internal/usecase/interfaces"
)

var (
	ErrMissingPhoto        = errors.New("missing photo")
	ErrInvalidPreviewInput = errors.New("invalid preview input")
	ErrNoImageGenerated    = errors.New("no image generated")
)

const maxPhotoBytes = 20 << 20

// IPreviewUseCase generates the "preview my painted house" image.

type IPreviewUseCase interface {
	GeneratePreview(ctx context.Context, req entities.PreviewRequest) (entities.PreviewResult, error)
}

type PreviewUseCase struct {
	generator  interfaces.IImageGenerator
	httpClient *http.Client
}

var _ IPreviewUseCase = (*PreviewUseCase)(nil)

func NewPreviewUseCase(generator interfaces.IImageGenerator) *PreviewUseCase {
	return &PreviewUseCase{
		generator:  generator,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

var surfacePhrases = map[entities.PaintSurface]string{
	entities.SurfaceWalls:      "the interior walls",
	entities.SurfaceCeiling:    "the ceiling",
	entities.SurfaceFrames:     "the window frames",
	entities.SurfaceDoors:      "the doors",
	entities.SurfaceBaseboards: "the baseboards",
	entities.SurfaceMolding:    "the decorative molding",
	entities.SurfaceFacade:     "the exterior facade",
}

// Fixed color-name -> display-description table; the instruction needs a
// description the image model understands, not a paint code.
var colorDescriptions = map[string]string{
	"ral9001":         "cream white (RAL 9001)",
	"ral9010":         "pure white (RAL 9010)",
	"ral9016":         "bright traffic white (RAL 9016)",
	"ral7016":         "anthracite grey (RAL 7016)",
	"ral7021":         "deep black-grey (RAL 7021)",
	"ral6009":         "dark fir green (RAL 6009)",
	"ral5011":         "dark steel blue (RAL 5011)",
	"ral3004":         "deep purple-red (RAL 3004)",
	"monumentengroen": "traditional deep Dutch monument green",
	"monumentenblauw": "traditional deep Dutch monument blue",
}

func describeColor(color string) string {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(color), " ", ""))
	if d, ok := colorDescriptions[key]; ok {
		return d
	}
	return strings.TrimSpace(color)
}

func buildInstruction(surface entities.PaintSurface, color string) string {
	return fmt.Sprintf(
		"Repaint %s in this photo in %s. Apply realistic paint coverage with the existing texture preserved. "+
			"Leave every other surface, all objects, people, furniture and the lighting completely unchanged.",
		surfacePhrases[surface], describeColor(color))
}

// GeneratePreview validates input, resolves the photo bytes and asks the
// image collaborator for the repainted result.
//
// Preview failures are isolated to this feature: nothing here touches quote
// computation or delivery.
func (u *PreviewUseCase) GeneratePreview(ctx context.Context, req entities.PreviewRequest) (entities.PreviewResult, error) {
	if !req.Surface.IsValid() || strings.TrimSpace(req.Color) == "" {
		return entities.PreviewResult{}, ErrInvalidPreviewInput
	}
	if len(req.PhotoData) == 0 && strings.TrimSpace(req.PhotoURL) == "" {
		return entities.PreviewResult{}, ErrMissingPhoto
	}
	if u.generator == nil {
		return entities.PreviewResult{}, errors.New("image generator not configured")
	}

	photo := req.PhotoData
	mimeType := req.MimeType
	if len(photo) == 0 {
		var err error
		photo, mimeType, err = u.fetchPhoto(ctx, req.PhotoURL)
		if err != nil {
			log.Printf("[preview][usecase] photo fetch failed url=%s err=%v", req.PhotoURL, err)
			return entities.PreviewResult{}, fmt.Errorf("fetching photo: %w", err)
		}
	}
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	instruction := buildInstruction(req.Surface, req.Color)
	log.Printf("[preview][usecase] generate start surface=%s photo_len=%d", req.Surface, len(photo))

	image, outMime, err := u.generator.GenerateImage(ctx, instruction, photo, mimeType)
	if err != nil {
		log.Printf("[preview][usecase] generate failed surface=%s err=%v", req.Surface, err)
		return entities.PreviewResult{}, fmt.Errorf("image generation: %w", err)
	}
	if len(image) == 0 {
		return entities.PreviewResult{}, ErrNoImageGenerated
	}

	log.Printf("[preview][usecase] generate success surface=%s image_len=%d", req.Surface, len(image))
	return entities.PreviewResult{ImageData: image, MimeType: outMime}, nil
}

func (u *PreviewUseCase) fetchPhoto(ctx context.Context, url string) ([]byte, string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := u.httpClient.Do(httpReq)
	if err != nil {
		return nil, "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("photo fetch status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPhotoBytes))
	if err != nil {
		return nil, "", err
	}
	return data, resp.Header.Get("Content-Type"), nil
}
