package imaging

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"schilderpro/internal/usecase/interfaces"
)

var ErrMissingGeminiAPIKey = errors.New("missing GEMINI_API_KEY")
var ErrPreviewGatewayNotConfigured = errors.New("preview gateway not configured")

const defaultImageModel = "gemini-2.5-flash-image"

// GeminiGenerator edits photos through the Gemini generateContent API.
type GeminiGenerator struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	mockMode   bool
}

var _ interfaces.IImageGenerator = (*GeminiGenerator)(nil)

// NewGeminiGenerator creates a generator using environment variables.
//
// Supported env vars:
//   - GEMINI_API_KEY (required unless mocked)
//   - GEMINI_IMAGE_MODEL (default: gemini-2.5-flash-image)
//   - GEMINI_BASE_URL (optional; for tests and proxies)
//   - PREVIEW_GATEWAY_MOCK (echo the source photo back)
func NewGeminiGenerator() (*GeminiGenerator, error) {
	if isPreviewGatewayMockEnabled() {
		log.Printf("[preview][gateway] mock mode enabled")
		return &GeminiGenerator{mockMode: true}, nil
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Printf("[preview][gateway] missing GEMINI_API_KEY")
		return nil, ErrMissingGeminiAPIKey
	}

	g := &GeminiGenerator{
		apiKey:     apiKey,
		model:      getenvDefault("GEMINI_IMAGE_MODEL", defaultImageModel),
		baseURL:    getenvDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
	log.Printf("[preview][gateway] Gemini client initialized model=%s", g.model)
	return g, nil
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type geminiGenerationConfig struct {
	ResponseModalities []string `json:"responseModalities"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				InlineData *geminiInlineData `json:"inlineData"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (g *GeminiGenerator) GenerateImage(ctx context.Context, instruction string, photo []byte, mimeType string) ([]byte, string, error) {
	if g != nil && g.mockMode {
		// Echo the source photo so the full flow stays exercisable offline.
		log.Printf("[preview][gateway] mock generate photo_len=%d", len(photo))
		return photo, mimeType, nil
	}

	if g == nil || g.httpClient == nil {
		log.Printf("[preview][gateway] gateway not configured")
		return nil, "", ErrPreviewGatewayNotConfigured
	}
	log.Printf("[preview][gateway] generate start model=%s photo_len=%d", g.model, len(photo))

	reqBody := geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{
				{Text: instruction},
				{InlineData: &geminiInlineData{
					MimeType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(photo),
				}},
			},
		}},
		GenerationConfig: geminiGenerationConfig{ResponseModalities: []string{"IMAGE"}},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, "", fmt.Errorf("gemini: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.baseURL, g.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, "", fmt.Errorf("gemini: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Printf("[preview][gateway] request failed err=%v", err)
		return nil, "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		log.Printf("[preview][gateway] non-200 status=%d body=%s", resp.StatusCode, body)
		return nil, "", fmt.Errorf("gemini error: %d", resp.StatusCode)
	}

	var decoded geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, "", fmt.Errorf("gemini: decode response: %w", err)
	}

	for _, cand := range decoded.Candidates {
		for _, part := range cand.Content.Parts {
			if part.InlineData == nil || part.InlineData.Data == "" {
				continue
			}
			image, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
			if err != nil {
				return nil, "", fmt.Errorf("gemini: decode image data: %w", err)
			}
			log.Printf("[preview][gateway] generate success image_len=%d mime=%s", len(image), part.InlineData.MimeType)
			return image, part.InlineData.MimeType, nil
		}
	}

	log.Printf("[preview][gateway] response carried no image part")
	return nil, "", nil
}

func isPreviewGatewayMockEnabled() bool {
	for _, key := range []string{"PREVIEW_GATEWAY_MOCK", "GEMINI_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
