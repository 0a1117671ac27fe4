package forms

import (
	"bytes"
	"context"
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

var ErrMissingWeb3FormsAccessKey = errors.New("missing WEB3FORMS_ACCESS_KEY")
var ErrContactGatewayNotConfigured = errors.New("contact gateway not configured")

const defaultSubmitURL = "https://api.web3forms.com/submit"

// Web3FormsClient forwards contact-form fields to the Web3Forms inbox relay.
type Web3FormsClient struct {
	accessKey  string
	submitURL  string
	httpClient *http.Client
	mockMode   bool
}

var _ interfaces.IFormForwarder = (*Web3FormsClient)(nil)

// NewWeb3FormsClient creates a forwarder using environment variables.
//
// Supported env vars:
//   - WEB3FORMS_ACCESS_KEY (required unless mocked)
//   - WEB3FORMS_SUBMIT_URL (optional; for tests)
//   - CONTACT_GATEWAY_MOCK (log instead of forwarding)
func NewWeb3FormsClient() (*Web3FormsClient, error) {
	if isContactGatewayMockEnabled() {
		log.Printf("[contact][gateway] mock mode enabled")
		return &Web3FormsClient{mockMode: true}, nil
	}

	accessKey := os.Getenv("WEB3FORMS_ACCESS_KEY")
	if accessKey == "" {
		log.Printf("[contact][gateway] missing WEB3FORMS_ACCESS_KEY")
		return nil, ErrMissingWeb3FormsAccessKey
	}

	c := &Web3FormsClient{
		accessKey:  accessKey,
		submitURL:  getenvDefault("WEB3FORMS_SUBMIT_URL", defaultSubmitURL),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	log.Printf("[contact][gateway] Web3Forms client initialized")
	return c, nil
}

type web3formsResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (c *Web3FormsClient) Forward(ctx context.Context, fields map[string]string) error {
	if c != nil && c.mockMode {
		log.Printf("[contact][gateway] mock forward fields=%d", len(fields))
		return nil
	}

	if c == nil || c.httpClient == nil {
		log.Printf("[contact][gateway] gateway not configured")
		return ErrContactGatewayNotConfigured
	}

	payload := make(map[string]string, len(fields)+1)
	for k, v := range fields {
		payload[k] = v
	}
	payload["access_key"] = c.accessKey

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("web3forms: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.submitURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return fmt.Errorf("web3forms: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[contact][gateway] request failed err=%v", err)
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		log.Printf("[contact][gateway] non-200 status=%d body=%s", resp.StatusCode, body)
		return fmt.Errorf("web3forms error: %d", resp.StatusCode)
	}

	var decoded web3formsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return fmt.Errorf("web3forms: decode response: %w", err)
	}
	if !decoded.Success {
		log.Printf("[contact][gateway] rejected message=%q", decoded.Message)
		return fmt.Errorf("web3forms rejected submission: %s", decoded.Message)
	}

	log.Printf("[contact][gateway] forward success")
	return nil
}

func isContactGatewayMockEnabled() bool {
	for _, key := range []string{"CONTACT_GATEWAY_MOCK", "WEB3FORMS_MOCK"} {
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
