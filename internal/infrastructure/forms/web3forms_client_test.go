package forms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewWeb3FormsClient_MissingKey(t *testing.T) {
	t.Setenv("WEB3FORMS_ACCESS_KEY", "")
	t.Setenv("CONTACT_GATEWAY_MOCK", "")

	if _, err := NewWeb3FormsClient(); err != ErrMissingWeb3FormsAccessKey {
		t.Fatalf("expected ErrMissingWeb3FormsAccessKey, got %v", err)
	}
}

func TestWeb3FormsClient_MockMode(t *testing.T) {
	t.Setenv("CONTACT_GATEWAY_MOCK", "true")

	c, err := NewWeb3FormsClient()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.Forward(context.Background(), map[string]string{"name": "Jan"}); err != nil {
		t.Fatalf("mock forward should succeed, got %v", err)
	}
}

func TestWeb3FormsClient_Forward(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}

		var payload map[string]string
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if payload["access_key"] != "test-key" {
			t.Errorf("expected access_key injected, got %q", payload["access_key"])
		}
		if payload["name"] != "Jan Jansen" || payload["email"] != "jan@example.com" {
			t.Errorf("unexpected fields: %+v", payload)
		}

		_ = json.NewEncoder(w).Encode(web3formsResponse{Success: true, Message: "ok"})
	}))
	defer srv.Close()

	t.Setenv("WEB3FORMS_ACCESS_KEY", "test-key")
	t.Setenv("WEB3FORMS_SUBMIT_URL", srv.URL)
	t.Setenv("CONTACT_GATEWAY_MOCK", "")

	c, err := NewWeb3FormsClient()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = c.Forward(context.Background(), map[string]string{
		"name":    "Jan Jansen",
		"email":   "jan@example.com",
		"message": "Graag een afspraak.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWeb3FormsClient_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(web3formsResponse{Success: false, Message: "invalid access key"})
	}))
	defer srv.Close()

	t.Setenv("WEB3FORMS_ACCESS_KEY", "test-key")
	t.Setenv("WEB3FORMS_SUBMIT_URL", srv.URL)
	t.Setenv("CONTACT_GATEWAY_MOCK", "")

	c, err := NewWeb3FormsClient()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := c.Forward(context.Background(), map[string]string{"name": "Jan"}); err == nil {
		t.Fatal("expected error for rejected submission")
	}
}
