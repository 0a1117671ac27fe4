package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"schilderpro/internal/adapter/http/handlers/mocks"
	"schilderpro/internal/domain/entities"
)

func TestContactHandler_SubmitContact(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContactUseCase(ctrl)
		h := NewContactHandler(uc)

		r := gin.New()
		r.POST("/v1/contact", h.SubmitContact)

		w := postJSON(t, r, "/v1/contact", `{"name":"Jan"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("forward failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContactUseCase(ctrl)
		h := NewContactHandler(uc)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(errors.New("upstream 500"))

		r := gin.New()
		r.POST("/v1/contact", h.SubmitContact)

		w := postJSON(t, r, "/v1/contact", `{"name":"Jan","email":"jan@example.com","message":"hoi"}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success passes honeypot through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContactUseCase(ctrl)
		h := NewContactHandler(uc)

		uc.EXPECT().Submit(gomock.Any(), gomock.AssignableToTypeOf(entities.ContactMessage{})).DoAndReturn(
			func(_ context.Context, msg entities.ContactMessage) error {
				if msg.Honeypot != "bot-value" {
					t.Fatalf("expected honeypot carried through, got %q", msg.Honeypot)
				}
				return nil
			},
		)

		r := gin.New()
		r.POST("/v1/contact", h.SubmitContact)

		w := postJSON(t, r, "/v1/contact", `{"name":"Jan","email":"jan@example.com","message":"hoi","botcheck":"bot-value"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}
