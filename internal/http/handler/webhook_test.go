package handler_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"chatdeck.app/backend/internal/http/handler"
	"chatdeck.app/backend/internal/payment"
)

var _ = Describe("WebhookHandler", func() {
	var (
		router   *gin.Engine
		provider *mockProvider
		subSvc   *mockSubscriptionService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		provider = &mockProvider{}
		subSvc = &mockSubscriptionService{}
		h := handler.NewWebhookHandler(provider, subSvc)
		router.POST("/webhook/stripe", h.Stripe)
	})

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/webhook/stripe", bytes.NewBufferString(body))
		req.Header.Set("Stripe-Signature", "t=1,v1=abc")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("returns 400 when the signature cannot be verified", func() {
		provider.verifyWebhookFn = func(_ []byte, _ http.Header) (*payment.WebhookEvent, error) {
			return nil, errors.New("signature mismatch")
		}

		w := post(`{}`)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("acknowledges and ignores other event types", func() {
		provider.verifyWebhookFn = func(_ []byte, _ http.Header) (*payment.WebhookEvent, error) {
			return &payment.WebhookEvent{Type: "invoice.paid"}, nil
		}
		called := false
		subSvc.handleCheckoutCompletedFn = func(_ context.Context, _ string) error {
			called = true
			return nil
		}

		w := post(`{}`)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring("ignored"))
		Expect(called).To(BeFalse())
	})

	It("completes the checkout for checkout.session.completed", func() {
		provider.verifyWebhookFn = func(_ []byte, _ http.Header) (*payment.WebhookEvent, error) {
			return &payment.WebhookEvent{Type: "checkout.session.completed", SessionID: "cs_test"}, nil
		}
		var sessionID string
		subSvc.handleCheckoutCompletedFn = func(_ context.Context, id string) error {
			sessionID = id
			return nil
		}

		w := post(`{}`)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(sessionID).To(Equal("cs_test"))
	})

	It("returns 500 when completion fails so the delivery is retried", func() {
		provider.verifyWebhookFn = func(_ []byte, _ http.Header) (*payment.WebhookEvent, error) {
			return &payment.WebhookEvent{Type: "checkout.session.completed", SessionID: "cs_test"}, nil
		}
		subSvc.handleCheckoutCompletedFn = func(_ context.Context, _ string) error {
			return errors.New("tx failed")
		}

		w := post(`{}`)

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
	})
})
