package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"casamento_pe/internal/adapter/http/handlers/mocks"
	"casamento_pe/internal/domain/entities"
	"casamento_pe/internal/usecase"
	"casamento_pe/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func checkoutRouter(h *CheckoutHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/checkout", h.CreateCheckout)
	r.POST("/v1/payments/pix", h.CreatePixCharge)
	r.POST("/v1/payments/card", h.CreateCardCharge)
	r.POST("/v1/payments/boleto", h.CreateBoletoCharge)
	r.GET("/v1/payments/:id/status", h.GetPaymentStatus)
	return r
}

const checkoutBody = `{"gift_id":"gift-1","amount":150,"guest_name":"Ana Souza","guest_email":"ana@example.com","message":"Felicidades!"}`

func TestCheckoutHandler_CreateCheckout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		checkoutRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("preference created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)

		uc.EXPECT().CreatePreference(gomock.Any(), usecase.CheckoutInput{
			GiftID:     "gift-1",
			Amount:     150,
			GuestName:  "Ana Souza",
			GuestEmail: "ana@example.com",
			Message:    "Felicidades!",
		}).Return(interfaces.PreferenceResult{ID: "pref-1", InitPoint: "https://mp.example/init"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout", bytes.NewBufferString(checkoutBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		checkoutRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["preference_id"] != "pref-1" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("fully funded gift maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)

		uc.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).Return(interfaces.PreferenceResult{}, usecase.ErrGiftUnavailable)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout", bytes.NewBufferString(checkoutBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		checkoutRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("amount below minimum maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)

		uc.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).Return(interfaces.PreferenceResult{}, usecase.ErrAmountBelowMinimum)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout", bytes.NewBufferString(checkoutBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		checkoutRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}

func TestCheckoutHandler_CreatePixCharge(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("pix charge returns qr data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)

		uc.EXPECT().CreatePixCharge(gomock.Any(), gomock.Any(), interfaces.Payer{Email: "ana@example.com"}).Return(
			interfaces.ChargeResult{PaymentID: "123", Status: entities.PaymentStatusPending, QRCode: "qr"}, nil)

		payload := `{"gift_id":"gift-1","amount":150,"guest_name":"Ana Souza","guest_email":"ana@example.com","payer":{"email":"ana@example.com"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/pix", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		checkoutRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["qr_code"] != "qr" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("gateway unavailable maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)

		uc.EXPECT().CreatePixCharge(gomock.Any(), gomock.Any(), gomock.Any()).Return(interfaces.ChargeResult{}, interfaces.ErrGatewayUnavailable)

		payload := `{"gift_id":"gift-1","amount":150,"guest_name":"Ana Souza","guest_email":"ana@example.com"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/pix", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		checkoutRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestCheckoutHandler_CreateCardCharge(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing token fails binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)

		payload := `{"gift_id":"gift-1","amount":150,"guest_name":"Ana Souza","guest_email":"ana@example.com","payment_method_id":"visa"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/card", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		checkoutRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("card charge success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)

		uc.EXPECT().CreateCardCharge(gomock.Any(), gomock.AssignableToTypeOf(usecase.CardInput{})).DoAndReturn(
			func(_ any, in usecase.CardInput) (interfaces.ChargeResult, error) {
				if in.Token != "tok-1" || in.PaymentMethodID != "visa" || in.Installments != 3 {
					t.Fatalf("unexpected input: %+v", in)
				}
				return interfaces.ChargeResult{PaymentID: "123", Status: entities.PaymentStatusApproved}, nil
			},
		)

		payload := `{"gift_id":"gift-1","amount":150,"guest_name":"Ana Souza","guest_email":"ana@example.com","token":"tok-1","payment_method_id":"visa","installments":3}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/card", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		checkoutRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestCheckoutHandler_GetPaymentStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICheckoutUseCase(ctrl)
	h := NewCheckoutHandler(uc)

	uc.EXPECT().GetPaymentStatus(gomock.Any(), "123").Return(interfaces.PaymentDetails{
		ID:     "123",
		Status: entities.PaymentStatusApproved,
		Method: entities.PaymentMethodPix,
		Amount: 150,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/payments/123/status", nil)
	w := httptest.NewRecorder()
	checkoutRouter(h).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body["status"] != "approved" {
		t.Fatalf("unexpected body: %v", body)
	}
}
