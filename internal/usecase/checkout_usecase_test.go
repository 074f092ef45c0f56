package usecase

import (
	"context"
	"errors"
	"testing"

	"casamento_pe/internal/domain/entities"
	"casamento_pe/internal/usecase/interfaces"
	mock_interfaces "casamento_pe/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validCheckoutInput() CheckoutInput {
	return CheckoutInput{
		GiftID:     "gift-1",
		Amount:     150,
		GuestName:  "Ana Souza",
		GuestEmail: "ana@example.com",
		Message:    "Felicidades!",
	}
}

func availableGift() entities.Gift {
	return entities.Gift{
		ID:          "gift-1",
		Name:        "Jogo de Panelas",
		Price:       1000,
		Category:    entities.CategoryCozinha,
		IsAvailable: true,
	}
}

func TestCheckoutUseCase_Validation(t *testing.T) {
	t.Run("amount below minimum", func(t *testing.T) {
		uc := NewCheckoutUseCase(nil, nil)
		in := validCheckoutInput()
		in.Amount = entities.MinContributionAmount - 0.01
		_, err := uc.CreatePreference(context.Background(), in)
		if !errors.Is(err, ErrAmountBelowMinimum) {
			t.Fatalf("expected ErrAmountBelowMinimum, got %v", err)
		}
	})

	t.Run("invalid guest email", func(t *testing.T) {
		uc := NewCheckoutUseCase(nil, nil)
		in := validCheckoutInput()
		in.GuestEmail = "not-an-email"
		_, err := uc.CreatePreference(context.Background(), in)
		if !errors.Is(err, ErrInvalidGuest) {
			t.Fatalf("expected ErrInvalidGuest, got %v", err)
		}
	})

	t.Run("gift not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gifts := mock_interfaces.NewMockIGiftRepository(ctrl)
		uc := NewCheckoutUseCase(gifts, nil)

		gifts.EXPECT().GetByID(gomock.Any(), "gift-1").Return(entities.Gift{}, nil)

		_, err := uc.CreatePreference(context.Background(), validCheckoutInput())
		if !errors.Is(err, ErrGiftNotFound) {
			t.Fatalf("expected ErrGiftNotFound, got %v", err)
		}
	})

	t.Run("fully funded gift", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gifts := mock_interfaces.NewMockIGiftRepository(ctrl)
		uc := NewCheckoutUseCase(gifts, nil)

		g := availableGift()
		g.IsAvailable = false
		gifts.EXPECT().GetByID(gomock.Any(), "gift-1").Return(g, nil)

		_, err := uc.CreatePreference(context.Background(), validCheckoutInput())
		if !errors.Is(err, ErrGiftUnavailable) {
			t.Fatalf("expected ErrGiftUnavailable, got %v", err)
		}
	})
}

func TestCheckoutUseCase_CreatePixCharge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gifts := mock_interfaces.NewMockIGiftRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewCheckoutUseCase(gifts, gateway)

	gifts.EXPECT().GetByID(gomock.Any(), "gift-1").Return(availableGift(), nil)
	gateway.EXPECT().CreatePixPayment(gomock.Any(), gomock.AssignableToTypeOf(interfaces.PixChargeRequest{})).DoAndReturn(
		func(_ context.Context, req interfaces.PixChargeRequest) (interfaces.ChargeResult, error) {
			if req.Amount != 150 || req.Description != "Presente: Jogo de Panelas" {
				t.Fatalf("unexpected request: %+v", req)
			}
			ref := entities.ParseGiftReference(req.ExternalReference)
			if ref.GiftID != "gift-1" || ref.GuestEmail != "ana@example.com" {
				t.Fatalf("unexpected reference: %+v", ref)
			}
			return interfaces.ChargeResult{PaymentID: "123", Status: entities.PaymentStatusPending, QRCode: "qr-data"}, nil
		},
	)

	res, err := uc.CreatePixCharge(context.Background(), validCheckoutInput(), interfaces.Payer{Email: "ana@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.PaymentID != "123" || res.QRCode == "" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestCheckoutUseCase_CreateCardCharge(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gifts := mock_interfaces.NewMockIGiftRepository(ctrl)
		uc := NewCheckoutUseCase(gifts, nil)

		gifts.EXPECT().GetByID(gomock.Any(), "gift-1").Return(availableGift(), nil)

		_, err := uc.CreateCardCharge(context.Background(), CardInput{CheckoutInput: validCheckoutInput(), PaymentMethodID: "visa"})
		if !errors.Is(err, ErrInvalidCardData) {
			t.Fatalf("expected ErrInvalidCardData, got %v", err)
		}
	})

	t.Run("defaults to one installment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gifts := mock_interfaces.NewMockIGiftRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCheckoutUseCase(gifts, gateway)

		gifts.EXPECT().GetByID(gomock.Any(), "gift-1").Return(availableGift(), nil)
		gateway.EXPECT().CreateCardPayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req interfaces.CardChargeRequest) (interfaces.ChargeResult, error) {
				if req.Installments != 1 {
					t.Fatalf("expected 1 installment, got %d", req.Installments)
				}
				return interfaces.ChargeResult{PaymentID: "123", Status: entities.PaymentStatusApproved}, nil
			},
		)

		_, err := uc.CreateCardCharge(context.Background(), CardInput{CheckoutInput: validCheckoutInput(), Token: "tok", PaymentMethodID: "visa"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("decline is a result, not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gifts := mock_interfaces.NewMockIGiftRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCheckoutUseCase(gifts, gateway)

		gifts.EXPECT().GetByID(gomock.Any(), "gift-1").Return(availableGift(), nil)
		gateway.EXPECT().CreateCardPayment(gomock.Any(), gomock.Any()).Return(
			interfaces.ChargeResult{PaymentID: "123", Status: entities.PaymentStatusRejected, StatusDetail: "cc_rejected_insufficient_amount"}, nil)

		res, err := uc.CreateCardCharge(context.Background(), CardInput{CheckoutInput: validCheckoutInput(), Token: "tok", PaymentMethodID: "visa"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.PaymentStatusRejected {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestCheckoutUseCase_GetPaymentStatus(t *testing.T) {
	t.Run("missing id", func(t *testing.T) {
		uc := NewCheckoutUseCase(nil, nil)
		_, err := uc.GetPaymentStatus(context.Background(), " ")
		if !errors.Is(err, ErrMissingPaymentID) {
			t.Fatalf("expected ErrMissingPaymentID, got %v", err)
		}
	})

	t.Run("proxies the gateway read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCheckoutUseCase(nil, gateway)

		gateway.EXPECT().FetchPayment(gomock.Any(), "123").Return(interfaces.PaymentDetails{ID: "123", Status: entities.PaymentStatusApproved}, nil)

		details, err := uc.GetPaymentStatus(context.Background(), "123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if details.Status != entities.PaymentStatusApproved {
			t.Fatalf("unexpected details: %+v", details)
		}
	})
}
