package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"casamento_pe/internal/domain/entities"
	"casamento_pe/internal/usecase/interfaces"
)

var (
	ErrAmountBelowMinimum = errors.New("contribution amount below minimum")
	ErrGiftUnavailable    = errors.New("gift is fully funded")
	ErrInvalidGuest       = errors.New("invalid guest data")
	ErrInvalidCardData    = errors.New("invalid card data")
)

// CheckoutInput is the shared shape of every charge creation: which gift,
// how much, and who is paying.

type CheckoutInput struct {
	GiftID     string
	Amount     float64
	GuestName  string
	GuestEmail string
	Message    string
}

type CardInput struct {
	CheckoutInput
	Token           string
	Installments    int
	PaymentMethodID string
	IssuerID        string
	Identification  interfaces.Payer
}

// ICheckoutUseCase creates charges at the gateway. It performs no local
// writes: the ledger only learns about a payment when the gateway notifies
// the reconciliation engine, keeping a single funding path.

type ICheckoutUseCase interface {
	CreatePreference(ctx context.Context, in CheckoutInput) (interfaces.PreferenceResult, error)
	CreatePixCharge(ctx context.Context, in CheckoutInput, payer interfaces.Payer) (interfaces.ChargeResult, error)
	CreateCardCharge(ctx context.Context, in CardInput) (interfaces.ChargeResult, error)
	CreateBoletoCharge(ctx context.Context, in CheckoutInput, payer interfaces.Payer) (interfaces.ChargeResult, error)
	GetPaymentStatus(ctx context.Context, paymentID string) (interfaces.PaymentDetails, error)
}

type CheckoutUseCase struct {
	gifts   interfaces.IGiftRepository
	gateway interfaces.IPaymentGateway
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(gifts interfaces.IGiftRepository, gateway interfaces.IPaymentGateway) *CheckoutUseCase {
	return &CheckoutUseCase{gifts: gifts, gateway: gateway}
}

func (u *CheckoutUseCase) CreatePreference(ctx context.Context, in CheckoutInput) (interfaces.PreferenceResult, error) {
	gift, err := u.validateCheckout(ctx, in)
	if err != nil {
		return interfaces.PreferenceResult{}, err
	}

	res, err := u.gateway.CreatePreference(ctx, interfaces.PreferenceRequest{
		GiftID:     gift.ID,
		GiftName:   gift.Name,
		Amount:     in.Amount,
		GuestName:  in.GuestName,
		GuestEmail: in.GuestEmail,
		Message:    in.Message,
	})
	if err != nil {
		log.Printf("[checkout][usecase] preference failed gift_id=%s err=%v", gift.ID, err)
		return interfaces.PreferenceResult{}, err
	}
	log.Printf("[checkout][usecase] preference created gift_id=%s preference_id=%s amount=%.2f", gift.ID, res.ID, in.Amount)
	return res, nil
}

func (u *CheckoutUseCase) CreatePixCharge(ctx context.Context, in CheckoutInput, payer interfaces.Payer) (interfaces.ChargeResult, error) {
	gift, err := u.validateCheckout(ctx, in)
	if err != nil {
		return interfaces.ChargeResult{}, err
	}

	res, err := u.gateway.CreatePixPayment(ctx, interfaces.PixChargeRequest{
		Amount:            in.Amount,
		Description:       chargeDescription(gift),
		ExternalReference: externalReference(in),
		Payer:             payer,
	})
	if err != nil {
		log.Printf("[checkout][usecase] pix charge failed gift_id=%s err=%v", gift.ID, err)
		return interfaces.ChargeResult{}, err
	}
	log.Printf("[checkout][usecase] pix charge created gift_id=%s payment_id=%s status=%s", gift.ID, res.PaymentID, res.Status)
	return res, nil
}

func (u *CheckoutUseCase) CreateCardCharge(ctx context.Context, in CardInput) (interfaces.ChargeResult, error) {
	gift, err := u.validateCheckout(ctx, in.CheckoutInput)
	if err != nil {
		return interfaces.ChargeResult{}, err
	}
	if strings.TrimSpace(in.Token) == "" || strings.TrimSpace(in.PaymentMethodID) == "" {
		return interfaces.ChargeResult{}, ErrInvalidCardData
	}
	installments := in.Installments
	if installments < 1 {
		installments = 1
	}

	res, err := u.gateway.CreateCardPayment(ctx, interfaces.CardChargeRequest{
		Token:             in.Token,
		Amount:            in.Amount,
		Installments:      installments,
		PaymentMethodID:   in.PaymentMethodID,
		IssuerID:          in.IssuerID,
		Description:       chargeDescription(gift),
		ExternalReference: externalReference(in.CheckoutInput),
		Payer:             in.Identification,
	})
	if err != nil {
		log.Printf("[checkout][usecase] card charge failed gift_id=%s err=%v", gift.ID, err)
		return interfaces.ChargeResult{}, err
	}
	// A decline is a valid result; the status detail is the user-facing
	// reason code.
	log.Printf("[checkout][usecase] card charge created gift_id=%s payment_id=%s status=%s detail=%s",
		gift.ID, res.PaymentID, res.Status, res.StatusDetail)
	return res, nil
}

func (u *CheckoutUseCase) CreateBoletoCharge(ctx context.Context, in CheckoutInput, payer interfaces.Payer) (interfaces.ChargeResult, error) {
	gift, err := u.validateCheckout(ctx, in)
	if err != nil {
		return interfaces.ChargeResult{}, err
	}

	res, err := u.gateway.CreateBoletoPayment(ctx, interfaces.BoletoChargeRequest{
		Amount:            in.Amount,
		Description:       chargeDescription(gift),
		ExternalReference: externalReference(in),
		Payer:             payer,
	})
	if err != nil {
		log.Printf("[checkout][usecase] boleto charge failed gift_id=%s err=%v", gift.ID, err)
		return interfaces.ChargeResult{}, err
	}
	log.Printf("[checkout][usecase] boleto charge created gift_id=%s payment_id=%s status=%s", gift.ID, res.PaymentID, res.Status)
	return res, nil
}

func (u *CheckoutUseCase) GetPaymentStatus(ctx context.Context, paymentID string) (interfaces.PaymentDetails, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return interfaces.PaymentDetails{}, ErrMissingPaymentID
	}
	return u.gateway.FetchPayment(ctx, paymentID)
}

func (u *CheckoutUseCase) validateCheckout(ctx context.Context, in CheckoutInput) (entities.Gift, error) {
	if in.Amount < entities.MinContributionAmount {
		return entities.Gift{}, ErrAmountBelowMinimum
	}
	if len(strings.TrimSpace(in.GuestName)) < 2 || !strings.Contains(in.GuestEmail, "@") {
		return entities.Gift{}, ErrInvalidGuest
	}

	giftID := strings.TrimSpace(in.GiftID)
	if giftID == "" {
		return entities.Gift{}, ErrInvalidGiftID
	}
	gift, err := u.gifts.GetByID(ctx, giftID)
	if err != nil {
		return entities.Gift{}, err
	}
	if gift.ID == "" {
		return entities.Gift{}, ErrGiftNotFound
	}
	if !gift.IsAvailable {
		return entities.Gift{}, ErrGiftUnavailable
	}
	return gift, nil
}

func chargeDescription(gift entities.Gift) string {
	return fmt.Sprintf("Presente: %s", gift.Name)
}

func externalReference(in CheckoutInput) string {
	return entities.GiftReference{
		GiftID:     strings.TrimSpace(in.GiftID),
		GuestName:  strings.TrimSpace(in.GuestName),
		GuestEmail: strings.TrimSpace(in.GuestEmail),
		Message:    in.Message,
	}.Encode()
}
