package interfaces

import (
	"context"
	"errors"

	"casamento_pe/internal/domain/entities"
)

// ErrGatewayUnavailable wraps transport/timeout/5xx failures talking to the
// payment provider. Callers must treat it as retryable: on the webhook path
// it aborts reconciliation before any write so the provider's redelivery is
// a safe recovery.
var ErrGatewayUnavailable = errors.New("payment gateway unavailable")

// PaymentDetails is the authoritative read of a payment, already translated
// into the domain vocabulary. RawStatus keeps the provider string for logs.

type PaymentDetails struct {
	ID                string
	Status            entities.PaymentStatus
	RawStatus         string
	StatusDetail      string
	Method            entities.PaymentMethod
	Amount            float64
	ExternalReference string
}

// Payer identifies the paying guest to the provider.

type Payer struct {
	Email              string
	FirstName          string
	LastName           string
	IdentificationType string
	IdentificationNum  string
}

// PixChargeRequest creates an instant-transfer charge (QR code / copy-paste).

type PixChargeRequest struct {
	Amount            float64
	Description       string
	ExternalReference string
	Payer             Payer
}

// CardChargeRequest charges a tokenized card.

type CardChargeRequest struct {
	Token             string
	Amount            float64
	Installments      int
	PaymentMethodID   string
	IssuerID          string
	Description       string
	ExternalReference string
	Payer             Payer
}

// BoletoChargeRequest creates a bank-slip charge.

type BoletoChargeRequest struct {
	Amount            float64
	Description       string
	ExternalReference string
	Payer             Payer
}

// ChargeResult is the outcome of a charge creation. A provider decline is a
// valid result (Status rejected + StatusDetail), not an error: only
// transport and configuration failures surface as errors.

type ChargeResult struct {
	PaymentID    string
	Status       entities.PaymentStatus
	RawStatus    string
	StatusDetail string

	// PIX presentation data.
	QRCode       string
	QRCodeBase64 string
	TicketURL    string
}

// PreferenceRequest creates a hosted-checkout preference (redirect flow).

type PreferenceRequest struct {
	GiftID     string
	GiftName   string
	Amount     float64
	GuestName  string
	GuestEmail string
	Message    string
}

type PreferenceResult struct {
	ID               string
	InitPoint        string
	SandboxInitPoint string
}

// IPaymentGateway abstracts the external payment provider (Mercado Pago).

type IPaymentGateway interface {
	FetchPayment(ctx context.Context, paymentID string) (PaymentDetails, error)
	CreatePixPayment(ctx context.Context, req PixChargeRequest) (ChargeResult, error)
	CreateCardPayment(ctx context.Context, req CardChargeRequest) (ChargeResult, error)
	CreateBoletoPayment(ctx context.Context, req BoletoChargeRequest) (ChargeResult, error)
	CreatePreference(ctx context.Context, req PreferenceRequest) (PreferenceResult, error)
}
