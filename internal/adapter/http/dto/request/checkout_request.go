package request

import (
	"casamento_pe/internal/usecase"
	"casamento_pe/internal/usecase/interfaces"
)

type CheckoutRequest struct {
	GiftID     string  `json:"gift_id" binding:"required"`
	Amount     float64 `json:"amount" binding:"required"`
	GuestName  string  `json:"guest_name" binding:"required"`
	GuestEmail string  `json:"guest_email" binding:"required"`
	Message    string  `json:"message"`
}

func (r CheckoutRequest) ToInput() usecase.CheckoutInput {
	return usecase.CheckoutInput{
		GiftID:     r.GiftID,
		Amount:     r.Amount,
		GuestName:  r.GuestName,
		GuestEmail: r.GuestEmail,
		Message:    r.Message,
	}
}

type PayerRequest struct {
	Email              string `json:"email"`
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	IdentificationType string `json:"identification_type"`
	IdentificationNum  string `json:"identification_number"`
}

func (r PayerRequest) ToPayer() interfaces.Payer {
	return interfaces.Payer{
		Email:              r.Email,
		FirstName:          r.FirstName,
		LastName:           r.LastName,
		IdentificationType: r.IdentificationType,
		IdentificationNum:  r.IdentificationNum,
	}
}

type PixChargeRequest struct {
	CheckoutRequest
	Payer PayerRequest `json:"payer"`
}

type CardChargeRequest struct {
	CheckoutRequest
	Token           string       `json:"token" binding:"required"`
	Installments    int          `json:"installments"`
	PaymentMethodID string       `json:"payment_method_id" binding:"required"`
	IssuerID        string       `json:"issuer_id"`
	Payer           PayerRequest `json:"payer"`
}

func (r CardChargeRequest) ToCardInput() usecase.CardInput {
	return usecase.CardInput{
		CheckoutInput:   r.CheckoutRequest.ToInput(),
		Token:           r.Token,
		Installments:    r.Installments,
		PaymentMethodID: r.PaymentMethodID,
		IssuerID:        r.IssuerID,
		Identification:  r.Payer.ToPayer(),
	}
}

type BoletoChargeRequest struct {
	CheckoutRequest
	Payer PayerRequest `json:"payer"`
}
