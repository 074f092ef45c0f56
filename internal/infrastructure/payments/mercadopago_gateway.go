package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	appconfig "casamento_pe/internal/config"
	"casamento_pe/internal/domain/entities"
	"casamento_pe/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrInvalidPaymentID = errors.New("invalid mercado pago payment id")

// MercadoPagoGateway implements interfaces.IPaymentGateway on top of the
// official sdk-go clients. Mock mode returns synthetic approved payments
// without touching the network (local dev and CI).

type MercadoPagoGateway struct {
	payments    payment.Client
	preferences preference.Client
	baseURL     string
	mockMode    bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(mpCfg appconfig.MercadoPagoConfig) (*MercadoPagoGateway, error) {
	if mpCfg.MockMode {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, baseURL: mpCfg.BaseURL}, nil
	}

	if mpCfg.AccessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(mpCfg.AccessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		payments:    payment.NewClient(cfg),
		preferences: preference.NewClient(cfg),
		baseURL:     mpCfg.BaseURL,
	}, nil
}

// FetchPayment reads the authoritative payment state. Any SDK failure is
// reported as ErrGatewayUnavailable so the reconciliation path retries via
// provider redelivery instead of trusting partial data.
func (g *MercadoPagoGateway) FetchPayment(ctx context.Context, paymentID string) (interfaces.PaymentDetails, error) {
	if g != nil && g.mockMode {
		return interfaces.PaymentDetails{
			ID:        paymentID,
			Status:    entities.PaymentStatusApproved,
			RawStatus: "approved",
			Method:    entities.PaymentMethodPix,
		}, nil
	}
	if g == nil || g.payments == nil {
		return interfaces.PaymentDetails{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(strings.TrimSpace(paymentID))
	if err != nil {
		log.Printf("[payment][gateway] non-numeric payment id=%q", paymentID)
		return interfaces.PaymentDetails{}, ErrInvalidPaymentID
	}

	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] fetch failed payment_id=%s err=%v", paymentID, err)
		return interfaces.PaymentDetails{}, fmt.Errorf("%w: %v", interfaces.ErrGatewayUnavailable, err)
	}

	return interfaces.PaymentDetails{
		ID:                strconv.Itoa(resp.ID),
		Status:            MapStatus(resp.Status),
		RawStatus:         resp.Status,
		StatusDetail:      resp.StatusDetail,
		Method:            ResolveMethod(resp.PaymentTypeID, resp.PaymentMethodID),
		Amount:            resp.TransactionAmount,
		ExternalReference: resp.ExternalReference,
	}, nil
}

// CreatePixPayment creates an instant-transfer charge and returns the QR
// presentation data.
func (g *MercadoPagoGateway) CreatePixPayment(ctx context.Context, req interfaces.PixChargeRequest) (interfaces.ChargeResult, error) {
	if g != nil && g.mockMode {
		res := mockChargeResult()
		res.QRCode = "00020126mockpixcode"
		res.QRCodeBase64 = "bW9ja3BpeA=="
		return res, nil
	}
	if g == nil || g.payments == nil {
		return interfaces.ChargeResult{}, ErrMercadoPagoGatewayNotConfigured
	}

	request := payment.Request{
		TransactionAmount: req.Amount,
		Description:       req.Description,
		PaymentMethodID:   "pix",
		ExternalReference: req.ExternalReference,
		NotificationURL:   g.notificationURL(),
		Payer:             toPayerRequest(req.Payer),
	}

	resp, err := g.payments.Create(ctx, request)
	if err != nil {
		log.Printf("[payment][gateway] pix create failed err=%v", err)
		return interfaces.ChargeResult{}, classifyCreateError(err)
	}
	log.Printf("[payment][gateway] pix create success payment_id=%d status=%s", resp.ID, resp.Status)

	res := chargeResultFromResponse(resp)
	res.QRCode = resp.PointOfInteraction.TransactionData.QRCode
	res.QRCodeBase64 = resp.PointOfInteraction.TransactionData.QRCodeBase64
	res.TicketURL = resp.PointOfInteraction.TransactionData.TicketURL
	return res, nil
}

// CreateCardPayment charges a card token. Declines come back as a rejected
// ChargeResult with the provider's status_detail, not as an error.
func (g *MercadoPagoGateway) CreateCardPayment(ctx context.Context, req interfaces.CardChargeRequest) (interfaces.ChargeResult, error) {
	if g != nil && g.mockMode {
		return mockChargeResult(), nil
	}
	if g == nil || g.payments == nil {
		return interfaces.ChargeResult{}, ErrMercadoPagoGatewayNotConfigured
	}

	request := payment.Request{
		TransactionAmount: req.Amount,
		Token:             req.Token,
		Description:       req.Description,
		Installments:      req.Installments,
		PaymentMethodID:   req.PaymentMethodID,
		IssuerID:          req.IssuerID,
		ExternalReference: req.ExternalReference,
		NotificationURL:   g.notificationURL(),
		Payer:             toPayerRequest(req.Payer),
	}

	resp, err := g.payments.Create(ctx, request)
	if err != nil {
		log.Printf("[payment][gateway] card create failed err=%v", err)
		return interfaces.ChargeResult{}, classifyCreateError(err)
	}
	log.Printf("[payment][gateway] card create success payment_id=%d status=%s detail=%s", resp.ID, resp.Status, resp.StatusDetail)

	return chargeResultFromResponse(resp), nil
}

// CreateBoletoPayment creates a bank-slip charge; the printable slip URL
// comes back in TicketURL.
func (g *MercadoPagoGateway) CreateBoletoPayment(ctx context.Context, req interfaces.BoletoChargeRequest) (interfaces.ChargeResult, error) {
	if g != nil && g.mockMode {
		res := mockChargeResult()
		res.Status = entities.PaymentStatusPending
		res.RawStatus = "pending"
		res.TicketURL = "https://example.invalid/mock-boleto"
		return res, nil
	}
	if g == nil || g.payments == nil {
		return interfaces.ChargeResult{}, ErrMercadoPagoGatewayNotConfigured
	}

	request := payment.Request{
		TransactionAmount: req.Amount,
		Description:       req.Description,
		PaymentMethodID:   "bolbradesco",
		ExternalReference: req.ExternalReference,
		NotificationURL:   g.notificationURL(),
		Payer:             toPayerRequest(req.Payer),
	}

	resp, err := g.payments.Create(ctx, request)
	if err != nil {
		log.Printf("[payment][gateway] boleto create failed err=%v", err)
		return interfaces.ChargeResult{}, classifyCreateError(err)
	}
	log.Printf("[payment][gateway] boleto create success payment_id=%d status=%s", resp.ID, resp.Status)

	res := chargeResultFromResponse(resp)
	res.TicketURL = resp.TransactionDetails.ExternalResourceURL
	return res, nil
}

// CreatePreference creates a hosted-checkout preference carrying the gift
// reference bundle, so the webhook can attribute the payment later.
func (g *MercadoPagoGateway) CreatePreference(ctx context.Context, req interfaces.PreferenceRequest) (interfaces.PreferenceResult, error) {
	if g != nil && g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		return interfaces.PreferenceResult{
			ID:               id,
			InitPoint:        g.baseURL + "/mock-checkout/" + id,
			SandboxInitPoint: g.baseURL + "/mock-checkout/" + id,
		}, nil
	}
	if g == nil || g.preferences == nil {
		return interfaces.PreferenceResult{}, ErrMercadoPagoGatewayNotConfigured
	}

	ref := entities.GiftReference{
		GiftID:     req.GiftID,
		GuestName:  req.GuestName,
		GuestEmail: req.GuestEmail,
		Message:    req.Message,
	}

	request := preference.Request{
		Items: []preference.ItemRequest{
			{
				ID:          req.GiftID,
				Title:       "Presente: " + req.GiftName,
				Description: "Contribuição para o casamento de Priscila e Emanuel",
				Quantity:    1,
				CurrencyID:  "BRL",
				UnitPrice:   req.Amount,
			},
		},
		Payer: &preference.PayerRequest{
			Name:  req.GuestName,
			Email: req.GuestEmail,
		},
		BackURLs: &preference.BackURLsRequest{
			Success: g.baseURL + "/confirmacao?status=approved",
			Failure: g.baseURL + "/confirmacao?status=rejected",
			Pending: g.baseURL + "/confirmacao?status=pending",
		},
		AutoReturn:          "approved",
		ExternalReference:   ref.Encode(),
		NotificationURL:     g.notificationURL(),
		StatementDescriptor: "CASAMENTO P&E",
		PaymentMethods: &preference.PaymentMethodsRequest{
			Installments:        12,
			DefaultInstallments: 1,
		},
	}

	resp, err := g.preferences.Create(ctx, request)
	if err != nil {
		log.Printf("[payment][gateway] preference create failed err=%v", err)
		return interfaces.PreferenceResult{}, classifyCreateError(err)
	}
	log.Printf("[payment][gateway] preference create success preference_id=%s", resp.ID)

	return interfaces.PreferenceResult{
		ID:               resp.ID,
		InitPoint:        resp.InitPoint,
		SandboxInitPoint: resp.SandboxInitPoint,
	}, nil
}

func (g *MercadoPagoGateway) notificationURL() string {
	return g.baseURL + "/v1/webhooks/mercadopago"
}

func toPayerRequest(p interfaces.Payer) *payment.PayerRequest {
	req := &payment.PayerRequest{
		Email:     p.Email,
		FirstName: p.FirstName,
		LastName:  p.LastName,
	}
	if p.IdentificationType != "" || p.IdentificationNum != "" {
		req.Identification = &payment.IdentificationRequest{
			Type:   p.IdentificationType,
			Number: p.IdentificationNum,
		}
	}
	return req
}

func chargeResultFromResponse(resp *payment.Response) interfaces.ChargeResult {
	return interfaces.ChargeResult{
		PaymentID:    strconv.Itoa(resp.ID),
		Status:       MapStatus(resp.Status),
		RawStatus:    resp.Status,
		StatusDetail: resp.StatusDetail,
	}
}

func mockChargeResult() interfaces.ChargeResult {
	return interfaces.ChargeResult{
		PaymentID: strconv.FormatInt(time.Now().UTC().UnixNano(), 10),
		Status:    entities.PaymentStatusApproved,
		RawStatus: "approved",
	}
}

// classifyCreateError separates transport problems (retryable) from request
// problems. Mercado Pago declines do not error on Create: they return a
// rejected payment, so anything arriving here is transport, auth, or a
// malformed request.
func classifyCreateError(err error) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "\"status\":400") || strings.Contains(msg, "\"error\":\"bad_request\"") {
		return err
	}
	if strings.Contains(msg, "\"status\":401") || strings.Contains(msg, "\"error\":\"unauthorized\"") {
		return err
	}
	return fmt.Errorf("%w: %v", interfaces.ErrGatewayUnavailable, err)
}
