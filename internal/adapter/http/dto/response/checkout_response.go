package response

import "casamento_pe/internal/usecase/interfaces"

type PreferenceResponse struct {
	PreferenceID     string `json:"preference_id"`
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point,omitempty"`
}

func FromPreference(p interfaces.PreferenceResult) PreferenceResponse {
	return PreferenceResponse{
		PreferenceID:     p.ID,
		InitPoint:        p.InitPoint,
		SandboxInitPoint: p.SandboxInitPoint,
	}
}

type ChargeResponse struct {
	PaymentID    string `json:"payment_id"`
	Status       string `json:"status"`
	RawStatus    string `json:"raw_status"`
	StatusDetail string `json:"status_detail,omitempty"`
	QRCode       string `json:"qr_code,omitempty"`
	QRCodeBase64 string `json:"qr_code_base64,omitempty"`
	TicketURL    string `json:"ticket_url,omitempty"`
}

func FromCharge(r interfaces.ChargeResult) ChargeResponse {
	return ChargeResponse{
		PaymentID:    r.PaymentID,
		Status:       string(r.Status),
		RawStatus:    r.RawStatus,
		StatusDetail: r.StatusDetail,
		QRCode:       r.QRCode,
		QRCodeBase64: r.QRCodeBase64,
		TicketURL:    r.TicketURL,
	}
}

type PaymentStatusResponse struct {
	PaymentID string  `json:"payment_id"`
	Status    string  `json:"status"`
	RawStatus string  `json:"raw_status"`
	Method    string  `json:"method"`
	Amount    float64 `json:"amount"`
}

func FromPaymentDetails(d interfaces.PaymentDetails) PaymentStatusResponse {
	return PaymentStatusResponse{
		PaymentID: d.ID,
		Status:    string(d.Status),
		RawStatus: d.RawStatus,
		Method:    string(d.Method),
		Amount:    d.Amount,
	}
}
