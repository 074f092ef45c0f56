package response

import (
	"time"

	"casamento_pe/internal/domain/entities"
)

type ContributionResponse struct {
	ID            string    `json:"id"`
	GiftID        string    `json:"gift_id"`
	GuestName     string    `json:"guest_name"`
	GuestEmail    string    `json:"guest_email"`
	Amount        float64   `json:"amount"`
	Message       string    `json:"message"`
	PaymentID     string    `json:"payment_id"`
	PaymentStatus string    `json:"payment_status"`
	PaymentMethod string    `json:"payment_method"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromContribution(c entities.Contribution) ContributionResponse {
	return ContributionResponse{
		ID:            c.ID,
		GiftID:        c.GiftID,
		GuestName:     c.GuestName,
		GuestEmail:    c.GuestEmail,
		Amount:        c.Amount,
		Message:       c.Message,
		PaymentID:     c.PaymentID,
		PaymentStatus: string(c.PaymentStatus),
		PaymentMethod: string(c.PaymentMethod),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func FromContributions(list []entities.Contribution) []ContributionResponse {
	out := make([]ContributionResponse, 0, len(list))
	for _, c := range list {
		out = append(out, FromContribution(c))
	}
	return out
}
