package response

import (
	"time"

	"casamento_pe/internal/domain/entities"
)

type GiftResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Price          float64   `json:"price"`
	ImageURL       string    `json:"image_url"`
	Category       string    `json:"category"`
	AmountReceived float64   `json:"amount_received"`
	IsAvailable    bool      `json:"is_available"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromGift(g entities.Gift) GiftResponse {
	return GiftResponse{
		ID:             g.ID,
		Name:           g.Name,
		Description:    g.Description,
		Price:          g.Price,
		ImageURL:       g.ImageURL,
		Category:       string(g.Category),
		AmountReceived: g.AmountReceived,
		IsAvailable:    g.IsAvailable,
		CreatedAt:      g.CreatedAt,
		UpdatedAt:      g.UpdatedAt,
	}
}

func FromGifts(gifts []entities.Gift) []GiftResponse {
	out := make([]GiftResponse, 0, len(gifts))
	for _, g := range gifts {
		out = append(out, FromGift(g))
	}
	return out
}
