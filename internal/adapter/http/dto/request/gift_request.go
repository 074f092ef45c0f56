package request

import (
	"casamento_pe/internal/domain/entities"
	"casamento_pe/internal/usecase"
)

type GiftCreateRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	ImageURL    string  `json:"image_url" binding:"required"`
	Category    string  `json:"category" binding:"required"`
}

func (r GiftCreateRequest) ToInput() usecase.GiftInput {
	return usecase.GiftInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
		Category:    entities.Category(r.Category),
	}
}

// GiftUpdateRequest uses pointers so a PATCH only touches the fields the
// admin actually sent.
type GiftUpdateRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	ImageURL    *string  `json:"image_url"`
	Category    *string  `json:"category"`
	IsAvailable *bool    `json:"is_available"`
}

func (r GiftUpdateRequest) ToPatch() usecase.GiftPatch {
	patch := usecase.GiftPatch{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
		IsAvailable: r.IsAvailable,
	}
	if r.Category != nil {
		cat := entities.Category(*r.Category)
		patch.Category = &cat
	}
	return patch
}
