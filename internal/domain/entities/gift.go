package entities

import "time"

// Category groups gifts in the registry catalog.
//
// Domain notes:
//   - "zoeira" marks joke/novelty gifts. They carry a fixed price but no
//     funding cap: guests may keep contributing forever and the gift never
//     becomes unavailable.

type Category string

const (
	CategoryCozinha          Category = "cozinha"
	CategoryQuarto           Category = "quarto"
	CategorySala             Category = "sala"
	CategoryBanheiro         Category = "banheiro"
	CategoryEletrodomesticos Category = "eletrodomesticos"
	CategoryExperiencias     Category = "experiencias"
	CategoryZoeira           Category = "zoeira"
)

// Categories lists every valid category, in catalog display order.
var Categories = []Category{
	CategoryCozinha,
	CategoryQuarto,
	CategorySala,
	CategoryBanheiro,
	CategoryEletrodomesticos,
	CategoryExperiencias,
	CategoryZoeira,
}

func IsValidCategory(c Category) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// Gift is a registry item guests contribute toward.
//
// Storage model (DynamoDB):
//   - PK: id (string)
//
// Funding:
//   - AmountReceived only grows, and only through the reconciliation engine
//     (no decrement path; refunds are not reflected back).
//   - IsAvailable is derived: amount_received < price, except zoeira gifts
//     which stay available regardless of how much they collected.

type Gift struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Price          float64   `json:"price"`
	ImageURL       string    `json:"image_url"`
	Category       Category  `json:"category"`
	AmountReceived float64   `json:"amount_received"`
	IsAvailable    bool      `json:"is_available"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// IsJoke reports whether the gift is exempt from the fully-funded flip.
func (g Gift) IsJoke() bool {
	return g.Category == CategoryZoeira
}

// ComputeAvailability derives IsAvailable from the funding state.
func (g Gift) ComputeAvailability() bool {
	if g.IsJoke() {
		return true
	}
	return g.AmountReceived < g.Price
}
