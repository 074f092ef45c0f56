package interfaces

import (
	"context"
	"errors"

	"casamento_pe/internal/domain/entities"
)

var (
	// ErrGiftNotFound is returned by mutations targeting a missing gift.
	ErrGiftNotFound = errors.New("gift not found")
)

// GiftFilter narrows catalog listings.
type GiftFilter struct {
	Category      entities.Category
	OnlyAvailable bool
}

// IGiftRepository abstracts persistence for Gift.
//
// IncrementAmountReceived must be an atomic server-side increment (not a
// read-modify-write in the caller): the gift's funding total is the only
// contended value in the system and concurrent approved notifications for
// different payments may race on it.

type IGiftRepository interface {
	Create(ctx context.Context, g entities.Gift) (entities.Gift, error)
	GetByID(ctx context.Context, id string) (entities.Gift, error)
	List(ctx context.Context, filter GiftFilter) ([]entities.Gift, error)
	Update(ctx context.Context, g entities.Gift) (entities.Gift, error)
	Delete(ctx context.Context, id string) error

	// IncrementAmountReceived adds delta to the gift's amount_received and
	// recomputes availability (zoeira gifts never flip to unavailable).
	// Returns the gift as observed after the increment.
	IncrementAmountReceived(ctx context.Context, giftID string, delta float64) (entities.Gift, error)
}
