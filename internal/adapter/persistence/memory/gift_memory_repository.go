package memory

import (
	"context"
	"sync"
	"time"

	"casamento_pe/internal/domain/entities"
	"casamento_pe/internal/usecase/interfaces"
)

// GiftMemoryRepository keeps the catalog in memory. It backs demo mode
// (when no DynamoDB is configured) and the test suite, with the same
// conditional semantics as the DynamoDB implementation under one mutex.

type GiftMemoryRepository struct {
	mu    sync.Mutex
	gifts map[string]entities.Gift
}

var _ interfaces.IGiftRepository = (*GiftMemoryRepository)(nil)

func NewGiftMemoryRepository(seed []entities.Gift) *GiftMemoryRepository {
	r := &GiftMemoryRepository{gifts: make(map[string]entities.Gift, len(seed))}
	for _, g := range seed {
		r.gifts[g.ID] = g
	}
	return r
}

func (r *GiftMemoryRepository) Create(_ context.Context, g entities.Gift) (entities.Gift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gifts[g.ID] = g
	return g, nil
}

func (r *GiftMemoryRepository) GetByID(_ context.Context, id string) (entities.Gift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.gifts[id], nil
}

func (r *GiftMemoryRepository) List(_ context.Context, filter interfaces.GiftFilter) ([]entities.Gift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	gifts := make([]entities.Gift, 0, len(r.gifts))
	for _, g := range r.gifts {
		if filter.Category != "" && g.Category != filter.Category {
			continue
		}
		if filter.OnlyAvailable && !g.IsAvailable {
			continue
		}
		gifts = append(gifts, g)
	}
	return gifts, nil
}

func (r *GiftMemoryRepository) Update(_ context.Context, g entities.Gift) (entities.Gift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.gifts[g.ID]; !ok {
		return entities.Gift{}, interfaces.ErrGiftNotFound
	}
	r.gifts[g.ID] = g
	return g, nil
}

func (r *GiftMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.gifts[id]; !ok {
		return interfaces.ErrGiftNotFound
	}
	delete(r.gifts, id)
	return nil
}

func (r *GiftMemoryRepository) IncrementAmountReceived(_ context.Context, giftID string, delta float64) (entities.Gift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.gifts[giftID]
	if !ok {
		return entities.Gift{}, interfaces.ErrGiftNotFound
	}
	g.AmountReceived += delta
	g.UpdatedAt = time.Now().UTC()
	g.IsAvailable = g.ComputeAvailability()
	r.gifts[giftID] = g
	return g, nil
}
