package memory

import (
	"context"
	"sync"
	"time"

	"casamento_pe/internal/domain/entities"
	"casamento_pe/internal/usecase/interfaces"
)

// ContributionMemoryRepository mirrors the DynamoDB contribution table:
// one row per payment id, conditional create, conditional approved flip.

type ContributionMemoryRepository struct {
	mu            sync.Mutex
	contributions map[string]entities.Contribution
}

var _ interfaces.IContributionRepository = (*ContributionMemoryRepository)(nil)

func NewContributionMemoryRepository() *ContributionMemoryRepository {
	return &ContributionMemoryRepository{contributions: make(map[string]entities.Contribution)}
}

func (r *ContributionMemoryRepository) Create(_ context.Context, c entities.Contribution) (entities.Contribution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.contributions[c.PaymentID]; ok {
		return entities.Contribution{}, interfaces.ErrContributionExists
	}
	r.contributions[c.PaymentID] = c
	return c, nil
}

func (r *ContributionMemoryRepository) GetByPaymentID(_ context.Context, paymentID string) (entities.Contribution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.contributions[paymentID], nil
}

func (r *ContributionMemoryRepository) MarkApproved(_ context.Context, paymentID string) (entities.Contribution, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.contributions[paymentID]
	if !ok {
		return entities.Contribution{}, false, interfaces.ErrContributionNotFound
	}
	if c.PaymentStatus == entities.PaymentStatusApproved {
		return c, false, nil
	}
	c.PaymentStatus = entities.PaymentStatusApproved
	c.UpdatedAt = time.Now().UTC()
	r.contributions[paymentID] = c
	return c, true, nil
}

func (r *ContributionMemoryRepository) UpdateStatus(_ context.Context, paymentID string, status entities.PaymentStatus) (entities.Contribution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.contributions[paymentID]
	if !ok {
		return entities.Contribution{}, interfaces.ErrContributionNotFound
	}
	c.PaymentStatus = status
	c.UpdatedAt = time.Now().UTC()
	r.contributions[paymentID] = c
	return c, nil
}

func (r *ContributionMemoryRepository) List(_ context.Context) ([]entities.Contribution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := make([]entities.Contribution, 0, len(r.contributions))
	for _, c := range r.contributions {
		list = append(list, c)
	}
	return list, nil
}

func (r *ContributionMemoryRepository) ListByGiftID(_ context.Context, giftID string) ([]entities.Contribution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := make([]entities.Contribution, 0)
	for _, c := range r.contributions {
		if c.GiftID == giftID {
			list = append(list, c)
		}
	}
	return list, nil
}
