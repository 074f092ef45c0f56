package usecase

import (
	"context"
	"errors"
	"strings"

	"casamento_pe/internal/domain/entities"
	"casamento_pe/internal/usecase/interfaces"
)

var ErrInvalidContributionGiftID = errors.New("invalid gift id filter")

// AdminStats summarizes the registry for the admin view.

type AdminStats struct {
	TotalGifts         int                       `json:"total_gifts"`
	TotalContributions int                       `json:"total_contributions"`
	TotalAmount        float64                   `json:"total_amount"`
	ApprovedAmount     float64                   `json:"approved_amount"`
	PendingAmount      float64                   `json:"pending_amount"`
	GiftsByCategory    map[entities.Category]int `json:"gifts_by_category"`
}

// IContributionUseCase is the admin read surface over the ledger.

type IContributionUseCase interface {
	List(ctx context.Context) ([]entities.Contribution, error)
	ListByGiftID(ctx context.Context, giftID string) ([]entities.Contribution, error)
	Stats(ctx context.Context) (AdminStats, error)
}

type ContributionUseCase struct {
	contributions interfaces.IContributionRepository
	gifts         interfaces.IGiftRepository
}

var _ IContributionUseCase = (*ContributionUseCase)(nil)

func NewContributionUseCase(contributions interfaces.IContributionRepository, gifts interfaces.IGiftRepository) *ContributionUseCase {
	return &ContributionUseCase{contributions: contributions, gifts: gifts}
}

func (u *ContributionUseCase) List(ctx context.Context) ([]entities.Contribution, error) {
	return u.contributions.List(ctx)
}

func (u *ContributionUseCase) ListByGiftID(ctx context.Context, giftID string) ([]entities.Contribution, error) {
	giftID = strings.TrimSpace(giftID)
	if giftID == "" {
		return nil, ErrInvalidContributionGiftID
	}
	return u.contributions.ListByGiftID(ctx, giftID)
}

func (u *ContributionUseCase) Stats(ctx context.Context) (AdminStats, error) {
	gifts, err := u.gifts.List(ctx, interfaces.GiftFilter{})
	if err != nil {
		return AdminStats{}, err
	}
	contributions, err := u.contributions.List(ctx)
	if err != nil {
		return AdminStats{}, err
	}

	stats := AdminStats{
		TotalGifts:         len(gifts),
		TotalContributions: len(contributions),
		GiftsByCategory:    make(map[entities.Category]int),
	}
	for _, g := range gifts {
		stats.GiftsByCategory[g.Category]++
	}
	for _, c := range contributions {
		stats.TotalAmount += c.Amount
		switch c.PaymentStatus {
		case entities.PaymentStatusApproved:
			stats.ApprovedAmount += c.Amount
		case entities.PaymentStatusPending:
			stats.PendingAmount += c.Amount
		}
	}
	return stats, nil
}
