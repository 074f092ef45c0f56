package memory

import (
	"context"
	"errors"
	"testing"

	"casamento_pe/internal/domain/entities"
	"casamento_pe/internal/usecase/interfaces"
)

func TestContributionMemoryRepository_Create(t *testing.T) {
	repo := NewContributionMemoryRepository()

	c := entities.Contribution{ID: "c-1", PaymentID: "123", GiftID: "g-1", Amount: 100}
	if _, err := repo.Create(context.Background(), c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := repo.Create(context.Background(), c); !errors.Is(err, interfaces.ErrContributionExists) {
		t.Fatalf("expected ErrContributionExists, got %v", err)
	}
}

func TestContributionMemoryRepository_GetByPaymentID(t *testing.T) {
	repo := NewContributionMemoryRepository()

	got, err := repo.GetByPaymentID(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.PaymentID != "" {
		t.Fatalf("expected zero value for a missing row, got %+v", got)
	}
}

func TestContributionMemoryRepository_MarkApproved(t *testing.T) {
	t.Run("first flip wins", func(t *testing.T) {
		repo := NewContributionMemoryRepository()
		_, _ = repo.Create(context.Background(), entities.Contribution{
			ID: "c-1", PaymentID: "123", PaymentStatus: entities.PaymentStatusPending,
		})

		got, applied, err := repo.MarkApproved(context.Background(), "123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !applied || got.PaymentStatus != entities.PaymentStatusApproved {
			t.Fatalf("expected applied transition, got %+v applied=%v", got, applied)
		}

		_, applied, err = repo.MarkApproved(context.Background(), "123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if applied {
			t.Fatalf("expected second flip to report not applied")
		}
	})

	t.Run("missing row", func(t *testing.T) {
		repo := NewContributionMemoryRepository()
		_, _, err := repo.MarkApproved(context.Background(), "ghost")
		if !errors.Is(err, interfaces.ErrContributionNotFound) {
			t.Fatalf("expected ErrContributionNotFound, got %v", err)
		}
	})
}

func TestContributionMemoryRepository_ListByGiftID(t *testing.T) {
	repo := NewContributionMemoryRepository()
	_, _ = repo.Create(context.Background(), entities.Contribution{ID: "c-1", PaymentID: "1", GiftID: "g-1"})
	_, _ = repo.Create(context.Background(), entities.Contribution{ID: "c-2", PaymentID: "2", GiftID: "g-2"})
	_, _ = repo.Create(context.Background(), entities.Contribution{ID: "c-3", PaymentID: "3", GiftID: "g-1"})

	got, err := repo.ListByGiftID(context.Background(), "g-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 contributions, got %d", len(got))
	}
}
