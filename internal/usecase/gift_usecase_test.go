package usecase

import (
	"context"
	"errors"
	"testing"

	"casamento_pe/internal/domain/entities"
	"casamento_pe/internal/usecase/interfaces"
	mock_interfaces "casamento_pe/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validGiftInput() GiftInput {
	return GiftInput{
		Name:        "Jogo de Panelas",
		Description: "Conjunto antiaderente com 5 peças",
		Price:       450,
		ImageURL:    "https://images.example.com/panelas.jpg",
		Category:    entities.CategoryCozinha,
	}
}

func TestGiftUseCase_Create(t *testing.T) {
	t.Run("invalid name", func(t *testing.T) {
		uc := NewGiftUseCase(nil)
		in := validGiftInput()
		in.Name = " a "
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrInvalidGiftData) {
			t.Fatalf("expected ErrInvalidGiftData, got %v", err)
		}
	})

	t.Run("invalid price", func(t *testing.T) {
		uc := NewGiftUseCase(nil)
		in := validGiftInput()
		in.Price = 0
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrInvalidGiftData) {
			t.Fatalf("expected ErrInvalidGiftData, got %v", err)
		}
	})

	t.Run("invalid category", func(t *testing.T) {
		uc := NewGiftUseCase(nil)
		in := validGiftInput()
		in.Category = "garagem"
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrInvalidGiftData) {
			t.Fatalf("expected ErrInvalidGiftData, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGiftRepository(ctrl)
		uc := NewGiftUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Gift{})).DoAndReturn(
			func(_ context.Context, g entities.Gift) (entities.Gift, error) {
				if g.ID == "" || !g.IsAvailable || g.AmountReceived != 0 {
					t.Fatalf("unexpected gift: %+v", g)
				}
				if g.CreatedAt.IsZero() || g.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return g, nil
			},
		)

		res, err := uc.Create(context.Background(), validGiftInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestGiftUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewGiftUseCase(nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidGiftID) {
			t.Fatalf("expected ErrInvalidGiftID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGiftRepository(ctrl)
		uc := NewGiftUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Gift{}, nil)

		_, err := uc.GetByID(context.Background(), "ghost")
		if !errors.Is(err, ErrGiftNotFound) {
			t.Fatalf("expected ErrGiftNotFound, got %v", err)
		}
	})
}

func TestGiftUseCase_List(t *testing.T) {
	t.Run("invalid category filter", func(t *testing.T) {
		uc := NewGiftUseCase(nil)
		_, err := uc.List(context.Background(), "garagem", false)
		if !errors.Is(err, ErrInvalidGiftData) {
			t.Fatalf("expected ErrInvalidGiftData, got %v", err)
		}
	})

	t.Run("passes filter through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGiftRepository(ctrl)
		uc := NewGiftUseCase(repo)

		repo.EXPECT().List(gomock.Any(), interfaces.GiftFilter{Category: entities.CategoryZoeira, OnlyAvailable: true}).Return([]entities.Gift{}, nil)

		if _, err := uc.List(context.Background(), entities.CategoryZoeira, true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestGiftUseCase_Update(t *testing.T) {
	t.Run("patch applies only sent fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGiftRepository(ctrl)
		uc := NewGiftUseCase(repo)

		current := entities.Gift{
			ID:          "gift-1",
			Name:        "Jogo de Panelas",
			Description: "Conjunto antiaderente com 5 peças",
			Price:       450,
			ImageURL:    "https://images.example.com/panelas.jpg",
			Category:    entities.CategoryCozinha,
			IsAvailable: true,
		}
		newPrice := 500.0

		repo.EXPECT().GetByID(gomock.Any(), "gift-1").Return(current, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, g entities.Gift) (entities.Gift, error) {
				if g.Price != 500 || g.Name != current.Name {
					t.Fatalf("unexpected gift: %+v", g)
				}
				return g, nil
			},
		)

		if _, err := uc.Update(context.Background(), "gift-1", GiftPatch{Price: &newPrice}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("update of missing gift", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGiftRepository(ctrl)
		uc := NewGiftUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Gift{}, nil)

		_, err := uc.Update(context.Background(), "ghost", GiftPatch{})
		if !errors.Is(err, ErrGiftNotFound) {
			t.Fatalf("expected ErrGiftNotFound, got %v", err)
		}
	})
}

func TestGiftUseCase_Delete(t *testing.T) {
	t.Run("maps repository not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGiftRepository(ctrl)
		uc := NewGiftUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), "ghost").Return(interfaces.ErrGiftNotFound)

		if err := uc.Delete(context.Background(), "ghost"); !errors.Is(err, ErrGiftNotFound) {
			t.Fatalf("expected ErrGiftNotFound, got %v", err)
		}
	})
}
