package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"casamento_pe/internal/domain/entities"
	"casamento_pe/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrGiftNotFound    = errors.New("gift not found")
	ErrInvalidGiftID   = errors.New("invalid gift id")
	ErrInvalidGiftData = errors.New("invalid gift data")
)

// GiftInput carries catalog management fields. Pointer fields on GiftPatch
// distinguish "not sent" from zero values.

type GiftInput struct {
	Name        string
	Description string
	Price       float64
	ImageURL    string
	Category    entities.Category
}

type GiftPatch struct {
	Name        *string
	Description *string
	Price       *float64
	ImageURL    *string
	Category    *entities.Category
	IsAvailable *bool
}

// IGiftUseCase exposes catalog operations: guest-facing listing and the
// admin CRUD surface.

type IGiftUseCase interface {
	List(ctx context.Context, category entities.Category, onlyAvailable bool) ([]entities.Gift, error)
	GetByID(ctx context.Context, id string) (entities.Gift, error)
	Create(ctx context.Context, in GiftInput) (entities.Gift, error)
	Update(ctx context.Context, id string, patch GiftPatch) (entities.Gift, error)
	Delete(ctx context.Context, id string) error
}

type GiftUseCase struct {
	repo interfaces.IGiftRepository
}

var _ IGiftUseCase = (*GiftUseCase)(nil)

func NewGiftUseCase(repo interfaces.IGiftRepository) *GiftUseCase {
	return &GiftUseCase{repo: repo}
}

func (u *GiftUseCase) List(ctx context.Context, category entities.Category, onlyAvailable bool) ([]entities.Gift, error) {
	if category != "" && !entities.IsValidCategory(category) {
		return nil, ErrInvalidGiftData
	}
	return u.repo.List(ctx, interfaces.GiftFilter{Category: category, OnlyAvailable: onlyAvailable})
}

func (u *GiftUseCase) GetByID(ctx context.Context, id string) (entities.Gift, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Gift{}, ErrInvalidGiftID
	}

	g, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Gift{}, err
	}
	if g.ID == "" {
		return entities.Gift{}, ErrGiftNotFound
	}
	return g, nil
}

func (u *GiftUseCase) Create(ctx context.Context, in GiftInput) (entities.Gift, error) {
	if err := validateGiftInput(in); err != nil {
		return entities.Gift{}, err
	}

	now := time.Now().UTC()
	g := entities.Gift{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		Category:    in.Category,
		IsAvailable: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, g)
}

func (u *GiftUseCase) Update(ctx context.Context, id string, patch GiftPatch) (entities.Gift, error) {
	g, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Gift{}, err
	}

	if patch.Name != nil {
		g.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		g.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Price != nil {
		g.Price = *patch.Price
	}
	if patch.ImageURL != nil {
		g.ImageURL = *patch.ImageURL
	}
	if patch.Category != nil {
		g.Category = *patch.Category
	}
	if patch.IsAvailable != nil {
		g.IsAvailable = *patch.IsAvailable
	}

	if err := validateGiftInput(GiftInput{
		Name:        g.Name,
		Description: g.Description,
		Price:       g.Price,
		ImageURL:    g.ImageURL,
		Category:    g.Category,
	}); err != nil {
		return entities.Gift{}, err
	}

	g.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, g)
	if err != nil {
		if errors.Is(err, interfaces.ErrGiftNotFound) {
			return entities.Gift{}, ErrGiftNotFound
		}
		return entities.Gift{}, err
	}
	return updated, nil
}

func (u *GiftUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidGiftID
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, interfaces.ErrGiftNotFound) {
			return ErrGiftNotFound
		}
		return err
	}
	return nil
}

func validateGiftInput(in GiftInput) error {
	if len(strings.TrimSpace(in.Name)) < 2 {
		return ErrInvalidGiftData
	}
	if len(strings.TrimSpace(in.Description)) < 10 {
		return ErrInvalidGiftData
	}
	if in.Price <= 0 {
		return ErrInvalidGiftData
	}
	if !strings.HasPrefix(in.ImageURL, "http://") && !strings.HasPrefix(in.ImageURL, "https://") {
		return ErrInvalidGiftData
	}
	if !entities.IsValidCategory(in.Category) {
		return ErrInvalidGiftData
	}
	return nil
}
