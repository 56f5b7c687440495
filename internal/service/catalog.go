package service

import (
	"context"
	"fmt"

	"self-order-agent/internal/model"
	"self-order-agent/internal/repository"
)

type CatalogService interface {
	// GetMenu lists the full menu ordered by name. An empty menu is a
	// message result, not an error.
	GetMenu(ctx context.Context) (model.MenuResult, error)

	// GetPromo looks up a promo by exact code. Returns
	// repository.ErrPromoNotFound when absent; warehouse errors propagate.
	GetPromo(ctx context.Context, promoCode string) (map[string]any, error)
}

type catalogServiceImpl struct {
	catalogRepo repository.CatalogRepository
}

func NewCatalogService(catalogRepo repository.CatalogRepository) CatalogService {
	return &catalogServiceImpl{
		catalogRepo: catalogRepo,
	}
}

func (s *catalogServiceImpl) GetMenu(ctx context.Context) (model.MenuResult, error) {
	items, err := s.catalogRepo.ListMenu(ctx)
	if err != nil {
		return model.MenuResult{}, fmt.Errorf("retrieve menu: %w", err)
	}

	if len(items) == 0 {
		return model.MenuResult{
			Message: "No menu items found. Menu may be empty.",
		}, nil
	}

	return model.MenuResult{Items: items}, nil
}

func (s *catalogServiceImpl) GetPromo(ctx context.Context, promoCode string) (map[string]any, error) {
	return s.catalogRepo.FindPromo(ctx, promoCode)
}
