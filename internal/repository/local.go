package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"self-order-agent/internal/model"
)

// Local sqlite-backed implementations of the repository interfaces, used
// when no BigQuery project is configured.

type localOrderRepoImpl struct {
	db *gorm.DB
}

func NewLocalOrderRepository(db *gorm.DB) OrderRepository {
	return &localOrderRepoImpl{db: db}
}

func (r *localOrderRepoImpl) Insert(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *localOrderRepoImpl) FindByID(ctx context.Context, orderID string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		First(&order).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *localOrderRepoImpl) SearchByCustomer(ctx context.Context, identifier string, limit int) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Where("LOWER(customer_name) LIKE ?", "%"+strings.ToLower(identifier)+"%").
		Order("order_id DESC").
		Limit(limit).
		Find(&orders).Error

	if err != nil {
		return nil, err
	}
	return orders, nil
}

type localCatalogRepoImpl struct {
	db *gorm.DB
}

func NewLocalCatalogRepository(db *gorm.DB) CatalogRepository {
	return &localCatalogRepoImpl{db: db}
}

func (r *localCatalogRepoImpl) ListMenu(ctx context.Context) ([]model.MenuItem, error) {
	var items []model.MenuItem
	err := r.db.WithContext(ctx).
		Order("name").
		Find(&items).Error

	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *localCatalogRepoImpl) FindPromo(ctx context.Context, promoCode string) (map[string]any, error) {
	row := map[string]any{}
	err := r.db.WithContext(ctx).
		Model(&model.Promo{}).
		Where("promo_code = ?", promoCode).
		Take(&row).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPromoNotFound
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}
