package repository

import (
	"context"
	"fmt"

	"self-order-agent/internal/client"
	"self-order-agent/internal/model"
)

type CatalogRepository interface {
	ListMenu(ctx context.Context) ([]model.MenuItem, error)

	// FindPromo returns the promo row as an opaque column mapping so extra
	// warehouse columns pass through untouched.
	FindPromo(ctx context.Context, promoCode string) (map[string]any, error)
}

type catalogRepoImpl struct {
	warehouse   client.Warehouse
	menuTable   string
	promosTable string
}

func NewCatalogRepository(warehouse client.Warehouse, menuTable, promosTable string) CatalogRepository {
	return &catalogRepoImpl{
		warehouse:   warehouse,
		menuTable:   menuTable,
		promosTable: promosTable,
	}
}

func (r *catalogRepoImpl) ListMenu(ctx context.Context) ([]model.MenuItem, error) {
	query := fmt.Sprintf(`
		SELECT name, CAST(price AS FLOAT64) AS price
		FROM %s
		ORDER BY name
	`, r.warehouse.TableID(r.menuTable))

	rows, err := r.warehouse.Query(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	items := make([]model.MenuItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, model.MenuItem{
			Name:  asString(row["name"]),
			Price: asFloat(row["price"]),
		})
	}
	return items, nil
}

func (r *catalogRepoImpl) FindPromo(ctx context.Context, promoCode string) (map[string]any, error) {
	query := fmt.Sprintf(`
		SELECT *
		FROM %s
		WHERE promo_code = @promo_code
	`, r.warehouse.TableID(r.promosTable))

	rows, err := r.warehouse.Query(ctx, query, []client.QueryParam{
		{Name: "promo_code", Value: promoCode},
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrPromoNotFound
	}
	return rows[0], nil
}
