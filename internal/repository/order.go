package repository

import (
	"context"
	"errors"
	"fmt"

	"self-order-agent/internal/client"
	"self-order-agent/internal/model"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrPromoNotFound = errors.New("promo not found")
)

type OrderRepository interface {
	Insert(ctx context.Context, order *model.Order) error
	FindByID(ctx context.Context, orderID string) (*model.Order, error)

	// SearchByCustomer matches the identifier as a case-insensitive
	// substring of customer_name, newest orders first.
	SearchByCustomer(ctx context.Context, identifier string, limit int) ([]model.Order, error)
}

type orderRepoImpl struct {
	warehouse client.Warehouse
	table     string
}

func NewOrderRepository(warehouse client.Warehouse, table string) OrderRepository {
	return &orderRepoImpl{
		warehouse: warehouse,
		table:     table,
	}
}

func (r *orderRepoImpl) Insert(ctx context.Context, order *model.Order) error {
	return r.warehouse.Insert(ctx, r.table, []*model.Order{order})
}

func (r *orderRepoImpl) FindByID(ctx context.Context, orderID string) (*model.Order, error) {
	query := fmt.Sprintf(`
		SELECT order_id, customer_name, items, total_price, status
		FROM %s
		WHERE order_id = @order_id
	`, r.warehouse.TableID(r.table))

	rows, err := r.warehouse.Query(ctx, query, []client.QueryParam{
		{Name: "order_id", Value: orderID},
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrOrderNotFound
	}

	order := orderFromRow(rows[0])
	return &order, nil
}

func (r *orderRepoImpl) SearchByCustomer(ctx context.Context, identifier string, limit int) ([]model.Order, error) {
	query := fmt.Sprintf(`
		SELECT order_id, customer_name, items, total_price, status
		FROM %s
		WHERE LOWER(customer_name) LIKE LOWER(@identifier)
		ORDER BY order_id DESC
		LIMIT %d
	`, r.warehouse.TableID(r.table), limit)

	rows, err := r.warehouse.Query(ctx, query, []client.QueryParam{
		{Name: "identifier", Value: "%" + identifier + "%"},
	})
	if err != nil {
		return nil, err
	}

	orders := make([]model.Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, orderFromRow(row))
	}
	return orders, nil
}

func orderFromRow(row map[string]any) model.Order {
	return model.Order{
		OrderID:      asString(row["order_id"]),
		CustomerName: asString(row["customer_name"]),
		Items:        asString(row["items"]),
		TotalPrice:   asFloat(row["total_price"]),
		Status:       asString(row["status"]),
	}
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int64:
		return float64(n)
	case int:
		return float64(n)
	default:
		return 0
	}
}
