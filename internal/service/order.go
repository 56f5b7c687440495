package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"self-order-agent/internal/client"
	"self-order-agent/internal/model"
	"self-order-agent/internal/repository"
)

const historyLimit = 10

type OrderService interface {
	// SaveOrder inserts a loosely-typed order mapping, filling defaults for
	// any missing field. Insert failures are reported in the result, never
	// as an error, so the agent always gets a structured outcome.
	SaveOrder(ctx context.Context, order map[string]any) model.SaveOrderResult

	// SaveOrderForCustomer stores an order keyed by the customer's email
	// when available, otherwise their name.
	SaveOrderForCustomer(ctx context.Context, customerName, customerEmail, items string, totalPrice float64) model.SaveOrderResult

	// GetOrder is a point lookup. Returns repository.ErrOrderNotFound when
	// the id is unknown; warehouse errors propagate to the caller.
	GetOrder(ctx context.Context, orderID string) (*model.Order, error)

	// GetOrderHistory returns up to ten most recent orders matching the
	// customer identifier. Email is preferred over name. With neither, a
	// message result is returned without touching the warehouse.
	GetOrderHistory(ctx context.Context, customerName, customerEmail string) (model.OrderHistoryResult, error)
}

type orderServiceImpl struct {
	orderRepo repository.OrderRepository
}

func NewOrderService(orderRepo repository.OrderRepository) OrderService {
	return &orderServiceImpl{
		orderRepo: orderRepo,
	}
}

func (s *orderServiceImpl) SaveOrder(ctx context.Context, raw map[string]any) model.SaveOrderResult {
	order := &model.Order{
		OrderID:      stringField(raw, "order_id", uuid.NewString()),
		CustomerName: stringField(raw, "customer_name", "Anonymous"),
		Items:        stringField(raw, "items", ""),
		TotalPrice:   totalPriceField(raw),
		Status:       stringField(raw, "status", model.OrderStatusPending),
	}

	if err := s.orderRepo.Insert(ctx, order); err != nil {
		return insertFailure(err)
	}

	return model.SaveOrderResult{
		Status:  model.StatusSuccess,
		OrderID: order.OrderID,
	}
}

func (s *orderServiceImpl) SaveOrderForCustomer(ctx context.Context, customerName, customerEmail, items string, totalPrice float64) model.SaveOrderResult {
	identifier := customerEmail
	if identifier == "" {
		identifier = customerName
	}

	order := &model.Order{
		OrderID:      uuid.NewString(),
		CustomerName: identifier,
		Items:        items,
		TotalPrice:   totalPrice,
		Status:       model.OrderStatusPending,
	}

	if err := s.orderRepo.Insert(ctx, order); err != nil {
		return insertFailure(err)
	}

	return model.SaveOrderResult{
		Status:   model.StatusSuccess,
		OrderID:  order.OrderID,
		Customer: identifier,
		Message:  fmt.Sprintf("Order saved successfully for %s!", customerName),
	}
}

func (s *orderServiceImpl) GetOrder(ctx context.Context, orderID string) (*model.Order, error) {
	return s.orderRepo.FindByID(ctx, orderID)
}

func (s *orderServiceImpl) GetOrderHistory(ctx context.Context, customerName, customerEmail string) (model.OrderHistoryResult, error) {
	identifier := customerEmail
	if identifier == "" {
		identifier = customerName
	}
	if identifier == "" {
		return model.OrderHistoryResult{
			Message: "Please provide either customer name or email to retrieve order history",
		}, nil
	}

	orders, err := s.orderRepo.SearchByCustomer(ctx, identifier, historyLimit)
	if err != nil {
		return model.OrderHistoryResult{}, fmt.Errorf("retrieve order history: %w", err)
	}

	if len(orders) == 0 {
		return model.OrderHistoryResult{
			Message: fmt.Sprintf("No previous orders found for %s", identifier),
		}, nil
	}

	return model.OrderHistoryResult{Orders: orders}, nil
}

// stringField returns the mapping value when it is a non-absent string,
// otherwise the default. Present-but-empty strings are kept as-is.
func stringField(raw map[string]any, key, fallback string) string {
	v, ok := raw[key]
	if !ok {
		return fallback
	}
	s, ok := v.(string)
	if !ok {
		return fallback
	}
	return s
}

// totalPriceField coerces total_price (with total_amount as a legacy alias)
// to a float, tolerating JSON numbers and numeric strings.
func totalPriceField(raw map[string]any) float64 {
	for _, key := range []string{"total_price", "total_amount"} {
		v, ok := raw[key]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		case string:
			if f, err := strconv.ParseFloat(n, 64); err == nil {
				return f
			}
		}
	}
	return 0.0
}

func insertFailure(err error) model.SaveOrderResult {
	var ie *client.InsertError
	if errors.As(err, &ie) {
		return model.SaveOrderResult{
			Status: model.StatusFailure,
			Errors: ie.Rows,
		}
	}
	return model.SaveOrderResult{
		Status: model.StatusFailure,
		Error:  err.Error(),
	}
}
