package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"self-order-agent/internal/client"
	"self-order-agent/internal/model"
	"self-order-agent/internal/repository"
)

type fakeOrderRepo struct {
	inserted  []*model.Order
	insertErr error

	findOrder *model.Order
	findErr   error

	searchOrders     []model.Order
	searchErr        error
	searchIdentifier string
	searchLimit      int
	searchCalls      int
}

func (f *fakeOrderRepo) Insert(_ context.Context, order *model.Order) error {
	f.inserted = append(f.inserted, order)
	return f.insertErr
}

func (f *fakeOrderRepo) FindByID(_ context.Context, orderID string) (*model.Order, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOrder, nil
}

func (f *fakeOrderRepo) SearchByCustomer(_ context.Context, identifier string, limit int) ([]model.Order, error) {
	f.searchCalls++
	f.searchIdentifier = identifier
	f.searchLimit = limit
	return f.searchOrders, f.searchErr
}

func TestSaveOrderEmptyMappingGetsDefaults(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := NewOrderService(repo)

	res := svc.SaveOrder(context.Background(), map[string]any{})

	assert.Equal(t, model.StatusSuccess, res.Status)
	require.Len(t, repo.inserted, 1)

	order := repo.inserted[0]
	_, err := uuid.Parse(order.OrderID)
	assert.NoError(t, err)
	assert.Equal(t, res.OrderID, order.OrderID)
	assert.Equal(t, "Anonymous", order.CustomerName)
	assert.Equal(t, "", order.Items)
	assert.Equal(t, 0.0, order.TotalPrice)
	assert.Equal(t, model.OrderStatusPending, order.Status)
}

func TestSaveOrderKeepsSuppliedFields(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := NewOrderService(repo)

	res := svc.SaveOrder(context.Background(), map[string]any{
		"order_id":      "ord-1",
		"customer_name": "Ann",
		"items":         "2x Fried Rice",
		"total_price":   10.0,
		"status":        "pending",
	})

	assert.Equal(t, model.StatusSuccess, res.Status)
	assert.Equal(t, "ord-1", res.OrderID)
	require.Len(t, repo.inserted, 1)
	assert.Equal(t, "Ann", repo.inserted[0].CustomerName)
	assert.Equal(t, 10.0, repo.inserted[0].TotalPrice)
}

func TestSaveOrderTotalPriceCoercion(t *testing.T) {
	cases := []struct {
		name string
		raw  map[string]any
		want float64
	}{
		{"total_amount alias", map[string]any{"total_amount": 7.5}, 7.5},
		{"numeric string", map[string]any{"total_price": "12.25"}, 12.25},
		{"integer", map[string]any{"total_price": 3}, 3.0},
		{"garbage string", map[string]any{"total_price": "not a number"}, 0.0},
		{"alias loses to total_price", map[string]any{"total_price": 1.0, "total_amount": 9.0}, 1.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeOrderRepo{}
			svc := NewOrderService(repo)

			svc.SaveOrder(context.Background(), tc.raw)

			require.Len(t, repo.inserted, 1)
			assert.Equal(t, tc.want, repo.inserted[0].TotalPrice)
		})
	}
}

func TestSaveOrderInsertFailure(t *testing.T) {
	repo := &fakeOrderRepo{insertErr: errors.New("warehouse unreachable")}
	svc := NewOrderService(repo)

	res := svc.SaveOrder(context.Background(), map[string]any{})

	assert.Equal(t, model.StatusFailure, res.Status)
	assert.Contains(t, res.Error, "warehouse unreachable")
	assert.Empty(t, res.Errors)
}

func TestSaveOrderRowErrorsPassThrough(t *testing.T) {
	repo := &fakeOrderRepo{insertErr: &client.InsertError{
		Rows: []model.RowError{{Index: 0, Messages: []string{"no such field: foo"}}},
	}}
	svc := NewOrderService(repo)

	res := svc.SaveOrder(context.Background(), map[string]any{})

	assert.Equal(t, model.StatusFailure, res.Status)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, []string{"no such field: foo"}, res.Errors[0].Messages)
	assert.Empty(t, res.Error)
}

func TestSaveOrderForCustomerPrefersEmail(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := NewOrderService(repo)

	res := svc.SaveOrderForCustomer(context.Background(), "Ann", "ann@example.com", "1x Satay", 6.5)

	assert.Equal(t, model.StatusSuccess, res.Status)
	assert.Equal(t, "ann@example.com", res.Customer)
	assert.Contains(t, res.Message, "Ann")
	require.Len(t, repo.inserted, 1)
	assert.Equal(t, "ann@example.com", repo.inserted[0].CustomerName)
	assert.Equal(t, 6.5, repo.inserted[0].TotalPrice)
}

func TestSaveOrderForCustomerFallsBackToName(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := NewOrderService(repo)

	res := svc.SaveOrderForCustomer(context.Background(), "Ann", "", "1x Satay", 6.5)

	assert.Equal(t, "Ann", res.Customer)
}

func TestGetOrderPropagatesErrors(t *testing.T) {
	repo := &fakeOrderRepo{findErr: repository.ErrOrderNotFound}
	svc := NewOrderService(repo)

	_, err := svc.GetOrder(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestGetOrderHistoryNoIdentifier(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := NewOrderService(repo)

	res, err := svc.GetOrderHistory(context.Background(), "", "")
	require.NoError(t, err)

	assert.Empty(t, res.Orders)
	assert.Contains(t, res.Message, "name or email")
	assert.Zero(t, repo.searchCalls, "no warehouse call may be made without an identifier")
}

func TestGetOrderHistoryPrefersEmail(t *testing.T) {
	repo := &fakeOrderRepo{searchOrders: []model.Order{{OrderID: "o1"}}}
	svc := NewOrderService(repo)

	res, err := svc.GetOrderHistory(context.Background(), "Ann", "ann@example.com")
	require.NoError(t, err)

	assert.Equal(t, "ann@example.com", repo.searchIdentifier)
	assert.Equal(t, 10, repo.searchLimit)
	assert.Len(t, res.Orders, 1)
}

func TestGetOrderHistoryNoRows(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := NewOrderService(repo)

	res, err := svc.GetOrderHistory(context.Background(), "Nobody", "")
	require.NoError(t, err)

	assert.Empty(t, res.Orders)
	assert.Contains(t, res.Message, "Nobody")
}

func TestGetOrderHistoryError(t *testing.T) {
	repo := &fakeOrderRepo{searchErr: errors.New("query timeout")}
	svc := NewOrderService(repo)

	_, err := svc.GetOrderHistory(context.Background(), "Ann", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query timeout")
}
