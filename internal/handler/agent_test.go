package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"self-order-agent/agent"
	"self-order-agent/internal/model"
	"self-order-agent/internal/service"
)

type stubOrders struct{}

func (stubOrders) SaveOrder(_ context.Context, _ map[string]any) model.SaveOrderResult {
	return model.SaveOrderResult{Status: model.StatusSuccess, OrderID: "o1"}
}

func (stubOrders) SaveOrderForCustomer(_ context.Context, _, _, _ string, _ float64) model.SaveOrderResult {
	return model.SaveOrderResult{Status: model.StatusSuccess, OrderID: "o2"}
}

func (stubOrders) GetOrder(_ context.Context, _ string) (*model.Order, error) {
	return &model.Order{OrderID: "o1"}, nil
}

func (stubOrders) GetOrderHistory(_ context.Context, _, _ string) (model.OrderHistoryResult, error) {
	return model.OrderHistoryResult{}, nil
}

type stubCatalog struct{}

func (stubCatalog) GetMenu(_ context.Context) (model.MenuResult, error) {
	return model.MenuResult{Items: []model.MenuItem{{Name: "Iced Tea", Price: 1.5}}}, nil
}

func (stubCatalog) GetPromo(_ context.Context, _ string) (map[string]any, error) {
	return map[string]any{"promo_code": "WELCOME10"}, nil
}

func newTestHandler(t *testing.T) *AgentHandler {
	t.Helper()

	a, err := agent.New("gemini-2.5-flash", agent.Services{
		Orders:    stubOrders{},
		Catalog:   stubCatalog{},
		Payments:  service.NewPaymentService("https://pay.example.com", zerolog.Nop()),
		Customers: service.NewCustomerService(),
	})
	require.NoError(t, err)

	return NewAgentHandler(a, agent.NewLocalRuntime(a))
}

func TestGetAgentReturnsDescriptor(t *testing.T) {
	h := newTestHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/agent", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.GetAgent(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var d agent.Descriptor
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &d))
	assert.Equal(t, "root_agent", d.Name)
	assert.Len(t, d.Tools, 9)
}

func TestInvokeToolGetMenu(t *testing.T) {
	h := newTestHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/tools/get_menu", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("name")
	c.SetParamValues("get_menu")

	require.NoError(t, h.InvokeTool(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var res model.MenuResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Iced Tea", res.Items[0].Name)
}

func TestInvokeToolUnknownIs404(t *testing.T) {
	h := newTestHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/tools/nope", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("name")
	c.SetParamValues("nope")

	err := h.InvokeTool(c)
	require.Error(t, err)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestChatUsesLocalRuntime(t *testing.T) {
	h := newTestHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message":"hello"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Chat(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var res ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Contains(t, res.Response, "hello")
	assert.Contains(t, res.Response, "[mock:root_agent]")
}
