// Package agent exposes the self-order assistant descriptor and its tool
// registry for host runtimes to drive.
package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"self-order-agent/internal/model"
	"self-order-agent/internal/repository"
	"self-order-agent/internal/service"
)

const (
	// Name identifies the root agent to host runtimes.
	Name = "root_agent"

	description = "A helpful assistant for self-ordering food."

	instruction = "You are a helpful assistant for ordering food. You can help customers " +
		"browse the menu, apply promotions, process payments, and place orders. " +
		"IMPORTANT: Always greet customers warmly and ask for their name at the beginning " +
		"of the conversation. You can also collect their email or phone number for order " +
		"tracking and future promotions. Use this information to personalize their experience. " +
		"If they're a returning customer, you can look up their order history using " +
		"get_customer_order_history. When placing orders, use save_order_for_customer " +
		"to associate the order with their information. Payments support QRIS (show the " +
		"customer the QR code and confirm with confirm_payment after they scan it), " +
		"credit card, and PayPal. Be conversational and natural - collect customer " +
		"information through friendly dialogue rather than formal forms."
)

// Services are the tool implementations the agent binds to.
type Services struct {
	Orders    service.OrderService
	Catalog   service.CatalogService
	Payments  service.PaymentService
	Customers service.CustomerService
}

// Agent is the declarative descriptor consumed by the host runtime: a name,
// a model identifier, instruction text and the registry of callable tools.
type Agent struct {
	Name        string
	Model       string
	Description string
	Instruction string

	registry *Registry
}

// Descriptor is the JSON-safe view of an agent, with tool handlers elided.
type Descriptor struct {
	Name        string `json:"name"`
	Model       string `json:"model"`
	Description string `json:"description"`
	Instruction string `json:"instruction"`
	Tools       []Tool `json:"tools"`
}

// New builds the root agent and registers its tools. Registration failures
// indicate a programming error in the tool definitions and abort startup.
func New(modelID string, svcs Services) (*Agent, error) {
	reg := NewRegistry()

	for _, t := range toolDefinitions(svcs) {
		if err := reg.Register(t); err != nil {
			return nil, fmt.Errorf("build agent: %w", err)
		}
	}

	return &Agent{
		Name:        Name,
		Model:       modelID,
		Description: description,
		Instruction: instruction,
		registry:    reg,
	}, nil
}

func (a *Agent) Registry() *Registry {
	return a.registry
}

func (a *Agent) Descriptor() Descriptor {
	return Descriptor{
		Name:        a.Name,
		Model:       a.Model,
		Description: a.Description,
		Instruction: a.Instruction,
		Tools:       a.registry.Tools(),
	}
}

func toolDefinitions(svcs Services) []Tool {
	return []Tool{
		{
			Name:        "save_order",
			Description: "Save an order. Missing fields are defaulted: order_id is generated, customer_name becomes Anonymous, status becomes pending.",
			Parameters: objectSchema(map[string]any{
				"order": map[string]any{
					"type":        "object",
					"description": "Order fields: order_id, customer_name, items, total_price, status.",
				},
			}, "order"),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var in struct {
					Order map[string]any `json:"order"`
				}
				if err := decodeArgs(args, &in); err != nil {
					return nil, err
				}
				if in.Order == nil {
					in.Order = map[string]any{}
				}
				return svcs.Orders.SaveOrder(ctx, in.Order), nil
			},
		},
		{
			Name:        "save_order_for_customer",
			Description: "Save an order associated with the customer collected during the conversation. Email is preferred over name as the stored identifier.",
			Parameters: objectSchema(map[string]any{
				"customer_name":  stringProp("Customer name."),
				"customer_email": stringProp("Customer email, used as the identifier when present."),
				"items":          stringProp("Free-form description of the ordered items."),
				"total_price":    numberProp("Order total."),
			}, "customer_name"),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var in struct {
					CustomerName  string  `json:"customer_name"`
					CustomerEmail string  `json:"customer_email"`
					Items         string  `json:"items"`
					TotalPrice    float64 `json:"total_price"`
				}
				if err := decodeArgs(args, &in); err != nil {
					return nil, err
				}
				return svcs.Orders.SaveOrderForCustomer(ctx, in.CustomerName, in.CustomerEmail, in.Items, in.TotalPrice), nil
			},
		},
		{
			Name:        "get_order",
			Description: "Look up a single order by its exact order_id.",
			Parameters: objectSchema(map[string]any{
				"order_id": stringProp("The order id to look up."),
			}, "order_id"),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var in struct {
					OrderID string `json:"order_id"`
				}
				if err := decodeArgs(args, &in); err != nil {
					return nil, err
				}
				order, err := svcs.Orders.GetOrder(ctx, in.OrderID)
				if errors.Is(err, repository.ErrOrderNotFound) {
					return map[string]any{}, nil
				}
				if err != nil {
					return nil, err
				}
				return order, nil
			},
		},
		{
			Name:        "get_customer_order_history",
			Description: "Get a customer's ten most recent orders by name or email (case-insensitive substring match).",
			Parameters: objectSchema(map[string]any{
				"customer_name":  stringProp("Customer name to search for."),
				"customer_email": stringProp("Customer email to search for; preferred over name."),
			}),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var in struct {
					CustomerName  string `json:"customer_name"`
					CustomerEmail string `json:"customer_email"`
				}
				if err := decodeArgs(args, &in); err != nil {
					return nil, err
				}
				history, err := svcs.Orders.GetOrderHistory(ctx, in.CustomerName, in.CustomerEmail)
				if err != nil {
					return map[string]any{"error": err.Error()}, nil
				}
				return history, nil
			},
		},
		{
			Name:        "get_menu",
			Description: "List the full menu with prices, ordered by item name.",
			Parameters:  objectSchema(map[string]any{}),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				menu, err := svcs.Catalog.GetMenu(ctx)
				if err != nil {
					return map[string]any{"error": err.Error()}, nil
				}
				return menu, nil
			},
		},
		{
			Name:        "get_promo",
			Description: "Look up a promotion by its exact promo code.",
			Parameters: objectSchema(map[string]any{
				"promo_code": stringProp("The promo code to look up."),
			}, "promo_code"),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var in struct {
					PromoCode string `json:"promo_code"`
				}
				if err := decodeArgs(args, &in); err != nil {
					return nil, err
				}
				promo, err := svcs.Catalog.GetPromo(ctx, in.PromoCode)
				if errors.Is(err, repository.ErrPromoNotFound) {
					return map[string]any{}, nil
				}
				if err != nil {
					return nil, err
				}
				return promo, nil
			},
		},
		{
			Name:        "process_payment",
			Description: "Process a simulated payment. Methods: qris (returns a QR code to scan, status PENDING), credit_card (requires payment_details.card_number), paypal.",
			Parameters: objectSchema(map[string]any{
				"amount":         numberProp("Payment amount."),
				"currency":       stringProp("ISO currency code, e.g. USD or IDR."),
				"payment_method": stringProp("One of: qris, credit_card, paypal."),
				"payment_details": map[string]any{
					"type":        "object",
					"description": "Method-specific details, e.g. card_number for credit_card.",
				},
			}, "amount", "payment_method"),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var in struct {
					Amount         float64               `json:"amount"`
					Currency       string                `json:"currency"`
					PaymentMethod  string                `json:"payment_method"`
					PaymentDetails *model.PaymentDetails `json:"payment_details"`
				}
				if err := decodeArgs(args, &in); err != nil {
					return nil, err
				}
				if in.Currency == "" {
					in.Currency = "USD"
				}
				return svcs.Payments.ProcessPayment(ctx, in.Amount, in.Currency, in.PaymentMethod, in.PaymentDetails)
			},
		},
		{
			Name:        "confirm_payment",
			Description: "Confirm a previously created payment by transaction id. Use after the customer reports scanning a QRIS code.",
			Parameters: objectSchema(map[string]any{
				"transaction_id": stringProp("Transaction id returned by process_payment."),
				"payment_method": stringProp("Payment method of the original transaction."),
			}, "transaction_id"),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var in struct {
					TransactionID string `json:"transaction_id"`
					PaymentMethod string `json:"payment_method"`
				}
				if err := decodeArgs(args, &in); err != nil {
					return nil, err
				}
				return svcs.Payments.ConfirmPayment(ctx, in.TransactionID, in.PaymentMethod), nil
			},
		},
		{
			Name:        "collect_customer_info",
			Description: "Collect the customer's name, email and/or phone during conversation. Returns a session id; nothing is persisted.",
			Parameters: objectSchema(map[string]any{
				"name":  stringProp("Customer name."),
				"email": stringProp("Customer email."),
				"phone": stringProp("Customer phone number."),
			}),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var in struct {
					Name  string `json:"name"`
					Email string `json:"email"`
					Phone string `json:"phone"`
				}
				if err := decodeArgs(args, &in); err != nil {
					return nil, err
				}
				return svcs.Customers.CollectCustomerInfo(in.Name, in.Email, in.Phone), nil
			},
		},
	}
}

func decodeArgs(args json.RawMessage, dst any) error {
	if len(args) == 0 {
		return nil
	}
	if err := json.Unmarshal(args, dst); err != nil {
		return fmt.Errorf("decode tool arguments: %w", err)
	}
	return nil
}

func objectSchema(props map[string]any, required ...string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func stringProp(desc string) map[string]any {
	return map[string]any{"type": "string", "description": desc}
}

func numberProp(desc string) map[string]any {
	return map[string]any{"type": "number", "description": desc}
}
