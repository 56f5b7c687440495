package model

// Status values shared by order and payment results. The agent runtime
// inspects the status field of every tool result, so the spelling is part
// of the tool contract.
type Status string

const (
	StatusSuccess Status = "SUCCESS"
	StatusFailure Status = "FAILURE"
	StatusPending Status = "PENDING"
)

// OrderStatusPending is the initial lifecycle state of a stored order.
// Orders are never updated or deleted by this service.
const OrderStatusPending = "pending"

// Order mirrors one row of the warehouse orders table. The same struct is
// stored through gorm when the local warehouse is active and through the
// BigQuery inserter otherwise.
type Order struct {
	OrderID      string  `json:"order_id" gorm:"primaryKey;column:order_id" bigquery:"order_id"`
	CustomerName string  `json:"customer_name" gorm:"column:customer_name" bigquery:"customer_name"`
	Items        string  `json:"items" gorm:"column:items" bigquery:"items"`
	TotalPrice   float64 `json:"total_price" gorm:"column:total_price" bigquery:"total_price"`
	Status       string  `json:"status" gorm:"column:status" bigquery:"status"`
}

// RowError is one entry of the warehouse per-row insert error list.
type RowError struct {
	Index    int      `json:"index"`
	Messages []string `json:"messages"`
}

// SaveOrderResult is the tool-facing outcome of an order insert. Exactly one
// of Errors/Error is populated on failure; OrderID is set on success.
type SaveOrderResult struct {
	Status   Status     `json:"status"`
	OrderID  string     `json:"order_id,omitempty"`
	Customer string     `json:"customer,omitempty"`
	Message  string     `json:"message,omitempty"`
	Errors   []RowError `json:"errors,omitempty"`
	Error    string     `json:"error,omitempty"`
}

// OrderHistoryResult distinguishes "no rows" from "no identifier supplied"
// explicitly instead of overloading a single-element list.
type OrderHistoryResult struct {
	Orders  []Order `json:"orders,omitempty"`
	Message string  `json:"message,omitempty"`
}
