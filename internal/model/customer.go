package model

import "time"

// CustomerInfo is the ephemeral record returned by the collector tool. It is
// never persisted on its own; orders carry the customer identifier instead.
type CustomerInfo struct {
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	SessionID string    `json:"session_id"`
}

type CollectCustomerInfoResult struct {
	Status       Status       `json:"status"`
	CustomerInfo CustomerInfo `json:"customer_info"`
	Message      string       `json:"message"`
}
