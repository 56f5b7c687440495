package model

// Payment methods accepted by the simulator.
const (
	PaymentMethodQRIS       = "qris"
	PaymentMethodCreditCard = "credit_card"
	PaymentMethodPayPal     = "paypal"
)

// PaymentDetails carries method-specific arguments supplied by the caller.
// Only the credit card path reads it today.
type PaymentDetails struct {
	CardNumber string `json:"card_number,omitempty"`
	CardHolder string `json:"card_holder,omitempty"`

	// ArtifactName is the optional handle supplied by the host runtime when
	// it wants the QR image attached as a named artifact instead of inlined.
	ArtifactName string `json:"artifact_name,omitempty"`
}

// PaymentResult is the tool-facing outcome of a payment attempt. QRIS
// payments resolve to PENDING with the QR artifact fields set; card and
// PayPal payments resolve directly to a terminal status.
type PaymentResult struct {
	TransactionID    string  `json:"transaction_id,omitempty"`
	Status           Status  `json:"status"`
	Amount           float64 `json:"amount"`
	Currency         string  `json:"currency"`
	PaymentMethod    string  `json:"payment_method"`
	Message          string  `json:"message,omitempty"`
	MaskedCardNumber string  `json:"masked_card_number,omitempty"`

	// QRIS-only fields.
	PaymentURL    string `json:"payment_url,omitempty"`
	QRCodeBase64  string `json:"qr_code_base64,omitempty"`
	QRCodeDataURI string `json:"qr_code_data_uri,omitempty"`
	ArtifactName  string `json:"artifact_name,omitempty"`
	Instructions  string `json:"instructions,omitempty"`
}

// ConfirmPaymentResult echoes the supplied transaction id back to the agent.
type ConfirmPaymentResult struct {
	TransactionID string `json:"transaction_id"`
	PaymentMethod string `json:"payment_method"`
	Status        Status `json:"status"`
	Message       string `json:"message"`
}
