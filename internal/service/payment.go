package service

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"self-order-agent/internal/model"
	"self-order-agent/internal/qr"
)

type PaymentService interface {
	// ProcessPayment simulates a payment attempt. Card and PayPal payments
	// resolve to a terminal status in one call; QRIS returns PENDING along
	// with a QR code for the synthetic payment URL. Declines are modeled in
	// the result; the error return is reserved for QR rendering failures.
	ProcessPayment(ctx context.Context, amount float64, currency, paymentMethod string, details *model.PaymentDetails) (model.PaymentResult, error)

	// ConfirmPayment reports SUCCESS for any transaction id. No gateway is
	// consulted; ids never issued by ProcessPayment are logged as suspect
	// but still confirmed, matching the simulator's trust-the-caller
	// contract.
	ConfirmPayment(ctx context.Context, transactionID, paymentMethod string) model.ConfirmPaymentResult
}

type paymentServiceImpl struct {
	baseURL string
	logger  zerolog.Logger

	mu     sync.Mutex
	issued map[string]string // transaction id -> payment method
}

func NewPaymentService(baseURL string, logger zerolog.Logger) PaymentService {
	return &paymentServiceImpl{
		baseURL: baseURL,
		logger:  logger,
		issued:  make(map[string]string),
	}
}

func (s *paymentServiceImpl) ProcessPayment(ctx context.Context, amount float64, currency, paymentMethod string, details *model.PaymentDetails) (model.PaymentResult, error) {
	switch paymentMethod {
	case model.PaymentMethodQRIS:
		return s.processQRIS(amount, currency, details)
	case model.PaymentMethodCreditCard:
		return s.processCreditCard(amount, currency, details), nil
	case model.PaymentMethodPayPal:
		txnID := s.newTransactionID(paymentMethod)
		return model.PaymentResult{
			TransactionID: txnID,
			Status:        model.StatusSuccess,
			Amount:        amount,
			Currency:      currency,
			PaymentMethod: paymentMethod,
			Message:       "Payment processed successfully via PayPal.",
		}, nil
	default:
		return model.PaymentResult{
			Status:        model.StatusFailure,
			Amount:        amount,
			Currency:      currency,
			PaymentMethod: paymentMethod,
			Message:       fmt.Sprintf("unsupported payment method: %s", paymentMethod),
		}, nil
	}
}

func (s *paymentServiceImpl) processQRIS(amount float64, currency string, details *model.PaymentDetails) (model.PaymentResult, error) {
	txnID := s.newTransactionID(model.PaymentMethodQRIS)

	q := url.Values{}
	q.Set("transaction_id", txnID)
	q.Set("amount", decimal.NewFromFloat(amount).StringFixed(2))
	q.Set("currency", currency)
	paymentURL := s.baseURL + "/qris?" + q.Encode()

	png, err := qr.GenerateImage(paymentURL)
	if err != nil {
		return model.PaymentResult{}, fmt.Errorf("generate qris code: %w", err)
	}

	var artifactName string
	if details != nil {
		artifactName = details.ArtifactName
	}
	resp := qr.NewPaymentResponse(txnID, amount, currency, paymentURL, png, artifactName)

	return model.PaymentResult{
		TransactionID: txnID,
		Status:        model.StatusPending,
		Amount:        amount,
		Currency:      currency,
		PaymentMethod: model.PaymentMethodQRIS,
		Message:       "QRIS payment created. Waiting for the customer to scan the code.",
		PaymentURL:    paymentURL,
		QRCodeBase64:  resp.QRCodeBase64,
		QRCodeDataURI: resp.QRCodeDataURI,
		ArtifactName:  resp.ArtifactName,
		Instructions:  resp.Instructions,
	}, nil
}

func (s *paymentServiceImpl) processCreditCard(amount float64, currency string, details *model.PaymentDetails) model.PaymentResult {
	failure := func(message string, txnID string) model.PaymentResult {
		return model.PaymentResult{
			TransactionID: txnID,
			Status:        model.StatusFailure,
			Amount:        amount,
			Currency:      currency,
			PaymentMethod: model.PaymentMethodCreditCard,
			Message:       message,
		}
	}

	if details == nil || details.CardNumber == "" {
		return failure("invalid card number: card_number is required", "")
	}

	number := details.CardNumber
	if len(number) != 16 || !allDigits(number) {
		return failure("invalid card number: must be exactly 16 digits", "")
	}

	// Simulation rule: cards ending in 0000 are declined for insufficient
	// funds, after a transaction id has been issued.
	if number[len(number)-4:] == "0000" {
		return failure("insufficient funds", s.newTransactionID(model.PaymentMethodCreditCard))
	}

	return model.PaymentResult{
		TransactionID:    s.newTransactionID(model.PaymentMethodCreditCard),
		Status:           model.StatusSuccess,
		Amount:           amount,
		Currency:         currency,
		PaymentMethod:    model.PaymentMethodCreditCard,
		Message:          "Payment processed successfully.",
		MaskedCardNumber: "**** **** **** " + number[len(number)-4:],
	}
}

func (s *paymentServiceImpl) ConfirmPayment(ctx context.Context, transactionID, paymentMethod string) model.ConfirmPaymentResult {
	s.mu.Lock()
	_, known := s.issued[transactionID]
	s.mu.Unlock()

	if !known {
		s.logger.Warn().
			Str("transaction_id", transactionID).
			Str("payment_method", paymentMethod).
			Msg("confirming a transaction id this process never issued")
	}

	return model.ConfirmPaymentResult{
		TransactionID: transactionID,
		PaymentMethod: paymentMethod,
		Status:        model.StatusSuccess,
		Message:       fmt.Sprintf("Payment %s confirmed.", transactionID),
	}
}

func (s *paymentServiceImpl) newTransactionID(method string) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.issued[id] = method
	s.mu.Unlock()
	return id
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
