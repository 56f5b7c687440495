// Package qr renders payment URLs as QR code images and formats them for
// tool responses.
package qr

import (
	"encoding/base64"
	"errors"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// Rendered image edge length in pixels. Level L keeps the code small; the
// payload is a short URL, so stronger error correction buys nothing.
const imageSize = 256

var ErrEmptyData = errors.New("qr: empty data")

// GenerateImage encodes data into a PNG QR code.
func GenerateImage(data string) ([]byte, error) {
	if data == "" {
		return nil, ErrEmptyData
	}

	png, err := qrcode.Encode(data, qrcode.Low, imageSize)
	if err != nil {
		return nil, fmt.Errorf("qr encode: %w", err)
	}
	return png, nil
}

// PaymentResponse is the JSON-safe wrapper around a QRIS transaction and its
// QR image. When an artifact name is supplied the image is referenced by
// name; otherwise the PNG is inlined as base64.
type PaymentResponse struct {
	TransactionID string  `json:"transaction_id"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	PaymentURL    string  `json:"payment_url"`
	ArtifactName  string  `json:"artifact_name,omitempty"`
	QRCodeBase64  string  `json:"qr_code_base64,omitempty"`
	QRCodeDataURI string  `json:"qr_code_data_uri,omitempty"`
	Instructions  string  `json:"instructions"`
}

// NewPaymentResponse wraps transaction metadata and the rendered QR image.
func NewPaymentResponse(transactionID string, amount float64, currency, paymentURL string, png []byte, artifactName string) PaymentResponse {
	resp := PaymentResponse{
		TransactionID: transactionID,
		Amount:        amount,
		Currency:      currency,
		PaymentURL:    paymentURL,
		Instructions: fmt.Sprintf(
			"Scan the QR code with your payment app to pay %.2f %s. Transaction ID: %s.",
			amount, currency, transactionID,
		),
	}

	if artifactName != "" {
		resp.ArtifactName = artifactName
		return resp
	}

	encoded := base64.StdEncoding.EncodeToString(png)
	resp.QRCodeBase64 = encoded
	resp.QRCodeDataURI = "data:image/png;base64," + encoded
	return resp
}
