package qrcode

import (
	"encoding/json"
	"fmt"

	"afyalink/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type receiptService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// ReceiptData represents the QR code data structure
type ReceiptData struct {
	OrderID    string `json:"order_id"`
	TotalCents int64  `json:"total_cents"`
	Type       string `json:"type"`
}

// NewReceiptService creates a new receipt QR service instance
func NewReceiptService(size int, errorCorrectionLevel string) service.ReceiptService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &receiptService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateOrderReceiptQR generates a QR code for an order receipt
func (s *receiptService) GenerateOrderReceiptQR(orderID string, totalCents int64) ([]byte, error) {
	// Create QR code data
	data := ReceiptData{
		OrderID:    orderID,
		TotalCents: totalCents,
		Type:       "receipt",
	}

	// Convert to JSON
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	// Generate QR code
	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseOrderReceiptQR parses QR code data and returns the order ID
func (s *receiptService) ParseOrderReceiptQR(qrData string) (string, error) {
	var data ReceiptData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != "receipt" {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.OrderID == "" {
		return "", fmt.Errorf("missing order ID in QR code data")
	}

	return data.OrderID, nil
}
