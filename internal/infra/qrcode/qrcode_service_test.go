package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReceiptService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewReceiptService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestReceiptService_GenerateOrderReceiptQR(t *testing.T) {
	service := NewReceiptService(256, "M")

	qrBytes, err := service.GenerateOrderReceiptQR("order-123", 2048)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestReceiptService_GenerateOrderReceiptQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewReceiptService(tt.size, "M")

			qrBytes, err := service.GenerateOrderReceiptQR("order-123", 59900)
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestReceiptService_ParseOrderReceiptQR(t *testing.T) {
	service := NewReceiptService(256, "M")

	data := ReceiptData{
		OrderID:    "order-123",
		TotalCents: 2048,
		Type:       "receipt",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsedID, err := service.ParseOrderReceiptQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, "order-123", parsedID)
}

func TestReceiptService_ParseOrderReceiptQR_InvalidJSON(t *testing.T) {
	service := NewReceiptService(256, "M")

	_, err := service.ParseOrderReceiptQR("invalid json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal QR code data")
}

func TestReceiptService_ParseOrderReceiptQR_InvalidType(t *testing.T) {
	service := NewReceiptService(256, "M")

	data := ReceiptData{
		OrderID:    "order-123",
		TotalCents: 2048,
		Type:       "invalid_type",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParseOrderReceiptQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid QR code type")
}

func TestReceiptService_ParseOrderReceiptQR_MissingOrderID(t *testing.T) {
	service := NewReceiptService(256, "M")

	data := ReceiptData{
		TotalCents: 2048,
		Type:       "receipt",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParseOrderReceiptQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing order ID")
}
