package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
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
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "https://standmatch.example")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateProfileQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://standmatch.example")

	qrBytes, err := service.GenerateProfileQR("smart-expo-solutions")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateProfileQR_DifferentSizes(t *testing.T) {
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
			service := NewQRCodeService(tt.size, "M", "https://standmatch.example")

			qrBytes, err := service.GenerateProfileQR("berlin-design-studios")
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_GenerateProfileQR_EmptySlug(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://standmatch.example")

	_, err := service.GenerateProfileQR("")
	assert.Error(t, err)
}

func TestQRCodeService_GenerateProfileQR_TrailingSlashBaseURL(t *testing.T) {
	withSlash := NewQRCodeService(256, "M", "https://standmatch.example/")
	withoutSlash := NewQRCodeService(256, "M", "https://standmatch.example")

	a, err := withSlash.GenerateProfileQR("tokyo-exhibition-co")
	require.NoError(t, err)
	b, err := withoutSlash.GenerateProfileQR("tokyo-exhibition-co")
	require.NoError(t, err)

	// Both encode the same URL, so the codes are identical.
	assert.Equal(t, a, b)
}
