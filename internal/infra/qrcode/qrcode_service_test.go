package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GenerateReferralQR(t *testing.T) {
	svc := NewQRCodeService(128, "M", "https://agentverse.example.com/")

	png, err := svc.GenerateReferralQR("AV-DEADBEEF")
	require.NoError(t, err)

	// PNG magic bytes.
	require.Greater(t, len(png), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestQRCodeService_UnknownLevelDefaultsToMedium(t *testing.T) {
	svc := NewQRCodeService(64, "X", "https://agentverse.example.com")

	png, err := svc.GenerateReferralQR("AV-CAFEF00D")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
