package qrcode

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
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
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GeneratePassQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GeneratePassQR(uuid.NewString())
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_PassQRPayload(t *testing.T) {
	service := NewQRCodeService(256, "M")
	passID := uuid.NewString()

	payload, err := service.PassQRPayload(passID)
	require.NoError(t, err)

	var data QRCodeData
	require.NoError(t, json.Unmarshal([]byte(payload), &data))
	assert.Equal(t, passID, data.PassID)
	assert.Equal(t, "loyalty_pass", data.Type)
}

func TestQRCodeService_ParsePassQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	passID := uuid.NewString()
	payload, err := service.PassQRPayload(passID)
	require.NoError(t, err)

	tests := []struct {
		name    string
		qrData  string
		want    string
		wantErr bool
	}{
		{name: "generated payload", qrData: payload, want: passID},
		{name: "bare pass id", qrData: "  " + passID + "\n", want: passID},
		{name: "urn pass id", qrData: "urn:uuid:" + passID, want: passID},
		{name: "dashless uppercase pass id", qrData: strings.ToUpper(strings.ReplaceAll(passID, "-", "")), want: passID},
		{name: "braced pass id", qrData: "{" + passID + "}", wantErr: true},
		{name: "urn inside payload", qrData: `{"pass_id":"urn:uuid:` + passID + `","type":"loyalty_pass"}`, want: passID},
		{name: "uppercase inside payload", qrData: `{"pass_id":"` + strings.ToUpper(passID) + `","type":"loyalty_pass"}`, want: passID},
		{name: "wrong type", qrData: `{"pass_id":"` + passID + `","type":"subscription"}`, wantErr: true},
		{name: "malformed json", qrData: `{"pass_id":`, wantErr: true},
		{name: "malformed pass id", qrData: `{"pass_id":"abc","type":"loyalty_pass"}`, wantErr: true},
		{name: "free text", qrData: "hello", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.ParsePassQR(tt.qrData)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidQRCode)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
