package qrcode

import (
	"encoding/json"
	"strings"

	"truefans/internal/domain/service"
	"truefans/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

// passQRType tags QR payloads that identify a loyalty pass.
const passQRType = "loyalty_pass"

// ErrInvalidQRCode is returned when scanned data does not identify a pass.
var ErrInvalidQRCode = errors.New("invalid pass QR code")

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	PassID string `json:"pass_id"`
	Type   string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
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

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// PassQRPayload returns the JSON text encoded in pass QR codes and wallet barcodes
func (s *qrcodeService) PassQRPayload(passID string) (string, error) {
	jsonData, err := json.Marshal(QRCodeData{
		PassID: passID,
		Type:   passQRType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal QR code data")
	}

	return string(jsonData), nil
}

// GeneratePassQR renders the QR code of a pass as PNG
func (s *qrcodeService) GeneratePassQR(passID string) ([]byte, error) {
	payload, err := s.PassQRPayload(passID)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(payload, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParsePassQR parses scanned QR data and returns the pass ID.
// Both the JSON payload and a bare pass ID are accepted.
func (s *qrcodeService) ParsePassQR(qrData string) (string, error) {
	qrData = strings.TrimSpace(qrData)

	if !strings.HasPrefix(qrData, "{") {
		id, err := uuid.Parse(qrData)
		if err != nil {
			return "", errors.Wrap(ErrInvalidQRCode, "not a pass ID")
		}

		// Canonical form so urn and dashless spellings match stored IDs.
		return id.String(), nil
	}

	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", errors.Wrap(ErrInvalidQRCode, "malformed payload")
	}

	// Validate type
	if data.Type != passQRType {
		return "", errors.Wrapf(ErrInvalidQRCode, "unexpected type %q", data.Type)
	}

	id, err := uuid.Parse(data.PassID)
	if err != nil {
		return "", errors.Wrap(ErrInvalidQRCode, "malformed pass ID")
	}

	return id.String(), nil
}
