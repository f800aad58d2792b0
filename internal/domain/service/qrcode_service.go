package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GeneratePassQR renders the scannable QR code of a pass as PNG
	GeneratePassQR(passID string) ([]byte, error)

	// PassQRPayload returns the text encoded in a pass QR code and wallet barcode
	PassQRPayload(passID string) (string, error)

	// ParsePassQR parses scanned QR data and returns the pass ID
	ParsePassQR(qrData string) (string, error)
}
