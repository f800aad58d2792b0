package service

import (
	"context"

	"truefans/internal/errors"
)

// ErrLogoUnavailable is returned by a packager configured to fail when the logo
// cannot be fetched or normalized.
var ErrLogoUnavailable = errors.New("pass logo unavailable")

// PassFields are the dynamic values rendered into a pass artifact.
type PassFields struct {
	SerialNumber   string
	RestaurantName string
	Description    string
	HolderName     string
	LogoRef        string // Optional image source reference.
	BarcodeMessage string // Text encoded in the wallet barcode; defaults to SerialNumber.
	Points         int64
	Visits         int64
}

// PassArtifact is a distributable wallet-pass bundle.
type PassArtifact struct {
	Data        []byte
	Filename    string
	ContentType string
	HasLogo     bool
}

// PassPackager assembles wallet-pass bundles.
type PassPackager interface {
	Package(ctx context.Context, fields PassFields) (*PassArtifact, error)
}

// PassSigner produces the detached signature of a pass manifest.
// A nil signature means the bundle ships unsigned.
type PassSigner interface {
	Sign(ctx context.Context, manifest []byte) ([]byte, error)
}
