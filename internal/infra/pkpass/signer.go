package pkpass

import (
	"context"

	"truefans/internal/domain/service"
)

type unsignedSigner struct{}

// NewUnsignedSigner returns the default signer, which leaves bundles unsigned.
// Signing with a pass type certificate is done by a dedicated signer.
func NewUnsignedSigner() service.PassSigner {
	return unsignedSigner{}
}

// Sign returns no signature.
func (unsignedSigner) Sign(context.Context, []byte) ([]byte, error) {
	return nil, nil
}
