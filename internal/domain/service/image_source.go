package service

import (
	"context"

	"truefans/internal/errors"
)

// ErrImageNotFound is returned when an image reference does not resolve.
var ErrImageNotFound = errors.New("image not found")

// ImageSource resolves an image reference (URL or storage key) to raw bytes.
type ImageSource interface {
	Fetch(ctx context.Context, ref string) ([]byte, error)
}
