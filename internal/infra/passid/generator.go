// Package passid mints loyalty pass identifiers.
package passid

import (
	"truefans/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type generator struct{}

// NewGenerator returns a generator of random (version 4) UUID strings.
// Identifiers are lowercase hex with dashes, safe inside URLs and QR payloads.
func NewGenerator() service.PassIDGenerator {
	return &generator{}
}

// Generate draws 122 random bits from crypto/rand.
func (g *generator) Generate() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", errors.Wrap(err, "failed to read entropy for pass id")
	}

	return id.String(), nil
}
