package service

import (
	"truefans/internal/domain/entity"
)

// TokenService defines the interface for issuing and validating caller tokens.
// This abstracts the details of token handling from the delivery layer.
type TokenService interface {
	// GenerateToken creates an access token for the principal.
	GenerateToken(principal *entity.Principal) (string, error)

	// ValidateToken checks the validity of a token string and returns its principal.
	ValidateToken(tokenString string) (*entity.Principal, error)
}
