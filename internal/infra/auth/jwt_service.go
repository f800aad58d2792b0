// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"truefans/config"
	"truefans/internal/domain/entity"
	"truefans/internal/domain/service"
	"truefans/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for every token that cannot be trusted.
var ErrInvalidToken = errors.New("invalid token")

const (
	defaultAccessTTL = 15 * time.Minute
	tokenIssuer      = "truefans"
)

// principalClaims are the JWT claims carrying a caller principal.
type principalClaims struct {
	RestaurantID string   `json:"restaurant_id,omitempty"`
	Roles        []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret []byte        // Secret key for signing access tokens.
	accessTTL    time.Duration // Time-to-live for access tokens.
	now          func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		accessTTL:    defaultAccessTTL,
		now:          time.Now,
	}, nil
}

// GenerateToken signs an access token for principal.
func (s *jwtService) GenerateToken(principal *entity.Principal) (string, error) {
	if principal == nil || principal.UserID == "" {
		return "", errors.New("principal subject is required")
	}

	now := s.now()
	claims := principalClaims{
		RestaurantID: principal.RestaurantID,
		Roles:        principal.Roles.ToStrings(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal.UserID,
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.accessSecret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ValidateToken verifies signature, issuer and expiry and returns the principal.
func (s *jwtService) ValidateToken(tokenString string) (*entity.Principal, error) {
	claims := &principalClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.accessSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &entity.Principal{
		UserID:       claims.Subject,
		RestaurantID: claims.RestaurantID,
		Roles:        entity.RolesFromStrings(claims.Roles),
	}, nil
}
