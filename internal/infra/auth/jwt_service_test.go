package auth

import (
	"testing"
	"time"

	"truefans/config"
	"truefans/internal/domain/entity"
	"truefans/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	svc := newTestService(t)
	principal := &entity.Principal{
		UserID:       "staff-1",
		RestaurantID: "r1",
		Roles:        entity.Roles{entity.RoleStaff},
	}

	token, err := svc.GenerateToken(principal)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	got, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, principal, got)
}

func TestJWTService_DinerTokenHasNoRestaurant(t *testing.T) {
	svc := newTestService(t)

	token, err := svc.GenerateToken(&entity.Principal{UserID: "diner-1", Roles: entity.Roles{entity.RoleDiner}})
	require.NoError(t, err)

	got, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Empty(t, got.RestaurantID)
	assert.True(t, got.Roles.Contains(entity.RoleDiner))
}

func TestJWTService_UnknownRolesDropped(t *testing.T) {
	svc := newTestService(t)

	token, err := svc.GenerateToken(&entity.Principal{UserID: "u", Roles: entity.Roles{"admin", entity.RoleOwner}})
	require.NoError(t, err)

	got, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, entity.Roles{entity.RoleOwner}, got.Roles)
}

func TestJWTService_InvalidTokens(t *testing.T) {
	svc := newTestService(t)

	expired := newTestService(t)
	expired.now = func() time.Time { return time.Now().Add(-time.Hour) }
	expiredToken, err := expired.GenerateToken(&entity.Principal{UserID: "u"})
	require.NoError(t, err)

	otherCfg := &config.Config{}
	otherCfg.SecretKey.Access = "another_secret_of_reasonable_length"
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)
	foreignToken, err := other.GenerateToken(&entity.Principal{UserID: "u"})
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "u",
		"iss": tokenIssuer,
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "clearly-not-a-jwt-token-format"},
		{name: "empty", token: ""},
		{name: "expired", token: expiredToken},
		{name: "wrong secret", token: foreignToken},
		{name: "alg none", token: noneToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			principal, err := svc.ValidateToken(tt.token)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidToken))
			assert.Nil(t, principal)
		})
	}
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})

	require.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_GenerateRequiresSubject(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GenerateToken(&entity.Principal{})
	assert.Error(t, err)

	_, err = svc.GenerateToken(nil)
	assert.Error(t, err)
}
