package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Horas-api/internal/application/dto"
	"github.com/jhoicas/Horas-api/internal/domain"
	"github.com/jhoicas/Horas-api/pkg/jwt"
)

var testJWT = JWTConfig{Secret: "test-secret-key-for-unit-tests", ExpMinutes: 60, Issuer: "horas-test"}

func TestLogin(t *testing.T) {
	hash, err := HashPassword("correcta-123")
	require.NoError(t, err)

	uc := NewAuthUseCase(hash, testJWT)
	fixed := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return fixed }

	resp, err := uc.Login(dto.LoginRequest{Password: "correcta-123"})
	require.NoError(t, err)
	assert.Equal(t, fixed.Add(time.Hour), resp.ExpiresAt)

	sub, err := jwt.Parse(testJWT.Secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, jwt.OperatorSubject, sub)
}

func TestLogin_Errores(t *testing.T) {
	hash, err := HashPassword("correcta-123")
	require.NoError(t, err)
	uc := NewAuthUseCase(hash, testJWT)

	_, err = uc.Login(dto.LoginRequest{Password: "otra-cosa"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = NewAuthUseCase("", testJWT).Login(dto.LoginRequest{Password: "correcta-123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestHashPassword_Corta(t *testing.T) {
	_, err := HashPassword("corta")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
