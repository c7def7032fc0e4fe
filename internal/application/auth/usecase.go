package auth

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Horas-api/internal/application/dto"
	"github.com/jhoicas/Horas-api/internal/domain"
	"github.com/jhoicas/Horas-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login del operador único contra un hash bcrypt configurado.
type AuthUseCase struct {
	passwordHash []byte
	jwtCfg       JWTConfig
	now          func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(passwordHash string, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{passwordHash: []byte(passwordHash), jwtCfg: jwtCfg, now: time.Now}
}

// Login verifica la contraseña y emite un JWT.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Password == "" {
		return nil, fmt.Errorf("%w: password es obligatorio", domain.ErrInvalidInput)
	}
	if len(uc.passwordHash) == 0 {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(uc.passwordHash, []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, exp, err := jwt.Generate(uc.jwtCfg.Secret, jwt.OperatorSubject, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes, uc.now())
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, ExpiresAt: exp.UTC()}, nil
}

// HashPassword genera el hash bcrypt para AUTH_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	if len(password) < 8 {
		return "", fmt.Errorf("%w: la contraseña debe tener al menos 8 caracteres", domain.ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
