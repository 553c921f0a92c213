package auth

import (
	"context"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/session"
	"github.com/jhoicas/estoque-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login/logout del gateway: la sesión real vive en el backend, el JWT solo la referencia.
type AuthUseCase struct {
	sessions *session.Manager
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(sessions *session.Manager, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{sessions: sessions, jwtCfg: jwtCfg}
}

// Login autentica en el backend, reemplaza la sesión y emite un JWT con usuario y rol.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	s, err := uc.sessions.Login(ctx, in.Username, in.Password)
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, s.User.Username, s.User.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  toUserResponse(s),
	}, nil
}

// Logout cierra la sesión activa.
func (uc *AuthUseCase) Logout(ctx context.Context) error {
	return uc.sessions.Logout(ctx)
}

// Me devuelve el usuario de la sesión activa o ErrNoSession.
func (uc *AuthUseCase) Me() (*dto.UserResponse, error) {
	s, err := uc.sessions.Require()
	if err != nil {
		return nil, err
	}
	out := toUserResponse(s)
	return &out, nil
}

func toUserResponse(s *session.Session) dto.UserResponse {
	return dto.UserResponse{
		Username: s.User.Username,
		Role:     s.User.Role,
		LoggedAt: s.LoggedAt,
	}
}
