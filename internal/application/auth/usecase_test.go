package auth_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/application/auth"
	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/session"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/pkg/jwt"
)

type nopStore struct{}

func (nopStore) Load(ctx context.Context) (*session.Session, error)  { return nil, nil }
func (nopStore) Save(ctx context.Context, s *session.Session) error { return nil }
func (nopStore) Clear(ctx context.Context) error                    { return nil }

type okAuth struct{}

func (okAuth) Login(ctx context.Context, u, p string) (entity.User, []*http.Cookie, error) {
	if p != "segredo" {
		return entity.User{}, nil, domain.ErrUnauthorized
	}
	return entity.User{Username: u, Role: "admin"}, nil, nil
}
func (okAuth) Logout(ctx context.Context) error { return nil }
func (okAuth) Restore([]*http.Cookie)           {}

func TestAuthUseCase_LoginIssuesToken(t *testing.T) {
	cfg := auth.JWTConfig{Secret: "s3cr3t", ExpMinutes: 5, Issuer: "estoque-api"}
	uc := auth.NewAuthUseCase(session.NewManager(nopStore{}, okAuth{}, nil), cfg)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "ana", Password: "segredo"})
	require.NoError(t, err)
	assert.Equal(t, "ana", out.User.Username)

	username, role, err := jwt.Parse(cfg.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "ana", username)
	assert.Equal(t, "admin", role)

	me, err := uc.Me()
	require.NoError(t, err)
	assert.Equal(t, "ana", me.Username)

	require.NoError(t, uc.Logout(context.Background()))
	_, err = uc.Me()
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestAuthUseCase_LoginRejected(t *testing.T) {
	uc := auth.NewAuthUseCase(session.NewManager(nopStore{}, okAuth{}, nil), auth.JWTConfig{Secret: "x"})
	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "ana", Password: "errada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
