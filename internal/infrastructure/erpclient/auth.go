package erpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	User  string `json:"user"`
	Role  string `json:"role"`
	Error string `json:"error"`
}

// Authenticator login/logout contra /auth del backend; la cookie de sesión queda en el jar del Client.
type Authenticator struct {
	c *Client
}

// NewAuthenticator construye el adaptador.
func NewAuthenticator(c *Client) *Authenticator {
	return &Authenticator{c: c}
}

// Login POST /auth/login. Devuelve el usuario y las cookies de sesión emitidas por el backend.
// Antes de autenticar se descarta cualquier cookie anterior.
func (a *Authenticator) Login(ctx context.Context, username, password string) (entity.User, []*http.Cookie, error) {
	a.c.ResetCookies(nil)
	raw, err := a.c.do(ctx, http.MethodPost, "/auth/login", nil, loginRequest{Username: username, Password: password})
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) {
			var body loginResponse
			if json.Unmarshal([]byte(se.Body), &body) == nil && body.Error != "" {
				return entity.User{}, nil, fmt.Errorf("%w: %s", domain.ErrUnauthorized, body.Error)
			}
			if se.Status == http.StatusUnauthorized || se.Status == http.StatusForbidden || se.Status == http.StatusBadRequest {
				return entity.User{}, nil, fmt.Errorf("%w: Falha no login", domain.ErrUnauthorized)
			}
		}
		return entity.User{}, nil, err
	}
	var body loginResponse
	if raw != nil {
		if err := json.Unmarshal(raw, &body); err != nil {
			return entity.User{}, nil, fmt.Errorf("%w: respuesta de login inválida: %v", domain.ErrUpstream, err)
		}
	}
	user := entity.User{Username: body.User, Role: body.Role}
	if user.Username == "" {
		user.Username = username
	}
	return user, a.c.Cookies(), nil
}

// Logout POST /auth/logout y limpia el jar local aunque el backend falle.
func (a *Authenticator) Logout(ctx context.Context) error {
	_, err := a.c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
	a.c.ResetCookies(nil)
	return err
}

// Restore reinstala cookies persistidas (arranque de la aplicación).
func (a *Authenticator) Restore(cookies []*http.Cookie) {
	a.c.ResetCookies(cookies)
}
