// Package session mantiene la sesión activa contra el backend ERP: se crea una vez al arrancar,
// se reemplaza completa en cada login y se limpia en el logout.
package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/pkg/logger"
)

// Session snapshot inmutable de la sesión activa.
type Session struct {
	User     entity.User
	Cookies  []*http.Cookie // cookie de sesión del backend (JSESSIONID)
	LoggedAt time.Time
}

// Store persistencia de la sesión. Load devuelve (nil, nil) cuando no hay nada guardado.
type Store interface {
	Load(ctx context.Context) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Clear(ctx context.Context) error
}

// Authenticator login/logout contra el backend.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (entity.User, []*http.Cookie, error)
	Logout(ctx context.Context) error
	Restore(cookies []*http.Cookie)
}

// Manager dueño único de la sesión del proceso.
type Manager struct {
	store Store
	auth  Authenticator
	log   *logger.Logger
	now   func() time.Time

	mu      sync.RWMutex
	current *Session
}

// NewManager construye el manager sin sesión; llamar Load al arrancar.
func NewManager(store Store, auth Authenticator, log *logger.Logger) *Manager {
	if log == nil {
		log = logger.Nop()
	}
	return &Manager{store: store, auth: auth, log: log.Component("session"), now: time.Now}
}

// Load lee la sesión persistida y reinstala sus cookies en el cliente del backend.
// Un registro ausente significa sesión cerrada.
func (m *Manager) Load(ctx context.Context) error {
	s, err := m.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("session: cargar: %w", err)
	}
	m.mu.Lock()
	m.current = s
	m.mu.Unlock()
	if s != nil {
		m.auth.Restore(s.Cookies)
		m.log.Info().Str("user", s.User.Username).Msg("sesión restaurada")
	}
	return nil
}

// Login autentica en el backend y reemplaza la sesión actual por una nueva.
func (m *Manager) Login(ctx context.Context, username, password string) (*Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, cookies, err := m.auth.Login(ctx, username, password)
	if err != nil {
		m.log.Warn().Err(err).Str("user", username).Msg("login rechazado")
		return nil, err
	}
	s := &Session{User: user, Cookies: cookies, LoggedAt: m.now().UTC()}
	if err := m.store.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("session: guardar: %w", err)
	}
	m.mu.Lock()
	m.current = s
	m.mu.Unlock()
	m.log.Info().Str("user", user.Username).Str("role", user.Role).Msg("login")
	return s, nil
}

// Logout limpia la sesión en memoria y en disco y avisa al backend. La falla del backend solo se registra.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	prev := m.current
	m.current = nil
	m.mu.Unlock()

	if err := m.store.Clear(ctx); err != nil {
		return fmt.Errorf("session: limpiar: %w", err)
	}
	if prev == nil {
		return domain.ErrNoSession
	}
	if err := m.auth.Logout(ctx); err != nil {
		m.log.Warn().Err(err).Str("user", prev.User.Username).Msg("logout en backend falló")
	}
	m.log.Info().Str("user", prev.User.Username).Msg("logout")
	return nil
}

// Current devuelve la sesión activa o nil.
func (m *Manager) Current() *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Require devuelve la sesión activa o ErrNoSession.
func (m *Manager) Require() (*Session, error) {
	if s := m.Current(); s != nil {
		return s, nil
	}
	return nil, domain.ErrNoSession
}

// IsNoSession indica si err proviene de la ausencia de sesión.
func IsNoSession(err error) bool {
	return errors.Is(err, domain.ErrNoSession)
}
