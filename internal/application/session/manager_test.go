package session_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/application/session"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

type memStore struct {
	saved   *session.Session
	cleared int
	loadErr error
}

func (s *memStore) Load(ctx context.Context) (*session.Session, error) { return s.saved, s.loadErr }
func (s *memStore) Save(ctx context.Context, v *session.Session) error {
	s.saved = v
	return nil
}
func (s *memStore) Clear(ctx context.Context) error {
	s.saved = nil
	s.cleared++
	return nil
}

type fakeAuth struct {
	loginErr  error
	logoutErr error
	logouts   int
	restored  []*http.Cookie
}

func (a *fakeAuth) Login(ctx context.Context, u, p string) (entity.User, []*http.Cookie, error) {
	if a.loginErr != nil {
		return entity.User{}, nil, a.loginErr
	}
	return entity.User{Username: u, Role: "ADMIN"}, []*http.Cookie{{Name: "JSESSIONID", Value: "abc-" + u}}, nil
}
func (a *fakeAuth) Logout(ctx context.Context) error {
	a.logouts++
	return a.logoutErr
}
func (a *fakeAuth) Restore(c []*http.Cookie) { a.restored = c }

func TestManager_LoginReplacesAndPersists(t *testing.T) {
	store, auth := &memStore{}, &fakeAuth{}
	m := session.NewManager(store, auth, nil)
	ctx := context.Background()

	first, err := m.Login(ctx, "ana", "x")
	require.NoError(t, err)
	second, err := m.Login(ctx, "bruno", "y")
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, "ana", first.User.Username)
	assert.Same(t, second, m.Current())
	assert.Same(t, second, store.saved)
	assert.Equal(t, "abc-bruno", m.Current().Cookies[0].Value)
}

func TestManager_LoginRejected(t *testing.T) {
	store := &memStore{}
	m := session.NewManager(store, &fakeAuth{loginErr: domain.ErrUnauthorized}, nil)

	_, err := m.Login(context.Background(), "ana", "bad")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Nil(t, m.Current())
	assert.Nil(t, store.saved)

	_, err = m.Login(context.Background(), " ", "x")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestManager_LogoutClearsEverything(t *testing.T) {
	store, auth := &memStore{}, &fakeAuth{logoutErr: errors.New("backend caído")}
	m := session.NewManager(store, auth, nil)
	ctx := context.Background()
	_, err := m.Login(ctx, "ana", "x")
	require.NoError(t, err)

	require.NoError(t, m.Logout(ctx))
	assert.Nil(t, m.Current())
	assert.Nil(t, store.saved)
	assert.Equal(t, 1, auth.logouts)

	err = m.Logout(ctx)
	assert.True(t, session.IsNoSession(err))
	assert.Equal(t, 1, auth.logouts)
}

func TestManager_LoadRestores(t *testing.T) {
	persisted := &session.Session{
		User:    entity.User{Username: "ana", Role: "user"},
		Cookies: []*http.Cookie{{Name: "JSESSIONID", Value: "zzz"}},
	}
	store, auth := &memStore{saved: persisted}, &fakeAuth{}
	m := session.NewManager(store, auth, nil)

	require.NoError(t, m.Load(context.Background()))
	assert.Same(t, persisted, m.Current())
	assert.Equal(t, "zzz", auth.restored[0].Value)

	s, err := m.Require()
	require.NoError(t, err)
	assert.Equal(t, "ana", s.User.Username)
}

func TestManager_LoadMissingMeansLoggedOut(t *testing.T) {
	m := session.NewManager(&memStore{}, &fakeAuth{}, nil)
	require.NoError(t, m.Load(context.Background()))
	assert.Nil(t, m.Current())
	_, err := m.Require()
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestManager_LoadError(t *testing.T) {
	m := session.NewManager(&memStore{loadErr: errors.New("disco")}, &fakeAuth{}, nil)
	assert.Error(t, m.Load(context.Background()))
}
