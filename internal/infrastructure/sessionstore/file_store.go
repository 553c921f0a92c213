// Package sessionstore persiste la sesión en un archivo JSON, opcionalmente sellado con secretbox.
package sessionstore

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/crypto/nacl/secretbox"

	"github.com/jhoicas/estoque-api/internal/application/session"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

const nonceSize = 24

type cookieRecord struct {
	Name     string    `json:"name"`
	Value    string    `json:"value"`
	Path     string    `json:"path,omitempty"`
	Domain   string    `json:"domain,omitempty"`
	Expires  time.Time `json:"expires,omitempty"`
	HttpOnly bool      `json:"http_only,omitempty"`
}

type record struct {
	Username string         `json:"username"`
	Role     string         `json:"role"`
	LoggedAt time.Time      `json:"logged_at"`
	Cookies  []cookieRecord `json:"cookies"`
}

// FileStore implementa session.Store sobre un archivo local.
type FileStore struct {
	path string
	key  *[32]byte // nil -> JSON en claro
}

// NewFileStore construye el store. key vacío guarda en claro; un key de 64 caracteres hex se usa
// tal cual, cualquier otro se deriva con SHA-256.
func NewFileStore(path, key string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("sessionstore: ruta vacía")
	}
	fsStore := &FileStore{path: path}
	if key != "" {
		k, err := deriveKey(key)
		if err != nil {
			return nil, err
		}
		fsStore.key = k
	}
	return fsStore, nil
}

func deriveKey(key string) (*[32]byte, error) {
	var k [32]byte
	if len(key) == 64 {
		if b, err := hex.DecodeString(key); err == nil {
			copy(k[:], b)
			return &k, nil
		}
	}
	k = sha256.Sum256([]byte(key))
	return &k, nil
}

// Load lee la sesión; archivo ausente devuelve (nil, nil).
func (s *FileStore) Load(ctx context.Context) (*session.Session, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sessionstore: leer %s: %w", s.path, err)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	if s.key != nil {
		if raw, err = s.open(raw); err != nil {
			return nil, err
		}
	}
	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("sessionstore: decodificar: %w", err)
	}
	return fromRecord(rec), nil
}

// Save escribe la sesión de forma atómica (archivo temporal + rename) con permisos 0600.
func (s *FileStore) Save(ctx context.Context, sess *session.Session) error {
	raw, err := json.Marshal(toRecord(sess))
	if err != nil {
		return fmt.Errorf("sessionstore: codificar: %w", err)
	}
	if s.key != nil {
		if raw, err = s.seal(raw); err != nil {
			return err
		}
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("sessionstore: crear directorio: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("sessionstore: archivo temporal: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("sessionstore: escribir: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("sessionstore: permisos: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("sessionstore: cerrar: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("sessionstore: renombrar: %w", err)
	}
	return nil
}

// Clear borra el archivo; si no existe no es error.
func (s *FileStore) Clear(ctx context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("sessionstore: borrar: %w", err)
	}
	return nil
}

func (s *FileStore) seal(plain []byte) ([]byte, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, fmt.Errorf("sessionstore: nonce: %w", err)
	}
	return secretbox.Seal(nonce[:], plain, &nonce, s.key), nil
}

func (s *FileStore) open(sealed []byte) ([]byte, error) {
	if len(sealed) < nonceSize+secretbox.Overhead {
		return nil, fmt.Errorf("sessionstore: archivo sellado truncado")
	}
	var nonce [nonceSize]byte
	copy(nonce[:], sealed[:nonceSize])
	plain, ok := secretbox.Open(nil, sealed[nonceSize:], &nonce, s.key)
	if !ok {
		return nil, fmt.Errorf("sessionstore: no se pudo abrir la sesión (clave incorrecta o archivo alterado)")
	}
	return plain, nil
}

func toRecord(s *session.Session) record {
	rec := record{Username: s.User.Username, Role: s.User.Role, LoggedAt: s.LoggedAt}
	for _, c := range s.Cookies {
		if c == nil {
			continue
		}
		rec.Cookies = append(rec.Cookies, cookieRecord{
			Name: c.Name, Value: c.Value, Path: c.Path, Domain: c.Domain, Expires: c.Expires, HttpOnly: c.HttpOnly,
		})
	}
	return rec
}

func fromRecord(rec record) *session.Session {
	s := &session.Session{
		User:     entity.User{Username: rec.Username, Role: rec.Role},
		LoggedAt: rec.LoggedAt,
	}
	for _, c := range rec.Cookies {
		s.Cookies = append(s.Cookies, &http.Cookie{
			Name: c.Name, Value: c.Value, Path: c.Path, Domain: c.Domain, Expires: c.Expires, HttpOnly: c.HttpOnly,
		})
	}
	return s
}
