// Package erpclient implementa los puertos del dominio sobre la API HTTP del backend ERP
// (produto, cliente, fornecedor, pedido, transacao, endereco, auth).
package erpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/pkg/logger"
)

const maxBodyBytes = 8 << 20

// Client cliente HTTP del backend ERP. El jar de cookies lleva la sesión del backend (JSESSIONID).
// Usa net/http de la stdlib, igual que los demás adaptadores salientes.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	log        *logger.Logger
	loc        *time.Location // zona para fechas sin zona del backend

	mu  sync.RWMutex
	jar *cookiejar.Jar
}

// NewClient construye el cliente. baseURL ej. "http://localhost:8080".
func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("erpclient: base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("erpclient: base URL sin esquema o host: %q", baseURL)
	}
	if log == nil {
		log = logger.Nop()
	}
	jar, _ := cookiejar.New(nil)
	return &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: timeout},
		log:        log.Component("erpclient"),
		loc:        time.Local,
		jar:        jar,
	}, nil
}

// SetLocation define la zona horaria usada para fechas sin zona (LocalDateTime del backend).
func (c *Client) SetLocation(loc *time.Location) {
	if loc != nil {
		c.loc = loc
	}
}

// Cookies devuelve las cookies de sesión vigentes para el backend.
func (c *Client) Cookies() []*http.Cookie {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.jar.Cookies(c.baseURL)
}

// ResetCookies reemplaza el jar completo por uno que contiene solo las cookies indicadas.
func (c *Client) ResetCookies(cookies []*http.Cookie) {
	jar, _ := cookiejar.New(nil)
	if len(cookies) > 0 {
		jar.SetCookies(c.baseURL, cookies)
	}
	c.mu.Lock()
	c.jar = jar
	c.mu.Unlock()
}

func (c *Client) currentJar() *cookiejar.Jar {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.jar
}

// do ejecuta la petición y devuelve el cuerpo crudo. Un cuerpo vacío o Content-Length: 0 devuelve nil.
// Estados no 2xx se traducen a errores de dominio con el texto devuelto por el backend.
func (c *Client) do(ctx context.Context, method, endpoint string, query url.Values, body any) ([]byte, error) {
	u := *c.baseURL
	u.Path = c.baseURL.Path + endpoint
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("erpclient: serializar %s %s: %w", method, endpoint, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("erpclient: crear request: %w", err)
	}
	requestID := uuid.New().String()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	jar := c.currentJar()
	for _, ck := range jar.Cookies(&u) {
		req.AddCookie(ck)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("erpclient: %s %s: timeout o cancelación: %w", method, endpoint, ctx.Err())
		}
		return nil, fmt.Errorf("%w: %s %s: %v", domain.ErrUpstream, method, endpoint, err)
	}
	defer resp.Body.Close()

	if cookies := resp.Cookies(); len(cookies) > 0 {
		jar.SetCookies(&u, cookies)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: leer respuesta %s %s: %v", domain.ErrUpstream, method, endpoint, err)
	}

	c.log.Debug().
		Str("request_id", requestID).
		Str("method", method).
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("respuesta del backend")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(method, endpoint, resp.StatusCode, raw)
	}
	if resp.Header.Get("Content-Length") == "0" || len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	return raw, nil
}

func statusError(method, endpoint string, status int, body []byte) error {
	text := strings.TrimSpace(string(body))
	if text == "" {
		text = fmt.Sprintf("Request failed with status %d", status)
	}
	var kind error
	switch status {
	case http.StatusNotFound:
		kind = domain.ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = domain.ErrUnauthorized
	default:
		kind = domain.ErrUpstream
	}
	return &StatusError{Kind: kind, Method: method, Endpoint: endpoint, Status: status, Body: text}
}

// StatusError respuesta no exitosa del backend.
type StatusError struct {
	Kind     error
	Method   string
	Endpoint string
	Status   int
	Body     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: HTTP %d: %s", e.Method, e.Endpoint, e.Status, e.Body)
}

// Unwrap permite errors.Is(err, domain.ErrNotFound) etc.
func (e *StatusError) Unwrap() error { return e.Kind }

// fetch ejecuta la petición y decodifica el JSON en T. ok es falso si no hubo cuerpo
// o si el cuerpo no era JSON (se registra y se trata como respuesta vacía).
func fetch[T any](ctx context.Context, c *Client, method, endpoint string, query url.Values, body any) (out T, ok bool, err error) {
	raw, err := c.do(ctx, method, endpoint, query, body)
	if err != nil || raw == nil {
		return out, false, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		var zero T
		c.log.Warn().Err(err).Str("endpoint", endpoint).Msg("respuesta no es JSON válido; se ignora")
		return zero, false, nil
	}
	return out, true, nil
}

// isNotFound indica si el error corresponde a un 404 del backend.
func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
