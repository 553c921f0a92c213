package erpclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var (
	_ repository.ClientRepository   = (*ClientRepo)(nil)
	_ repository.SupplierRepository = (*SupplierRepo)(nil)
	_ repository.AddressRepository  = (*AddressRepo)(nil)
)

// ClientRepo adaptador de /cliente.
type ClientRepo struct {
	c *Client
}

// NewClientRepository construye el adaptador.
func NewClientRepository(c *Client) *ClientRepo {
	return &ClientRepo{c: c}
}

func (r *ClientRepo) List(ctx context.Context) ([]*entity.Client, error) {
	list, _, err := fetch[[]clienteWire](ctx, r.c, http.MethodGet, "/cliente", nil, nil)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Client, 0, len(list))
	for i := range list {
		out = append(out, list[i].toEntity())
	}
	return out, nil
}

func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	w, ok, err := fetch[clienteWire](ctx, r.c, http.MethodGet, "/cliente/id", url.Values{"id": {id}}, nil)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return w.toEntity(), nil
}

func (r *ClientRepo) Create(ctx context.Context, client *entity.Client) error {
	_, err := r.c.do(ctx, http.MethodPost, "/cliente/cadastro", nil, clienteFromEntity(client))
	return err
}

func (r *ClientRepo) Delete(ctx context.Context, id string) error {
	_, err := r.c.do(ctx, http.MethodDelete, "/cliente/remover", url.Values{"id": {id}}, nil)
	return err
}

// SupplierRepo adaptador de /fornecedor.
type SupplierRepo struct {
	c *Client
}

// NewSupplierRepository construye el adaptador.
func NewSupplierRepository(c *Client) *SupplierRepo {
	return &SupplierRepo{c: c}
}

func (r *SupplierRepo) List(ctx context.Context) ([]*entity.Supplier, error) {
	list, _, err := fetch[[]fornecedorWire](ctx, r.c, http.MethodGet, "/fornecedor", nil, nil)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Supplier, 0, len(list))
	for i := range list {
		out = append(out, list[i].toEntity())
	}
	return out, nil
}

func (r *SupplierRepo) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	w, ok, err := fetch[fornecedorWire](ctx, r.c, http.MethodGet, "/fornecedor/id", url.Values{"id": {id}}, nil)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return w.toEntity(), nil
}

func (r *SupplierRepo) Create(ctx context.Context, supplier *entity.Supplier) error {
	_, err := r.c.do(ctx, http.MethodPost, "/fornecedor/cadastro", nil, fornecedorFromEntity(supplier))
	return err
}

func (r *SupplierRepo) Delete(ctx context.Context, id string) error {
	_, err := r.c.do(ctx, http.MethodDelete, "/fornecedor/remover", url.Values{"id": {id}}, nil)
	return err
}

// AddressRepo adaptador de /endereco.
type AddressRepo struct {
	c *Client
}

// NewAddressRepository construye el adaptador.
func NewAddressRepository(c *Client) *AddressRepo {
	return &AddressRepo{c: c}
}

func (r *AddressRepo) List(ctx context.Context) ([]*entity.Address, error) {
	list, _, err := fetch[[]enderecoWire](ctx, r.c, http.MethodGet, "/endereco/lista", nil, nil)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Address, 0, len(list))
	for i := range list {
		out = append(out, list[i].toEntity())
	}
	return out, nil
}
