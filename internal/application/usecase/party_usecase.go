package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// ClientUseCase casos de uso de clientes.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create registra un cliente. Requiere nombre y CPF o CNPJ.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	c := &entity.Client{
		Name:          strings.TrimSpace(in.Name),
		CPF:           onlyDigits(in.CPF),
		CNPJ:          onlyDigits(in.CNPJ),
		AddressID:     strings.TrimSpace(in.AddressID),
		AddressNumber: strings.TrimSpace(in.AddressNumber),
	}
	if c.Name == "" || (c.CPF == "" && c.CNPJ == "") {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	out := toClientResponse(c)
	return &out, nil
}

// GetByID obtiene un cliente; ErrNotFound si no existe.
func (uc *ClientUseCase) GetByID(ctx context.Context, id string) (*dto.ClientResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	out := toClientResponse(c)
	return &out, nil
}

// List lista los clientes.
func (uc *ClientUseCase) List(ctx context.Context) (dto.ListResponse[dto.ClientResponse], error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return dto.ListResponse[dto.ClientResponse]{}, err
	}
	items := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		items = append(items, toClientResponse(c))
	}
	return dto.NewListResponse(items), nil
}

// Delete elimina un cliente.
func (uc *ClientUseCase) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Delete(ctx, id)
}

// SupplierUseCase casos de uso de proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create registra un proveedor. Requiere nombre y CNPJ.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	s := &entity.Supplier{
		Name:          strings.TrimSpace(in.Name),
		CNPJ:          onlyDigits(in.CNPJ),
		AddressID:     strings.TrimSpace(in.AddressID),
		AddressNumber: strings.TrimSpace(in.AddressNumber),
	}
	if s.Name == "" || s.CNPJ == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	out := toSupplierResponse(s)
	return &out, nil
}

// GetByID obtiene un proveedor; ErrNotFound si no existe.
func (uc *SupplierUseCase) GetByID(ctx context.Context, id string) (*dto.SupplierResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	out := toSupplierResponse(s)
	return &out, nil
}

// List lista los proveedores.
func (uc *SupplierUseCase) List(ctx context.Context) (dto.ListResponse[dto.SupplierResponse], error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return dto.ListResponse[dto.SupplierResponse]{}, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, toSupplierResponse(s))
	}
	return dto.NewListResponse(items), nil
}

// Delete elimina un proveedor.
func (uc *SupplierUseCase) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Delete(ctx, id)
}

// AddressUseCase listado de direcciones.
type AddressUseCase struct {
	repo repository.AddressRepository
}

// NewAddressUseCase construye el caso de uso.
func NewAddressUseCase(repo repository.AddressRepository) *AddressUseCase {
	return &AddressUseCase{repo: repo}
}

// List lista las direcciones registradas.
func (uc *AddressUseCase) List(ctx context.Context) (dto.ListResponse[dto.AddressResponse], error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return dto.ListResponse[dto.AddressResponse]{}, err
	}
	items := make([]dto.AddressResponse, 0, len(list))
	for _, a := range list {
		items = append(items, dto.AddressResponse{
			ID: a.ID, Street: a.Street, Neighborhood: a.Neighborhood, City: a.City, State: a.State,
		})
	}
	return dto.NewListResponse(items), nil
}

func toClientResponse(c *entity.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:            c.ID,
		Name:          c.Name,
		CPF:           c.CPF,
		CNPJ:          c.CNPJ,
		AddressID:     c.AddressID,
		AddressNumber: c.AddressNumber,
	}
}

func toSupplierResponse(s *entity.Supplier) dto.SupplierResponse {
	return dto.SupplierResponse{
		ID:            s.ID,
		Name:          s.Name,
		CNPJ:          s.CNPJ,
		AddressID:     s.AddressID,
		AddressNumber: s.AddressNumber,
	}
}

// onlyDigits quita la máscara de CPF/CNPJ ("123.456.789-00" -> "12345678900").
func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
