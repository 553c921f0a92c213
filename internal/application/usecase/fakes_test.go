package usecase_test

import (
	"context"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

type memProducts struct {
	items   []*entity.Product
	created *entity.Product
	deleted string
	err     error
}

func (m *memProducts) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	for _, p := range m.items {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, m.err
}
func (m *memProducts) List(ctx context.Context) ([]*entity.Product, error) { return m.items, m.err }
func (m *memProducts) Create(ctx context.Context, p *entity.Product) error {
	m.created = p
	return m.err
}
func (m *memProducts) Delete(ctx context.Context, id string) error {
	m.deleted = id
	return m.err
}

type memClients struct {
	items   []*entity.Client
	created *entity.Client
}

func (m *memClients) List(ctx context.Context) ([]*entity.Client, error) { return m.items, nil }
func (m *memClients) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	for _, c := range m.items {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}
func (m *memClients) Create(ctx context.Context, c *entity.Client) error {
	m.created = c
	return nil
}
func (m *memClients) Delete(ctx context.Context, id string) error { return nil }

type memSuppliers struct {
	created *entity.Supplier
}

func (m *memSuppliers) List(ctx context.Context) ([]*entity.Supplier, error) { return nil, nil }
func (m *memSuppliers) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	return nil, nil
}
func (m *memSuppliers) Create(ctx context.Context, s *entity.Supplier) error {
	m.created = s
	return nil
}
func (m *memSuppliers) Delete(ctx context.Context, id string) error { return nil }

type memOrders struct {
	registered *entity.Order
	listKind   string
	list       []*entity.Order
	deleted    [2]string
	err        error
}

func (m *memOrders) Register(ctx context.Context, o *entity.Order) error {
	m.registered = o
	return m.err
}
func (m *memOrders) List(ctx context.Context, kind string) ([]*entity.Order, error) {
	m.listKind = kind
	return m.list, m.err
}
func (m *memOrders) Delete(ctx context.Context, kind, nro string) error {
	m.deleted = [2]string{kind, nro}
	return m.err
}

type memMovements struct {
	byDocument map[string][]*entity.MovementRecord
	err        error
}

func (m *memMovements) ListByProduct(ctx context.Context, id string, r entity.DateRange) ([]*entity.MovementRecord, error) {
	return nil, m.err
}
func (m *memMovements) ListByDocument(ctx context.Context, nro string) ([]*entity.MovementRecord, error) {
	return m.byDocument[nro], m.err
}
