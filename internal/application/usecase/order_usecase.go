package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
	"github.com/jhoicas/estoque-api/pkg/logger"
)

// OrderUseCase registro, listado y baja de pedidos. La validación de stock la hace el backend.
type OrderUseCase struct {
	repo repository.OrderRepository
	log  *logger.Logger
	now  func() time.Time
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository, log *logger.Logger) *OrderUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &OrderUseCase{repo: repo, log: log.Component("orders"), now: time.Now}
}

func validKind(kind string) bool {
	switch kind {
	case entity.OrderKindPurchase, entity.OrderKindSale, entity.OrderKindReturn:
		return true
	}
	return false
}

// Register valida lo mínimo (documento, contraparte, al menos un ítem con producto y cantidad
// positiva) y envía el pedido al backend.
func (uc *OrderUseCase) Register(ctx context.Context, kind string, in dto.RegisterOrderRequest) (*dto.OrderResponse, error) {
	if !validKind(kind) {
		return nil, domain.ErrInvalidInput
	}
	nro := strings.TrimSpace(in.DocumentNumber)
	party := strings.TrimSpace(in.PartyID)
	if nro == "" || party == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	order := &entity.Order{
		Kind:           kind,
		DocumentNumber: nro,
		PartyID:        party,
		Date:           uc.now(),
		Items:          make([]entity.OrderItem, 0, len(in.Items)),
	}
	if in.Date != nil {
		order.Date = *in.Date
	}
	for _, it := range in.Items {
		pid := strings.TrimSpace(it.ProductID)
		if pid == "" || !it.Quantity.IsPositive() || it.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		order.Items = append(order.Items, entity.OrderItem{ProductID: pid, Quantity: it.Quantity, UnitValue: it.UnitPrice})
	}
	if err := uc.repo.Register(ctx, order); err != nil {
		uc.log.Warn().Err(err).Str("kind", kind).Str("document", nro).Msg("registro de pedido falló")
		return nil, err
	}
	uc.log.Info().Str("kind", kind).Str("document", nro).Int("items", len(order.Items)).Msg("pedido registrado")
	out := toOrderResponse(order)
	return &out, nil
}

// List lista los pedidos del tipo.
func (uc *OrderUseCase) List(ctx context.Context, kind string) (dto.ListResponse[dto.OrderResponse], error) {
	if !validKind(kind) {
		return dto.ListResponse[dto.OrderResponse]{}, domain.ErrInvalidInput
	}
	list, err := uc.repo.List(ctx, kind)
	if err != nil {
		return dto.ListResponse[dto.OrderResponse]{}, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, toOrderResponse(o))
	}
	return dto.NewListResponse(items), nil
}

// Delete elimina un pedido por número de documento.
func (uc *OrderUseCase) Delete(ctx context.Context, kind, documentNumber string) error {
	documentNumber = strings.TrimSpace(documentNumber)
	if !validKind(kind) || documentNumber == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Delete(ctx, kind, documentNumber)
}

func toOrderResponse(o *entity.Order) dto.OrderResponse {
	return dto.OrderResponse{
		Kind:           o.Kind,
		DocumentNumber: o.DocumentNumber,
		Date:           o.Date,
		PartyID:        o.PartyID,
		PartyName:      o.PartyName,
	}
}
