package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
	"github.com/jhoicas/estoque-api/pkg/logger"
)

var _ repository.MovementQuery = (*MovementRepo)(nil)

// Columnas del esquema del backend (transacao + operacao_estoque).
const movementSelect = `
	SELECT t.id_produto::text, t.data_transacao, COALESCE(o.tipo_operacao, ''),
	       COALESCE(t.nro_documento, ''), t.quantidade, t.valor_unitario
	FROM transacao t
	LEFT JOIN operacao_estoque o ON o.id_operacao_estoque = t.id_operacao_estoque`

// MovementRepo lectura directa de movimientos desde la base del backend.
type MovementRepo struct {
	q   Querier
	log *logger.Logger
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier, log *logger.Logger) *MovementRepo {
	if log == nil {
		log = logger.Nop()
	}
	return &MovementRepo{q: q, log: log.Component("postgres")}
}

// historyQuery arma la consulta por producto. Las fechas son días calendario inclusivos:
// el límite superior se expresa como "< To + 1 día".
func historyQuery(productID string, r entity.DateRange) (string, []any) {
	var sb strings.Builder
	sb.WriteString(movementSelect)
	sb.WriteString(" WHERE t.id_produto::text = $1")
	args := []any{productID}
	pos := 2
	if r.From != nil {
		fmt.Fprintf(&sb, " AND t.data_transacao >= $%d", pos)
		args = append(args, truncateDay(*r.From))
		pos++
	}
	if r.To != nil {
		fmt.Fprintf(&sb, " AND t.data_transacao < $%d", pos)
		args = append(args, truncateDay(*r.To).AddDate(0, 0, 1))
	}
	sb.WriteString(" ORDER BY t.data_transacao ASC, t.id_transacao ASC")
	return sb.String(), args
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ListByProduct lista movimientos de un producto en un rango opcional de fechas.
func (r *MovementRepo) ListByProduct(ctx context.Context, productID string, dr entity.DateRange) ([]*entity.MovementRecord, error) {
	query, args := historyQuery(productID, dr)
	return r.list(ctx, "list by product", query, args...)
}

// ListByDocument lista los movimientos de un documento.
func (r *MovementRepo) ListByDocument(ctx context.Context, documentNumber string) ([]*entity.MovementRecord, error) {
	query := movementSelect + " WHERE t.nro_documento = $1 ORDER BY t.data_transacao ASC, t.id_transacao ASC"
	return r.list(ctx, "list by document", query, documentNumber)
}

func (r *MovementRepo) list(ctx context.Context, op, query string, args ...any) ([]*entity.MovementRecord, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var list []*entity.MovementRecord
	for rows.Next() {
		var (
			m         entity.MovementRecord
			qty       decimal.NullDecimal
			unitValue decimal.NullDecimal
		)
		if err := rows.Scan(&m.ProductID, &m.Timestamp, &m.OperationLabel, &m.DocumentNumber, &qty, &unitValue); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		m.Operation = entity.ParseOperation(m.OperationLabel)
		if qty.Valid {
			m.Quantity = qty.Decimal
		}
		m.UnitValue = unitValue
		if !m.Operation.Known() {
			r.log.Warn().Str("tipo_operacao", m.OperationLabel).Str("documento", m.DocumentNumber).
				Msg("tipo de operación desconocido; se trata como salida")
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
