package erpclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var _ repository.MovementQuery = (*MovementQuery)(nil)

const dateLayout = "2006-01-02"

// MovementQuery adaptador de /transacao/* del backend.
type MovementQuery struct {
	c *Client
}

// NewMovementQuery construye el adaptador.
func NewMovementQuery(c *Client) *MovementQuery {
	return &MovementQuery{c: c}
}

// ListByProduct GET /transacao/produto?id=&dataInicio=&dataFim= (fechas YYYY-MM-DD, inclusivas).
func (q *MovementQuery) ListByProduct(ctx context.Context, productID string, r entity.DateRange) ([]*entity.MovementRecord, error) {
	params := url.Values{"id": {productID}}
	if r.From != nil {
		params.Set("dataInicio", r.From.Format(dateLayout))
	}
	if r.To != nil {
		params.Set("dataFim", r.To.Format(dateLayout))
	}
	list, _, err := fetch[[]transacaoWire](ctx, q.c, http.MethodGet, "/transacao/produto", params, nil)
	if err != nil {
		return nil, err
	}
	return q.toRecords(list, productID), nil
}

// ListByDocument GET /transacao/documento?nroDocumento=
func (q *MovementQuery) ListByDocument(ctx context.Context, documentNumber string) ([]*entity.MovementRecord, error) {
	params := url.Values{"nroDocumento": {documentNumber}}
	list, _, err := fetch[[]transacaoWire](ctx, q.c, http.MethodGet, "/transacao/documento", params, nil)
	if err != nil {
		return nil, err
	}
	return q.toRecords(list, ""), nil
}

// toRecords clasifica cada etiqueta al ingresar; etiquetas desconocidas y fechas ilegibles se registran.
func (q *MovementQuery) toRecords(list []transacaoWire, productID string) []*entity.MovementRecord {
	out := make([]*entity.MovementRecord, 0, len(list))
	for i := range list {
		rec, tsOK := list[i].toEntity(productID, q.c.loc)
		if !tsOK {
			q.c.log.Warn().
				Str("product_id", rec.ProductID).
				Str("documento", rec.DocumentNumber).
				RawJSON("dataTransacao", nonNullRaw(list[i].DataTransacao)).
				Msg("dataTransacao ilegible; se ordena al inicio")
		}
		if !rec.Operation.Known() {
			q.c.log.Warn().
				Str("product_id", rec.ProductID).
				Str("tipo_operacao", rec.OperationLabel).
				Msg("tipo de operación desconocido; se trata como salida")
		}
		out = append(out, rec)
	}
	return out
}

func nonNullRaw(raw []byte) []byte {
	if len(raw) == 0 {
		return []byte("null")
	}
	return raw
}
