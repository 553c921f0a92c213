package kardex

import (
	"context"
	"sync"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// Loader carga un kardex; LoadUseCase lo implementa.
type Loader interface {
	Load(ctx context.Context, productID string, r entity.DateRange) (*dto.KardexResponse, error)
}

// View estado instalado del kardex. Con Err != nil el kardex es indeterminado y Response es nil.
type View struct {
	Seq       uint64
	ProductID string
	Range     entity.DateRange
	Response  *dto.KardexResponse
	Err       error
}

// Tracker mantiene la vista vigente de un kardex que se refresca al cambiar producto o rango.
// Cada Refresh recibe un número de secuencia; una respuesta que llega después de otra más nueva se descarta.
type Tracker struct {
	loader Loader

	mu   sync.Mutex
	next uint64
	view View
}

// NewTracker construye el tracker.
func NewTracker(loader Loader) *Tracker {
	return &Tracker{loader: loader}
}

// Refresh carga el kardex y lo instala si la petición sigue siendo la última emitida.
// Devuelve la vista resultante y si fue instalada.
func (t *Tracker) Refresh(ctx context.Context, productID string, r entity.DateRange) (View, bool) {
	t.mu.Lock()
	t.next++
	seq := t.next
	t.mu.Unlock()

	resp, err := t.loader.Load(ctx, productID, r)
	v := View{Seq: seq, ProductID: productID, Range: r, Response: resp, Err: err}
	if err != nil {
		v.Response = nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if seq != t.next {
		return v, false
	}
	t.view = v
	return v, true
}

// Current devuelve la vista instalada (cero si nunca se refrescó).
func (t *Tracker) Current() View {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.view
}
