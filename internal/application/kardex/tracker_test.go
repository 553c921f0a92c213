package kardex_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/kardex"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// gatedLoader bloquea cada carga hasta que el test libera el producto correspondiente.
type gatedLoader struct {
	mu      sync.Mutex
	gates   map[string]chan struct{}
	started chan string
	errs    map[string]error
}

func newGatedLoader(ids ...string) *gatedLoader {
	g := &gatedLoader{gates: map[string]chan struct{}{}, started: make(chan string, len(ids)), errs: map[string]error{}}
	for _, id := range ids {
		g.gates[id] = make(chan struct{})
	}
	return g
}

func (g *gatedLoader) Load(ctx context.Context, productID string, r entity.DateRange) (*dto.KardexResponse, error) {
	g.mu.Lock()
	gate := g.gates[productID]
	err := g.errs[productID]
	g.mu.Unlock()
	g.started <- productID
	<-gate
	if err != nil {
		return nil, err
	}
	return &dto.KardexResponse{Product: dto.ProductResponse{ID: productID}}, nil
}

func TestTracker_DiscardsStaleCompletion(t *testing.T) {
	loader := newGatedLoader("old", "new")
	tr := kardex.NewTracker(loader)

	type result struct {
		view      kardex.View
		installed bool
	}
	oldDone := make(chan result, 1)
	go func() {
		v, ok := tr.Refresh(context.Background(), "old", entity.DateRange{})
		oldDone <- result{v, ok}
	}()
	require.Equal(t, "old", <-loader.started)

	newDone := make(chan result, 1)
	go func() {
		v, ok := tr.Refresh(context.Background(), "new", entity.DateRange{})
		newDone <- result{v, ok}
	}()
	require.Equal(t, "new", <-loader.started)

	close(loader.gates["new"])
	nr := <-newDone
	assert.True(t, nr.installed)

	close(loader.gates["old"])
	or := <-oldDone
	assert.False(t, or.installed)

	cur := tr.Current()
	require.NotNil(t, cur.Response)
	assert.Equal(t, "new", cur.Response.Product.ID)
	assert.Equal(t, nr.view.Seq, cur.Seq)
}

func TestTracker_FailureMakesViewIndeterminate(t *testing.T) {
	loader := newGatedLoader("ok", "bad")
	loader.errs["bad"] = errors.New("backend caído")
	close(loader.gates["ok"])
	close(loader.gates["bad"])
	tr := kardex.NewTracker(loader)

	_, ok := tr.Refresh(context.Background(), "ok", entity.DateRange{})
	<-loader.started
	require.True(t, ok)
	require.NotNil(t, tr.Current().Response)

	v, ok := tr.Refresh(context.Background(), "bad", entity.DateRange{})
	<-loader.started
	assert.True(t, ok)
	assert.Error(t, v.Err)
	assert.Nil(t, tr.Current().Response)
	assert.Equal(t, "bad", tr.Current().ProductID)
}

func TestTracker_CurrentBeforeRefresh(t *testing.T) {
	tr := kardex.NewTracker(newGatedLoader())
	v := tr.Current()
	assert.Zero(t, v.Seq)
	assert.Nil(t, v.Response)
	assert.NoError(t, v.Err)
}
