package browser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BielosX/wombat/poke-browser/src/pokeapi"
)

// blockingCatalog holds every call until the matching release channel is
// closed, so tests control the order in which responses arrive.
type blockingCatalog struct {
	started chan int32
	release map[int32]chan struct{}
}

func newBlockingCatalog(offsets ...int32) *blockingCatalog {
	c := &blockingCatalog{
		started: make(chan int32, len(offsets)),
		release: map[int32]chan struct{}{},
	}
	for _, o := range offsets {
		c.release[o] = make(chan struct{})
	}
	return c
}

func (c *blockingCatalog) ListPokemons(ctx context.Context, limit, offset int32) ([]pokeapi.PokemonResponse, error) {
	c.started <- offset
	<-c.release[offset]
	return []pokeapi.PokemonResponse{{Id: offset + 1}}, nil
}

func (c *blockingCatalog) ListAllSummaries(ctx context.Context, limit int32) ([]pokeapi.PokemonListResultEntry, error) {
	return nil, nil
}

func (c *blockingCatalog) FetchDetails(ctx context.Context, entries []pokeapi.PokemonListResultEntry) ([]pokeapi.PokemonResponse, error) {
	return nil, nil
}

func (c *blockingCatalog) GetPokemonById(ctx context.Context, id string) (pokeapi.PokemonResponse, error) {
	offset := int32(len(id))
	c.started <- offset
	<-c.release[offset]
	return pokeapi.PokemonResponse{Name: id}, nil
}

func TestStalePageIsDiscarded(t *testing.T) {
	catalog := newBlockingCatalog(0, 10)
	b := New(catalog, zap.NewNop().Sugar())
	ctx := context.Background()

	type outcome struct {
		result PageResult
		err    error
	}
	stale := make(chan outcome, 1)
	go func() {
		result, err := b.ListPage(ctx, 0)
		stale <- outcome{result, err}
	}()
	require.Equal(t, int32(0), <-catalog.started)

	fresh := make(chan outcome, 1)
	go func() {
		result, err := b.NextPage(ctx)
		fresh <- outcome{result, err}
	}()
	require.Equal(t, int32(10), <-catalog.started)

	close(catalog.release[10])
	got := <-fresh
	require.NoError(t, got.err)
	assert.Equal(t, int32(10), got.result.Offset)

	close(catalog.release[0])
	old := <-stale
	assert.ErrorIs(t, old.err, ErrSuperseded)
	assert.Equal(t, int32(10), b.Offset())
}

func TestStaleDetailIsDiscarded(t *testing.T) {
	catalog := newBlockingCatalog(1, 2)
	b := New(catalog, zap.NewNop().Sugar())
	ctx := context.Background()

	stale := make(chan error, 1)
	go func() {
		_, err := b.ShowDetail(ctx, "a")
		stale <- err
	}()
	require.Equal(t, int32(1), <-catalog.started)

	fresh := make(chan DetailResult, 1)
	go func() {
		result, _ := b.ShowDetail(ctx, "bb")
		fresh <- result
	}()
	require.Equal(t, int32(2), <-catalog.started)

	close(catalog.release[1])
	assert.ErrorIs(t, <-stale, ErrSuperseded)
	close(catalog.release[2])
	assert.Equal(t, "bb", (<-fresh).Pokemon.Name)
}

func TestDetailDoesNotSupersedeList(t *testing.T) {
	catalog := newBlockingCatalog(0, 1)
	b := New(catalog, zap.NewNop().Sugar())
	ctx := context.Background()

	list := make(chan error, 1)
	go func() {
		_, err := b.Current(ctx)
		list <- err
	}()
	require.Equal(t, int32(0), <-catalog.started)

	close(catalog.release[1])
	_, err := b.ShowDetail(ctx, "x")
	require.NoError(t, err)

	close(catalog.release[0])
	assert.NoError(t, <-list)
}

func TestSnapshotDoesNotSupersedeList(t *testing.T) {
	catalog := newBlockingCatalog(10)
	b := New(catalog, zap.NewNop().Sugar())
	ctx := context.Background()

	pending := make(chan error, 1)
	go func() {
		_, err := b.NextPage(ctx)
		pending <- err
	}()
	require.Equal(t, int32(10), <-catalog.started)

	done := make(chan PageResult, 1)
	go func() { done <- b.Snapshot(ctx) }()
	require.Equal(t, int32(10), <-catalog.started)

	close(catalog.release[10])
	assert.Equal(t, int32(10), (<-done).Offset)
	assert.NoError(t, <-pending)
}
