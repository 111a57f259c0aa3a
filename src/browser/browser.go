// Package browser holds the catalog browsing state of one user: the page
// cursor, the active search and the request generations that decide which
// in-flight result is still worth rendering.
package browser

import (
	"context"
	"errors"
	"math"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/BielosX/wombat/poke-browser/src/pokeapi"
)

// ErrSuperseded is returned when a newer action on the same container began
// while the request was in flight. Its result must not be rendered.
var ErrSuperseded = errors.New("superseded by a newer request")

const (
	DefaultPageSize    int32 = 10
	DefaultSearchLimit int32 = 1000
)

type Status int

const (
	StatusLoaded Status = iota
	StatusEmpty
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoaded:
		return "loaded"
	case StatusEmpty:
		return "empty"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// Catalog is the subset of pokeapi.Client the browser needs.
type Catalog interface {
	ListPokemons(ctx context.Context, limit, offset int32) ([]pokeapi.PokemonResponse, error)
	ListAllSummaries(ctx context.Context, limit int32) ([]pokeapi.PokemonListResultEntry, error)
	FetchDetails(ctx context.Context, entries []pokeapi.PokemonListResultEntry) ([]pokeapi.PokemonResponse, error)
	GetPokemonById(ctx context.Context, id string) (pokeapi.PokemonResponse, error)
}

type PageResult struct {
	Status   Status
	Pokemons []pokeapi.PokemonResponse
	Offset   int32
	PageSize int32
	// Query is set for search results, which have no pagination.
	Query string
	Err   error
}

func (r PageResult) IsSearch() bool {
	return r.Query != ""
}

type DetailResult struct {
	Status  Status
	Pokemon pokeapi.PokemonResponse
	Err     error
}

type Browser struct {
	catalog     Catalog
	sugar       *zap.SugaredLogger
	pageSize    int32
	searchLimit int32

	mu               sync.Mutex
	offset           int32
	listGeneration   uint64
	detailGeneration uint64
}

type Option func(*Browser)

func WithPageSize(size int32) Option {
	return func(b *Browser) {
		if size > 0 {
			b.pageSize = size
		}
	}
}

func WithSearchLimit(limit int32) Option {
	return func(b *Browser) {
		if limit > 0 {
			b.searchLimit = limit
		}
	}
}

func New(catalog Catalog, sugar *zap.SugaredLogger, opts ...Option) *Browser {
	b := &Browser{
		catalog:     catalog,
		sugar:       sugar,
		pageSize:    DefaultPageSize,
		searchLimit: DefaultSearchLimit,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Browser) PageSize() int32 {
	return b.pageSize
}

func (b *Browser) Offset() int32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.offset
}

// beginList moves the cursor with move and opens a new list generation.
func (b *Browser) beginList(move func(offset int32) int32) (int32, uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if move != nil {
		b.offset = max(move(b.offset), 0)
	}
	b.listGeneration++
	return b.offset, b.listGeneration
}

func (b *Browser) listIsCurrent(generation uint64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.listGeneration == generation
}

// ListPage lists the page starting at offset and makes it the current page.
func (b *Browser) ListPage(ctx context.Context, offset int32) (PageResult, error) {
	return b.list(ctx, func(int32) int32 { return offset })
}

// Current re-lists the page at the current offset.
func (b *Browser) Current(ctx context.Context) (PageResult, error) {
	return b.list(ctx, nil)
}

// NextPage advances by one page. There is no upper bound other than the int32
// range; a page past the end of the catalog is empty.
func (b *Browser) NextPage(ctx context.Context) (PageResult, error) {
	return b.list(ctx, func(offset int32) int32 {
		if offset > math.MaxInt32-b.pageSize {
			return offset
		}
		return offset + b.pageSize
	})
}

// PrevPage goes back one page; at offset 0 it re-lists the first page.
func (b *Browser) PrevPage(ctx context.Context) (PageResult, error) {
	return b.list(ctx, func(offset int32) int32 {
		if offset > 0 {
			return offset - b.pageSize
		}
		return offset
	})
}

// Reset returns to the first page.
func (b *Browser) Reset(ctx context.Context) (PageResult, error) {
	return b.ListPage(ctx, 0)
}

// Snapshot lists the page at the current offset without opening a new list
// generation, so in-flight page and search actions stay current.
func (b *Browser) Snapshot(ctx context.Context) PageResult {
	offset := b.Offset()
	result := PageResult{Offset: offset, PageSize: b.pageSize}
	pokemons, err := b.catalog.ListPokemons(ctx, b.pageSize, offset)
	if err != nil {
		b.sugar.Errorf("Failed to snapshot Pokemons at offset %d: %s", offset, err)
		result.Status = StatusFailed
		result.Err = err
		return result
	}
	result.Pokemons = pokemons
	if len(pokemons) == 0 {
		result.Status = StatusEmpty
	}
	return result
}

func (b *Browser) list(ctx context.Context, move func(offset int32) int32) (PageResult, error) {
	offset, generation := b.beginList(move)
	result := PageResult{Offset: offset, PageSize: b.pageSize}
	pokemons, err := b.catalog.ListPokemons(ctx, b.pageSize, offset)
	if !b.listIsCurrent(generation) {
		b.sugar.Infof("Discarding superseded page at offset %d", offset)
		return PageResult{}, ErrSuperseded
	}
	if err != nil {
		b.sugar.Errorf("Failed to list Pokemons at offset %d: %s", offset, err)
		result.Status = StatusFailed
		result.Err = err
		return result, nil
	}
	result.Pokemons = pokemons
	if len(pokemons) == 0 {
		result.Status = StatusEmpty
	}
	return result, nil
}

// Search shows at most one page of pokemons whose name contains query,
// ignoring case, in catalog order. An empty query shows the current page;
// whitespace is kept, so a blank query matches nothing.
func (b *Browser) Search(ctx context.Context, query string) (PageResult, error) {
	query = strings.ToLower(query)
	if query == "" {
		return b.Current(ctx)
	}
	offset, generation := b.beginList(nil)
	result := PageResult{Offset: offset, PageSize: b.pageSize, Query: query}

	pokemons, err := b.search(ctx, query)
	if !b.listIsCurrent(generation) {
		b.sugar.Infof("Discarding superseded search %q", query)
		return PageResult{}, ErrSuperseded
	}
	if err != nil {
		b.sugar.Errorf("Failed to search Pokemons for %q: %s", query, err)
		result.Status = StatusFailed
		result.Err = err
		return result, nil
	}
	result.Pokemons = pokemons
	if len(pokemons) == 0 {
		result.Status = StatusEmpty
	}
	return result, nil
}

func (b *Browser) search(ctx context.Context, query string) ([]pokeapi.PokemonResponse, error) {
	entries, err := b.catalog.ListAllSummaries(ctx, b.searchLimit)
	if err != nil {
		return nil, err
	}
	matches := FilterByName(entries, query, int(b.pageSize))
	b.sugar.Infof("Search %q matched %d Pokemons", query, len(matches))
	if len(matches) == 0 {
		return nil, nil
	}
	return b.catalog.FetchDetails(ctx, matches)
}

// FilterByName keeps up to limit entries whose name contains query, ignoring
// case. query must already be lower case.
func FilterByName(entries []pokeapi.PokemonListResultEntry, query string, limit int) []pokeapi.PokemonListResultEntry {
	var matches []pokeapi.PokemonListResultEntry
	for _, entry := range entries {
		if len(matches) == limit {
			break
		}
		if strings.Contains(strings.ToLower(entry.Name), query) {
			matches = append(matches, entry)
		}
	}
	return matches
}

// ShowDetail fetches one pokemon by id or name.
func (b *Browser) ShowDetail(ctx context.Context, id string) (DetailResult, error) {
	b.mu.Lock()
	b.detailGeneration++
	generation := b.detailGeneration
	b.mu.Unlock()

	pokemon, err := b.catalog.GetPokemonById(ctx, id)

	b.mu.Lock()
	current := b.detailGeneration == generation
	b.mu.Unlock()
	if !current {
		b.sugar.Infof("Discarding superseded detail of %s", id)
		return DetailResult{}, ErrSuperseded
	}
	if err != nil {
		b.sugar.Errorf("Failed to get Pokemon %s: %s", id, err)
		return DetailResult{Status: StatusFailed, Err: err}, nil
	}
	return DetailResult{Status: StatusLoaded, Pokemon: pokemon}, nil
}
