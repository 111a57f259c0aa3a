package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const DefaultBaseUrl = "https://pokeapi.co/api/v2/pokemon"

type Client struct {
	baseUrl string
	client  *http.Client
	sugar   *zap.SugaredLogger
}

type Option func(*Client)

// WithBaseUrl points the client at another list endpoint, e.g. a test server.
func WithBaseUrl(baseUrl string) Option {
	return func(c *Client) {
		c.baseUrl = strings.TrimRight(baseUrl, "/")
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

func NewClient(sugar *zap.SugaredLogger, opts ...Option) *Client {
	c := &Client{
		baseUrl: DefaultBaseUrl,
		client:  &http.Client{},
		sugar:   sugar,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseUrl() string {
	return c.baseUrl
}

func (c *Client) getAndDecode(ctx context.Context, rawUrl string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawUrl, nil)
	if err != nil {
		return &TransportError{Url: rawUrl, Err: err}
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return &TransportError{Url: rawUrl, Err: err}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.sugar.Warnf("Failed to close response body of %s: %s", rawUrl, err)
		}
	}()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &TransportError{Url: rawUrl, StatusCode: resp.StatusCode}
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(target); err != nil {
		return &TransportError{Url: rawUrl, Err: fmt.Errorf("decode body: %w", err)}
	}
	return nil
}

func (c *Client) listUrl(limit int32, offset *int32) string {
	query := url.Values{}
	if offset != nil {
		query.Set("offset", strconv.Itoa(int(*offset)))
	}
	query.Set("limit", strconv.Itoa(int(limit)))
	return c.baseUrl + "?" + query.Encode()
}

// ListSummaries fetches one page of summaries starting at offset.
func (c *Client) ListSummaries(ctx context.Context, limit, offset int32) ([]PokemonListResultEntry, error) {
	rawUrl := c.listUrl(limit, &offset)
	c.sugar.Infof("Listing Pokemons %s", rawUrl)
	var result PokemonListResult
	if err := c.getAndDecode(ctx, rawUrl, &result); err != nil {
		return nil, err
	}
	return result.Results, nil
}

// ListAllSummaries fetches up to limit summaries from the start of the catalog.
func (c *Client) ListAllSummaries(ctx context.Context, limit int32) ([]PokemonListResultEntry, error) {
	rawUrl := c.listUrl(limit, nil)
	c.sugar.Infof("Listing all Pokemons %s", rawUrl)
	var result PokemonListResult
	if err := c.getAndDecode(ctx, rawUrl, &result); err != nil {
		return nil, err
	}
	return result.Results, nil
}

func (c *Client) GetPokemon(ctx context.Context, rawUrl string) (PokemonResponse, error) {
	c.sugar.Infof("Fetching PokemonResponse %s", rawUrl)
	var pokemon PokemonResponse
	if err := c.getAndDecode(ctx, rawUrl, &pokemon); err != nil {
		return PokemonResponse{}, err
	}
	return pokemon, nil
}

func (c *Client) GetPokemonById(ctx context.Context, id string) (PokemonResponse, error) {
	return c.GetPokemon(ctx, c.baseUrl+"/"+url.PathEscape(id))
}

// FetchDetails resolves every summary concurrently. The result keeps the
// order of entries; the first failure cancels the rest and fails the batch.
func (c *Client) FetchDetails(ctx context.Context, entries []PokemonListResultEntry) ([]PokemonResponse, error) {
	results := make([]PokemonResponse, len(entries))
	group, ctx := errgroup.WithContext(ctx)
	for i, entry := range entries {
		group.Go(func() error {
			pokemon, err := c.GetPokemon(ctx, entry.Url)
			if err != nil {
				return err
			}
			results[i] = pokemon
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (c *Client) ListPokemons(ctx context.Context, limit, offset int32) ([]PokemonResponse, error) {
	entries, err := c.ListSummaries(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return c.FetchDetails(ctx, entries)
}

func (c *Client) GetPokemonGeneration(ctx context.Context, species PokemonResponseSpecies) (int32, error) {
	var pokemonSpecies PokemonSpecies
	if err := c.getAndDecode(ctx, species.Url, &pokemonSpecies); err != nil {
		return 0, err
	}
	var generation PokemonGeneration
	if err := c.getAndDecode(ctx, pokemonSpecies.Generation.Url, &generation); err != nil {
		return 0, err
	}
	return generation.Id, nil
}
