// Package pokeapitest runs an in-process fake of the PokeAPI pokemon
// endpoints for tests.
package pokeapitest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/BielosX/wombat/poke-browser/src/pokeapi"
)

type Server struct {
	*httptest.Server

	mu        sync.Mutex
	pokemons  []pokeapi.PokemonResponse
	listFail  int
	failIds   map[int32]int
	gates     map[int32]chan struct{}
	listCalls []string
}

// NewServer serves pokemons under /api/v2/pokemon. Detail, species and
// generation urls in the list payload point back at the same server.
func NewServer(t testing.TB, pokemons ...pokeapi.PokemonResponse) *Server {
	t.Helper()
	s := &Server{
		pokemons: pokemons,
		failIds:  map[int32]int{},
		gates:    map[int32]chan struct{}{},
	}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v2/pokemon", s.handleList)
	mux.HandleFunc("GET /api/v2/pokemon/{id...}", s.handleDetail)
	mux.HandleFunc("GET /api/v2/pokemon-species/{id...}", s.handleSpecies)
	mux.HandleFunc("GET /api/v2/generation/{id...}", s.handleGeneration)
	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Close)
	return s
}

// BaseUrl is the list endpoint to hand to pokeapi.WithBaseUrl.
func (s *Server) BaseUrl() string {
	return s.URL + "/api/v2/pokemon"
}

// FailList makes the list endpoint answer with status.
func (s *Server) FailList(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listFail = status
}

// FailDetail makes the detail endpoint of id answer with status.
func (s *Server) FailDetail(id int32, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failIds[id] = status
}

// Hold blocks detail requests for id until the returned func is called.
func (s *Server) Hold(id int32) (release func()) {
	gate := make(chan struct{})
	s.mu.Lock()
	s.gates[id] = gate
	s.mu.Unlock()
	var once sync.Once
	return func() {
		once.Do(func() { close(gate) })
	}
}

// ListQueries returns the raw query strings the list endpoint received.
func (s *Server) ListQueries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.listCalls...)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.listCalls = append(s.listCalls, r.URL.RawQuery)
	fail := s.listFail
	pokemons := s.pokemons
	s.mu.Unlock()
	if fail != 0 {
		http.Error(w, "list failure", fail)
		return
	}
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		limit = 20
	}
	result := pokeapi.PokemonListResult{Count: int32(len(pokemons)), Results: []pokeapi.PokemonListResultEntry{}}
	for i := offset; i < len(pokemons) && i < offset+limit; i++ {
		result.Results = append(result.Results, pokeapi.PokemonListResultEntry{
			Name: pokemons[i].Name,
			Url:  fmt.Sprintf("%s/%d/", s.BaseUrl(), pokemons[i].Id),
		})
	}
	writeJSON(w, result)
}

func (s *Server) handleDetail(w http.ResponseWriter, r *http.Request) {
	key := strings.TrimSuffix(r.PathValue("id"), "/")
	pokemon, ok := s.find(key)
	if !ok {
		http.NotFound(w, r)
		return
	}
	s.mu.Lock()
	gate := s.gates[pokemon.Id]
	fail := s.failIds[pokemon.Id]
	s.mu.Unlock()
	if gate != nil {
		select {
		case <-gate:
		case <-r.Context().Done():
			return
		}
	}
	if fail != 0 {
		http.Error(w, "detail failure", fail)
		return
	}
	if pokemon.Species.Url == "" {
		pokemon.Species = pokeapi.PokemonResponseSpecies{
			Name: pokemon.Name,
			Url:  fmt.Sprintf("%s/api/v2/pokemon-species/%d/", s.URL, pokemon.Id),
		}
	}
	writeJSON(w, pokemon)
}

// Species of pokemon n belong to generation n/1000 + 1, enough to tell
// generations apart in tests.
func (s *Server) handleSpecies(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(strings.TrimSuffix(r.PathValue("id"), "/"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, pokeapi.PokemonSpecies{Generation: pokeapi.PokemonSpeciesGeneration{
		Url: fmt.Sprintf("%s/api/v2/generation/%d/", s.URL, id/1000+1),
	}})
}

func (s *Server) handleGeneration(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(strings.TrimSuffix(r.PathValue("id"), "/"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, pokeapi.PokemonGeneration{Id: int32(id)})
}

func (s *Server) find(key string) (pokeapi.PokemonResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.pokemons {
		if strconv.Itoa(int(p.Id)) == key || p.Name == key {
			return p, true
		}
	}
	return pokeapi.PokemonResponse{}, false
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// Pokemon builds a minimal detail record.
func Pokemon(id int32, name string, types ...string) pokeapi.PokemonResponse {
	p := pokeapi.PokemonResponse{
		Id:      id,
		Name:    name,
		Height:  id,
		Weight:  id * 10,
		Sprites: pokeapi.PokemonSprites{FrontDefault: fmt.Sprintf("https://img.example/%d.png", id)},
		Stats: []pokeapi.PokemonStat{
			{BaseStat: 45, Stat: pokeapi.PokemonStatEntry{Name: "hp"}},
			{BaseStat: 49, Stat: pokeapi.PokemonStatEntry{Name: "attack"}},
		},
	}
	for i, t := range types {
		p.Types = append(p.Types, pokeapi.PokemonType{Slot: int32(i + 1), Type: pokeapi.PokemonTypeEntry{Name: t}})
	}
	return p
}

// Catalog returns n pokemons with ids 1..n named "pokemon-<id>".
func Catalog(n int) []pokeapi.PokemonResponse {
	pokemons := make([]pokeapi.PokemonResponse, 0, n)
	for i := 1; i <= n; i++ {
		pokemons = append(pokemons, Pokemon(int32(i), fmt.Sprintf("pokemon-%d", i), "normal"))
	}
	return pokemons
}
