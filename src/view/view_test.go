package view

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BielosX/wombat/poke-browser/src/browser"
	"github.com/BielosX/wombat/poke-browser/src/pokeapi"
)

func bulbasaur() pokeapi.PokemonResponse {
	return pokeapi.PokemonResponse{
		Id:      1,
		Name:    "bulbasaur",
		Height:  7,
		Weight:  69,
		Sprites: pokeapi.PokemonSprites{FrontDefault: "https://img.example/1.png"},
		Types: []pokeapi.PokemonType{
			{Slot: 1, Type: pokeapi.PokemonTypeEntry{Name: "grass"}},
			{Slot: 2, Type: pokeapi.PokemonTypeEntry{Name: "poison"}},
		},
		Stats: []pokeapi.PokemonStat{
			{BaseStat: 45, Stat: pokeapi.PokemonStatEntry{Name: "hp"}},
			{BaseStat: 49, Stat: pokeapi.PokemonStatEntry{Name: "attack"}},
			{BaseStat: 65, Stat: pokeapi.PokemonStatEntry{Name: "special-attack"}},
		},
	}
}

func TestCapitalize(t *testing.T) {
	tests := map[string]string{
		"bulbasaur": "Bulbasaur",
		"mr-mime":   "Mr-mime",
		"Pikachu":   "Pikachu",
		"élan":      "Élan",
		"":          "",
	}
	for in, want := range tests {
		assert.Equal(t, want, Capitalize(in), in)
	}
}

func TestFormatTenths(t *testing.T) {
	assert.Equal(t, "0.7", FormatTenths(7))
	assert.Equal(t, "6.9", FormatTenths(69))
	assert.Equal(t, "10", FormatTenths(100))
	assert.Equal(t, "0", FormatTenths(0))
	assert.Equal(t, "999.9", FormatTenths(9999))
}

func TestNewCardKeepsRawName(t *testing.T) {
	card := NewCard(bulbasaur())
	assert.Equal(t, Card{
		Id:          "1",
		Name:        "bulbasaur",
		DisplayName: "Bulbasaur",
		Sprite:      "https://img.example/1.png",
		Types:       "grass, poison",
	}, card)
}

func TestNewListMessages(t *testing.T) {
	failed := NewList(browser.PageResult{Status: browser.StatusFailed, Err: errors.New("boom")})
	assert.True(t, failed.Failed)
	assert.Equal(t, MessageListFailed, failed.Message)

	noMatches := NewList(browser.PageResult{Status: browser.StatusEmpty, Query: "xyz"})
	assert.False(t, noMatches.Failed)
	assert.Equal(t, MessageNoMatches, noMatches.Message)

	pastEnd := NewList(browser.PageResult{Status: browser.StatusEmpty, Offset: 2000})
	assert.Equal(t, MessageNoMore, pastEnd.Message)

	loaded := NewList(browser.PageResult{Pokemons: []pokeapi.PokemonResponse{bulbasaur()}})
	assert.Empty(t, loaded.Message)
	assert.Len(t, loaded.Cards, 1)
}

func TestNewPagination(t *testing.T) {
	assert.Equal(t, Pagination{Visible: true, PrevDisabled: true}, NewPagination(browser.PageResult{}))
	assert.Equal(t, Pagination{Visible: true, Offset: 20}, NewPagination(browser.PageResult{Offset: 20}))
	assert.Equal(t, Pagination{}, NewPagination(browser.PageResult{Offset: 20, Query: "char"}))
}

func TestNewDetail(t *testing.T) {
	detail := NewDetail(browser.DetailResult{Status: browser.StatusLoaded, Pokemon: bulbasaur()})
	assert.Equal(t, "Bulbasaur", detail.DisplayName)
	assert.Equal(t, "grass, poison", detail.Types)
	assert.Equal(t, "0.7 m", detail.Height)
	assert.Equal(t, "6.9 kg", detail.Weight)
	assert.Equal(t, []Stat{{"hp", 45}, {"attack", 49}, {"special-attack", 65}}, detail.Stats)
	assert.Empty(t, detail.Message)

	failed := NewDetail(browser.DetailResult{Status: browser.StatusFailed})
	assert.Equal(t, Detail{Message: MessageDetailFailed}, failed)
}
