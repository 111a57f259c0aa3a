// Package view maps catalog results to render-ready view models. Nothing in
// here knows about HTML.
package view

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/BielosX/wombat/poke-browser/src/browser"
	"github.com/BielosX/wombat/poke-browser/src/pokeapi"
)

const (
	MessageListFailed   = "Could not load the Pokémon list."
	MessageNoMatches    = "No Pokémon matched your search."
	MessageNoMore       = "No more Pokémon."
	MessageDetailFailed = "Could not load Pokémon details."
)

var upper = cases.Upper(language.Und)

// Capitalize upper-cases the first character and leaves the rest untouched.
func Capitalize(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return upper.String(string(r)) + name[size:]
}

// FormatTenths renders n/10 without trailing zeros: 7 -> "0.7", 100 -> "10".
func FormatTenths(n int32) string {
	return strconv.FormatFloat(float64(n)/10, 'f', -1, 64)
}

type Card struct {
	Id          string
	Name        string
	DisplayName string
	Sprite      string
	Types       string
}

func NewCard(p pokeapi.PokemonResponse) Card {
	return Card{
		Id:          strconv.Itoa(int(p.Id)),
		Name:        p.Name,
		DisplayName: Capitalize(p.Name),
		Sprite:      p.Sprites.FrontDefault,
		Types:       strings.Join(p.TypeNames(), ", "),
	}
}

type List struct {
	Cards []Card
	// Message replaces the cards when the list could not be shown.
	Message string
	Failed  bool
}

func NewList(result browser.PageResult) List {
	switch result.Status {
	case browser.StatusFailed:
		return List{Message: MessageListFailed, Failed: true}
	case browser.StatusEmpty:
		if result.IsSearch() {
			return List{Message: MessageNoMatches}
		}
		return List{Message: MessageNoMore}
	}
	cards := make([]Card, 0, len(result.Pokemons))
	for _, p := range result.Pokemons {
		cards = append(cards, NewCard(p))
	}
	return List{Cards: cards}
}

type Pagination struct {
	Visible      bool
	PrevDisabled bool
	Offset       int32
}

// NewPagination hides the controls for search results. Failed pages keep
// them so the user can move away from the failing offset.
func NewPagination(result browser.PageResult) Pagination {
	if result.IsSearch() {
		return Pagination{}
	}
	return Pagination{
		Visible:      true,
		PrevDisabled: result.Offset == 0,
		Offset:       result.Offset,
	}
}

type Stat struct {
	Name  string
	Value int32
}

type Detail struct {
	Id          string
	Name        string
	DisplayName string
	Sprite      string
	Types       string
	Height      string
	Weight      string
	Stats       []Stat
	Message     string
}

func NewDetail(result browser.DetailResult) Detail {
	if result.Status != browser.StatusLoaded {
		return Detail{Message: MessageDetailFailed}
	}
	p := result.Pokemon
	stats := make([]Stat, 0, len(p.Stats))
	for _, s := range p.Stats {
		stats = append(stats, Stat{Name: s.Stat.Name, Value: s.BaseStat})
	}
	return Detail{
		Id:          strconv.Itoa(int(p.Id)),
		Name:        p.Name,
		DisplayName: Capitalize(p.Name),
		Sprite:      p.Sprites.FrontDefault,
		Types:       strings.Join(p.TypeNames(), ", "),
		Height:      FormatTenths(p.Height) + " m",
		Weight:      FormatTenths(p.Weight) + " kg",
		Stats:       stats,
	}
}

// Page is everything the full document shows on first load.
type Page struct {
	List       List
	Pagination Pagination
	Query      string
	// Deferred pages load the list from the browser after the first paint.
	Deferred bool
}

func NewPage(result browser.PageResult) Page {
	return Page{
		List:       NewList(result),
		Pagination: NewPagination(result),
		Query:      result.Query,
	}
}
