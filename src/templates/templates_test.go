package templates

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BielosX/wombat/poke-browser/src/view"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, c.Render(context.Background(), &b))
	return b.String()
}

func TestListRendersCards(t *testing.T) {
	got := render(t, List(view.List{Cards: []view.Card{
		{Id: "1", Name: "bulbasaur", DisplayName: "Bulbasaur", Sprite: "https://img.example/1.png", Types: "grass, poison"},
		{Id: "4", Name: "charmander", DisplayName: "Charmander", Sprite: "https://img.example/4.png", Types: "fire"},
	}}))
	assert.Equal(t, 2, strings.Count(got, `class="pokemon-card"`))
	assert.Contains(t, got, `hx-get="/pokemon/1"`)
	assert.Contains(t, got, `<h3>Bulbasaur</h3>`)
	assert.Contains(t, got, `alt="bulbasaur"`)
	assert.Contains(t, got, `<strong>Type:</strong> grass, poison`)
	assert.Less(t, strings.Index(got, "Bulbasaur"), strings.Index(got, "Charmander"))
}

func TestListRendersMessage(t *testing.T) {
	got := render(t, List(view.List{Message: view.MessageListFailed, Failed: true}))
	assert.Equal(t, `<p data-failed>Could not load the Pokémon list.</p>`, got)
}

func TestListEscapesText(t *testing.T) {
	got := render(t, List(view.List{Cards: []view.Card{
		{Id: "1", Name: `<script>`, DisplayName: `<script>`, Sprite: "javascript:alert(1)"},
	}}))
	assert.NotContains(t, got, "<script>")
	assert.NotContains(t, got, "javascript:")
}

func TestPagination(t *testing.T) {
	first := render(t, Pagination(view.Pagination{Visible: true, PrevDisabled: true}, false))
	assert.Contains(t, first, `hx-post="/pokemon/prev" hx-target="#pokemonList" disabled>`)
	assert.Contains(t, first, `hx-post="/pokemon/next"`)

	later := render(t, Pagination(view.Pagination{Visible: true, Offset: 10}, true))
	assert.True(t, strings.HasPrefix(later, `<div id="pagination" hx-swap-oob="true">`))
	assert.NotContains(t, later, "disabled")
	assert.Contains(t, later, "from #11")

	hidden := render(t, Pagination(view.Pagination{}, true))
	assert.Equal(t, `<div id="pagination" hx-swap-oob="true"></div>`, hidden)
}

func TestDetail(t *testing.T) {
	got := render(t, Detail(view.Detail{
		Name:        "bulbasaur",
		DisplayName: "Bulbasaur",
		Sprite:      "https://img.example/1.png",
		Types:       "grass, poison",
		Height:      "0.7 m",
		Weight:      "6.9 kg",
		Stats:       []view.Stat{{Name: "hp", Value: 45}, {Name: "attack", Value: 49}},
	}))
	assert.Contains(t, got, "<h2>Bulbasaur</h2>")
	assert.Contains(t, got, "<strong>Height:</strong> 0.7 m")
	assert.Contains(t, got, "<strong>Weight:</strong> 6.9 kg")
	assert.Contains(t, got, "<ul><li>hp: 45</li><li>attack: 49</li></ul>")
}

func TestDetailMessage(t *testing.T) {
	got := render(t, Detail(view.Detail{Message: view.MessageDetailFailed}))
	assert.Equal(t, "<p>Could not load Pokémon details.</p>", got)
}

func TestPageHasAllContainers(t *testing.T) {
	got := render(t, Page(view.Page{
		List:       view.List{Message: view.MessageNoMore},
		Pagination: view.Pagination{Visible: true, PrevDisabled: true},
	}))
	for _, id := range []string{ListId, PaginationId, DetailId, SearchInputId} {
		assert.Contains(t, got, `id="`+id+`"`)
	}
	assert.Contains(t, got, htmxScript)
}

func TestSearchInputOutOfBand(t *testing.T) {
	got := render(t, SearchInput("", true))
	assert.Contains(t, got, `value=""`)
	assert.Contains(t, got, `hx-swap-oob="true"`)
}

func TestDeferredPageLoadsListAfterPaint(t *testing.T) {
	got := render(t, Page(view.Page{Deferred: true}))
	assert.Contains(t, got, `<div id="pokemonList" hx-get="/pokemon" hx-trigger="load"></div>`)
}

func TestListWithPaginationJoinsListAndOutOfBandControls(t *testing.T) {
	got := render(t, ListWithPagination(
		view.List{Message: view.MessageNoMore},
		view.Pagination{Visible: true, Offset: 30},
	))
	assert.True(t, strings.HasPrefix(got, "<p>No more Pokémon.</p><div id=\"pagination\" hx-swap-oob=\"true\">"))
	assert.Contains(t, got, "from #31")
}
