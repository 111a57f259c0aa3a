package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/BielosX/wombat/poke-browser/src/view"
)

func component(render func(h *html)) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &html{w: w}
		render(h)
		return h.err
	})
}

// List renders the cards or the one-line message of the list container.
func List(vm view.List) templ.Component {
	return component(func(h *html) { writeList(h, vm) })
}

func writeList(h *html, vm view.List) {
	if vm.Message != "" {
		h.element("p", func() { h.flag("data-failed", vm.Failed) }, func() { h.text(vm.Message) })
		return
	}
	for _, card := range vm.Cards {
		h.element("div", func() {
			h.attr("class", "pokemon-card")
			h.attr("data-name", card.Name)
			h.attr("hx-get", "/pokemon/"+card.Id)
			h.attr("hx-target", "#"+DetailId)
		}, func() {
			h.element("h3", nil, func() { h.text(card.DisplayName) })
			h.raw("<img")
			h.url("src", card.Sprite)
			h.attr("alt", card.Name)
			h.raw(">")
			h.element("p", nil, func() {
				h.raw("<strong>Type:</strong> ")
				h.text(card.Types)
			})
		})
	}
}

// Pagination renders the controls. With oob set the container itself is
// emitted so htmx swaps it out of band next to a list fragment.
func Pagination(vm view.Pagination, oob bool) templ.Component {
	return component(func(h *html) {
		if !oob {
			writePagination(h, vm)
			return
		}
		writePaginationOutOfBand(h, vm)
	})
}

func writePaginationOutOfBand(h *html, vm view.Pagination) {
	h.element("div", func() {
		h.attr("id", PaginationId)
		h.attr("hx-swap-oob", "true")
	}, func() { writePagination(h, vm) })
}

func writePagination(h *html, vm view.Pagination) {
	if !vm.Visible {
		return
	}
	h.element("button", func() {
		h.attr("hx-post", "/pokemon/prev")
		h.attr("hx-target", "#"+ListId)
		h.flag("disabled", vm.PrevDisabled)
	}, func() { h.text("Previous") })
	h.element("button", func() {
		h.attr("hx-post", "/pokemon/next")
		h.attr("hx-target", "#"+ListId)
	}, func() { h.text("Next") })
	h.element("span", func() { h.attr("class", "offset") }, func() {
		h.text("from #" + strconv.Itoa(int(vm.Offset)+1))
	})
}

// SearchInput renders the search field, out of band when oob is set.
func SearchInput(query string, oob bool) templ.Component {
	return component(func(h *html) { writeSearchInput(h, query, oob) })
}

func writeSearchInput(h *html, query string, oob bool) {
	h.raw("<input")
	h.attr("id", SearchInputId)
	h.attr("name", "q")
	h.attr("type", "search")
	h.attr("placeholder", "Search by name")
	h.attr("value", query)
	if oob {
		h.attr("hx-swap-oob", "true")
	}
	h.raw(">")
}

// Detail renders the detail container.
func Detail(vm view.Detail) templ.Component {
	return component(func(h *html) {
		if vm.Message != "" {
			h.element("p", nil, func() { h.text(vm.Message) })
			return
		}
		h.element("h2", nil, func() { h.text(vm.DisplayName) })
		h.raw("<img")
		h.url("src", vm.Sprite)
		h.attr("alt", vm.Name)
		h.raw(">")
		h.element("p", nil, func() {
			h.raw("<strong>Type:</strong> ")
			h.text(vm.Types)
		})
		h.element("p", nil, func() {
			h.raw("<strong>Height:</strong> ")
			h.text(vm.Height)
		})
		h.element("p", nil, func() {
			h.raw("<strong>Weight:</strong> ")
			h.text(vm.Weight)
		})
		h.element("p", nil, func() { h.raw("<strong>Stats:</strong>") })
		h.element("ul", nil, func() {
			for _, stat := range vm.Stats {
				h.element("li", nil, func() {
					h.text(stat.Name + ": " + strconv.Itoa(int(stat.Value)))
				})
			}
		})
	})
}

// ListWithPagination is the response to every list or search action.
func ListWithPagination(list view.List, pagination view.Pagination) templ.Component {
	return templ.Join(List(list), Pagination(pagination, true))
}
