package templates

import (
	"github.com/a-h/templ"

	"github.com/BielosX/wombat/poke-browser/src/view"
)

const htmxScript = "https://unpkg.com/htmx.org@2.0.4"

const style = `body{font-family:sans-serif;margin:2rem}
#pokemonList{display:flex;flex-wrap:wrap;gap:1rem}
.pokemon-card{border:1px solid #ccc;border-radius:8px;padding:.5rem;width:10rem;cursor:pointer;text-align:center}
#pagination{margin:1rem 0}
#pokemonInfo{border-top:1px solid #ccc;margin-top:1rem}`

// Page renders the whole document with the first list already in place.
func Page(vm view.Page) templ.Component {
	return component(func(h *html) {
		h.raw("<!DOCTYPE html>")
		h.element("html", func() { h.attr("lang", "en") }, func() {
			h.element("head", nil, func() {
				h.raw(`<meta charset="utf-8">`)
				h.element("title", nil, func() { h.text("Pokédex") })
				h.element("script", func() { h.attr("src", htmxScript) }, nil)
				h.element("style", nil, func() { h.raw(style) })
			})
			h.element("body", nil, func() {
				h.element("h1", nil, func() { h.text("Pokédex") })
				h.element("form", func() {
					h.attr("hx-get", "/search")
					h.attr("hx-target", "#"+ListId)
					h.attr("hx-sync", "this:replace")
				}, func() {
					writeSearchInput(h, vm.Query, false)
					h.element("button", func() { h.attr("type", "submit") }, func() { h.text("Search") })
					h.element("button", func() {
						h.attr("type", "button")
						h.attr("hx-post", "/pokemon/reset")
						h.attr("hx-target", "#"+ListId)
					}, func() { h.text("Reset") })
				})
				if vm.Deferred {
					h.element("div", func() {
						h.attr("id", ListId)
						h.attr("hx-get", "/pokemon")
						h.attr("hx-trigger", "load")
					}, nil)
					h.element("div", func() { h.attr("id", PaginationId) }, nil)
				} else {
					h.element("div", func() { h.attr("id", ListId) }, func() { writeList(h, vm.List) })
					h.element("div", func() { h.attr("id", PaginationId) }, func() { writePagination(h, vm.Pagination) })
				}
				h.element("div", func() { h.attr("id", DetailId) }, nil)
			})
		})
	})
}
