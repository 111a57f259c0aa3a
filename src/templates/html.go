// Package templates renders view models as templ components. Each fragment
// component renders the whole content of exactly one page container.
package templates

import (
	"io"

	"github.com/a-h/templ"
)

// Container ids the page and the fragments agree on.
const (
	ListId        = "pokemonList"
	PaginationId  = "pagination"
	DetailId      = "pokemonInfo"
	SearchInputId = "pokemonSearch"
)

// html accumulates markup and keeps the first write error.
type html struct {
	w   io.Writer
	err error
}

func (h *html) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *html) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *html) attr(name, value string) {
	h.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

func (h *html) url(name, value string) {
	h.attr(name, string(templ.URL(value)))
}

func (h *html) flag(name string, on bool) {
	if on {
		h.raw(" " + name)
	}
}

// element writes <tag attrs...>body</tag>.
func (h *html) element(tag string, attrs func(), body func()) {
	h.raw("<" + tag)
	if attrs != nil {
		attrs()
	}
	h.raw(">")
	if body != nil {
		body()
	}
	h.raw("</" + tag + ">")
}
