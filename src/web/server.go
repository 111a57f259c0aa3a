// Package web serves the catalog browser: a full page on "/" and one HTML
// fragment per user action, each replacing a whole page container.
package web

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"go.uber.org/zap"

	"github.com/BielosX/wombat/poke-browser/src/browser"
	"github.com/BielosX/wombat/poke-browser/src/export"
	"github.com/BielosX/wombat/poke-browser/src/templates"
	"github.com/BielosX/wombat/poke-browser/src/view"
)

type Server struct {
	sessions *Sessions
	catalog  export.Catalog
	sugar    *zap.SugaredLogger
}

func NewServer(sessions *Sessions, catalog export.Catalog, sugar *zap.SugaredLogger) *Server {
	return &Server{
		sessions: sessions,
		catalog:  catalog,
		sugar:    sugar,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /pokemon", s.listHandler((*browser.Browser).Current))
	mux.HandleFunc("POST /pokemon/next", s.listHandler((*browser.Browser).NextPage))
	mux.HandleFunc("POST /pokemon/prev", s.listHandler((*browser.Browser).PrevPage))
	mux.HandleFunc("POST /pokemon/reset", s.handleReset)
	mux.HandleFunc("GET /pokemon/{id}", s.handleDetail)
	mux.HandleFunc("GET /search", s.handleSearch)
	mux.HandleFunc("GET /export.csv", s.handleExportCSV)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})
	mux.HandleFunc("GET /favicon.ico", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return Chain(mux, Recovery(s.sugar), Logger(s.sugar))
}

// Run serves on addr until ctx is cancelled, pruning idle sessions meanwhile.
func (s *Server) Run(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go s.pruneSessions(ctx)

	errChan := make(chan error, 1)
	go func() {
		s.sugar.Infof("Listening on %s", addr)
		errChan <- server.ListenAndServe()
	}()
	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.sugar.Info("Shutting down HTTP server")
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errChan; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) pruneSessions(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if pruned := s.sessions.Prune(); pruned > 0 {
				s.sugar.Infof("Pruned %d idle sessions, %d left", pruned, s.sessions.Len())
			}
		}
	}
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, component templ.Component) {
	templ.Handler(component, templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
		s.sugar.Errorf("Failed to render %s: %s", r.URL.Path, err)
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		})
	})).ServeHTTP(w, r)
}

// superseded answers a discarded request. htmx does not swap on 204.
func superseded(w http.ResponseWriter, err error) bool {
	if !errors.Is(err, browser.ErrSuperseded) {
		return false
	}
	w.WriteHeader(http.StatusNoContent)
	return true
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	b := s.sessions.Get(w, r)
	result, err := b.Current(r.Context())
	page := view.NewPage(result)
	if errors.Is(err, browser.ErrSuperseded) {
		page = view.Page{Deferred: true}
	}
	s.render(w, r, templates.Page(page))
}

func (s *Server) listHandler(action func(*browser.Browser, context.Context) (browser.PageResult, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := action(s.sessions.Get(w, r), r.Context())
		if superseded(w, err) {
			return
		}
		s.render(w, r, templates.ListWithPagination(view.NewList(result), view.NewPagination(result)))
	}
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	result, err := s.sessions.Get(w, r).Reset(r.Context())
	if superseded(w, err) {
		return
	}
	s.render(w, r, templ.Join(
		templates.ListWithPagination(view.NewList(result), view.NewPagination(result)),
		templates.SearchInput("", true),
	))
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	result, err := s.sessions.Get(w, r).Search(r.Context(), r.URL.Query().Get("q"))
	if superseded(w, err) {
		return
	}
	s.render(w, r, templates.ListWithPagination(view.NewList(result), view.NewPagination(result)))
}

func (s *Server) handleDetail(w http.ResponseWriter, r *http.Request) {
	result, err := s.sessions.Get(w, r).ShowDetail(r.Context(), r.PathValue("id"))
	if superseded(w, err) {
		return
	}
	s.render(w, r, templates.Detail(view.NewDetail(result)))
}

// handleExportCSV downloads the session's current page as CSV rows. It
// reads a snapshot so a page render still in flight keeps its generation.
func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	result := s.sessions.Get(w, r).Snapshot(r.Context())
	if result.Status == browser.StatusFailed {
		http.Error(w, view.MessageListFailed, http.StatusBadGateway)
		return
	}
	rows, err := export.Rows(r.Context(), s.catalog, result.Pokemons)
	if err != nil {
		s.sugar.Errorf("Failed to build CSV rows: %s", err)
		http.Error(w, view.MessageListFailed, http.StatusBadGateway)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="pokemons.csv"`)
	if err := export.WriteCSV(w, rows); err != nil {
		s.sugar.Errorf("Failed to write CSV: %s", err)
	}
}
