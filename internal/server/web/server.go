// Package web serves the read-only share page: GET /share/{token} renders a
// shared vocabulary entry or note from the token alone, without touching the
// database.
package web

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/CODE-SECX/English-Sikho/internal/common"
	"github.com/CODE-SECX/English-Sikho/internal/logging"
	"github.com/CODE-SECX/English-Sikho/internal/markup"
	"github.com/CODE-SECX/English-Sikho/internal/models"
	"github.com/CODE-SECX/English-Sikho/internal/share"
)

//go:embed templates/*.html
var templateFiles embed.FS

const shutdownTimeout = 5 * time.Second

// page is a rendered response kept in the cache.
type page struct {
	status int
	body   []byte
}

type Server struct {
	address   string
	logger    logging.Logger
	router    *http.ServeMux
	templates *template.Template
	cache     *lru.Cache[string, page]
}

// NewServer parses the embedded templates and sets up routes. cacheSize
// bounds the number of rendered pages kept in memory.
func NewServer(address string, l logging.Logger, cacheSize int) (*Server, error) {
	tpl, err := template.New("").Funcs(template.FuncMap{
		"plain":    markup.Strip,
		"longDate": share.LongDate,
	}).ParseFS(templateFiles, "templates/*.html")
	if err != nil {
		return nil, err
	}

	if cacheSize <= 0 {
		cacheSize = 1
	}
	cache, err := lru.New[string, page](cacheSize)
	if err != nil {
		return nil, err
	}

	s := &Server{
		address:   address,
		logger:    l.With("module", "web_server"),
		router:    http.NewServeMux(),
		templates: tpl,
		cache:     cache,
	}
	s.routes()
	return s, nil
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.HandleFunc("GET /healthz", s.handleHealth())
	s.router.HandleFunc("GET /share/{token}", s.handleShare())
}

func (s *Server) handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	}
}

func (s *Server) handleShare() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.PathValue("token")

		p, ok := s.cache.Get(token)
		if !ok {
			var err error
			p, err = s.render(token)
			if err != nil {
				s.logger.Error(r.Context(), "render share page", "error", err)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}
			s.cache.Add(token, p)
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(p.status)
		_, _ = w.Write(p.body)
	}
}

// render decodes token and executes the matching template. A token that does
// not decode yields the invalid link page with status 400.
func (s *Server) render(token string) (page, error) {
	var buf bytes.Buffer

	payload, err := share.Decode(token)
	if err != nil {
		if !errors.Is(err, common.ErrInvalidLink) {
			return page{}, err
		}
		if err := s.templates.ExecuteTemplate(&buf, "invalid", nil); err != nil {
			return page{}, err
		}
		return page{status: http.StatusBadRequest, body: buf.Bytes()}, nil
	}

	name := "vocabulary"
	if payload.Kind == models.KindNote {
		name = "note"
	}
	data := map[string]any{
		"Title":   share.Title(payload),
		"Payload": payload,
	}
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return page{}, err
	}
	return page{status: http.StatusOK, body: buf.Bytes()}, nil
}

func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
