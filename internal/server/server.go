package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/klauspost/compress/gzhttp"

	"github.com/webluciano/folio/internal/article"
	"github.com/webluciano/folio/internal/contact"
	"github.com/webluciano/folio/internal/logging"
	"github.com/webluciano/folio/internal/page"
	"github.com/webluciano/folio/internal/render"
	"github.com/webluciano/folio/internal/site"
)

// LinkPattern points listing cards at the served detail page.
const LinkPattern = "/article?id=%s"

// Config holds server configuration.
type Config struct {
	Port     int
	BaseURL  string // public site URL used in share links
	AllowAll bool   // allow all CORS origins (dev mode)
}

// Server serves the portfolio pages and the article API.
type Server struct {
	cfg        Config
	source     article.Source
	repo       *article.Repository
	renderer   *render.Renderer
	pages      *site.Pages
	contacts   *contact.Store
	detail     *page.Controller
	list       *page.ListController
	log        *slog.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a server over an article source. contacts may be nil, in
// which case the contact form is not stored.
func New(cfg Config, source article.Source, renderer *render.Renderer, contacts *contact.Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = logging.Discard()
	}
	repo := article.NewRepository(source)
	s := &Server{
		cfg:      cfg,
		source:   source,
		repo:     repo,
		renderer: renderer,
		pages:    site.MustPages(),
		contacts: contacts,
		detail: page.NewController(repo, renderer, page.Options{
			BackLink: ServerBackLink,
			Logger:   logger,
		}),
		list:   page.NewListController(repo, renderer, logger),
		log:    logger,
	}

	s.router = s.buildRouter()
	return s
}

// ServerBackLink is where "back to articles" points on served pages.
const ServerBackLink = "/#articles"

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.RequestLogger(s.log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(func(next http.Handler) http.Handler { return gzhttp.GzipHandler(next) })

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Pages
	r.Get("/", s.handleIndex)
	r.Get("/articles", s.handleIndex)
	r.Get("/article", s.handleArticle)
	r.Get("/contact", s.handleContactForm)
	r.Post("/contact", s.handleContactSubmit)

	// Static assets and the raw document
	r.Get("/style.css", serveStatic("text/css; charset=utf-8", site.StylesheetCSS()))
	r.Get("/script.js", serveStatic("application/javascript; charset=utf-8", site.ScriptJS()))
	r.Get("/data/articles.json", s.handleRawData)

	// API
	r.Route("/api/articles", func(r chi.Router) {
		r.Get("/", s.handleListArticles)
		r.Get("/random", s.handleRandomArticle)
		r.Get("/{id}", s.handleGetArticle)
	})
	if s.contacts != nil {
		contact.RegisterRoutes(r, s.contacts, s.log)
	}

	return r
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// ServerConfig returns the server configuration.
func (s *Server) ServerConfig() Config { return s.cfg }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.log.Info("folio server listening", "addr", addr, "source", s.source.String())
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
