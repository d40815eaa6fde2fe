package ui

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"censusboard/app"
	"censusboard/internal"
	"censusboard/internal/config"
)

//go:embed templates/* static/* docs/*
var embeddedFiles embed.FS

// App represents the HTML dashboard application
type App struct {
	router    *chi.Mux
	service   *app.DashboardService
	templates *template.Template
	logger    *internal.Logger
	port      string
}

// NewApp creates a new dashboard application
func NewApp(cfg *config.Config, service *app.DashboardService) (*App, error) {
	templates, err := template.New("").Funcs(templateFuncs()).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	a := &App{
		router:    chi.NewRouter(),
		service:   service,
		templates: templates,
		logger:    internal.DefaultLogger,
		port:      cfg.Server.Port,
	}

	a.setupMiddleware()
	a.setupRoutes()

	return a, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))

	// Serve static files
	staticFS := http.FileServer(http.FS(embeddedFiles))
	a.router.Handle("/static/*", staticFS)
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/", a.handleIndex)
	a.router.Get("/pages/{slug}", a.handlePage)
	a.router.Get("/about", a.handleAbout)
	a.router.Post("/pages/{slug}/reload", a.handleReload)
}

// Start runs the HTTP server
func (a *App) Start() error {
	addr := ":" + a.port
	a.logger.Info("dashboard UI listening on %s", addr)
	return http.ListenAndServe(addr, a.router)
}

// Router exposes the chi mux, mainly for tests.
func (a *App) Router() http.Handler {
	return a.router
}
