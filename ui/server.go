package ui

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"censusboard/app"
	"censusboard/domain/census"
	"censusboard/domain/core"
	"censusboard/internal"
	"censusboard/internal/config"
	"censusboard/internal/errors"
)

// Server is the JSON API surface of the dashboard. It exposes the same
// pipeline as the HTML app: top-5 tables, chart-ready reshapes, raw
// normalized rows, summaries, cache invalidation and Excel export.
type Server struct {
	engine  *gin.Engine
	service *app.DashboardService
	logger  *internal.Logger
	port    string
}

// NewServer creates the API server
func NewServer(cfg *config.Config, service *app.DashboardService) *Server {
	gin.SetMode(cfg.Server.GinMode)

	s := &Server{
		engine:  gin.Default(),
		service: service,
		logger:  internal.DefaultLogger,
		port:    cfg.Server.APIPort,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := s.engine.Group("/api")
	{
		api.GET("/pages", s.handleListPages)
		api.GET("/pages/:slug/top5", s.handleTop5)
		api.GET("/pages/:slug/chart", s.handleChart)
		api.GET("/pages/:slug/rows", s.handleRows)
		api.GET("/pages/:slug/summary", s.handleSummary)
		api.GET("/pages/:slug/export", s.handleExport)
		api.POST("/pages/:slug/reload", s.handleReload)
		api.GET("/extracts", s.handleExtractHistory)
	}
}

// Start runs the API server
func (s *Server) Start() error {
	addr := ":" + s.port
	s.logger.Info("dashboard API listening on %s", addr)
	return s.engine.Run(addr)
}

// Engine exposes the gin engine, mainly for tests.
func (s *Server) Engine() http.Handler {
	return s.engine
}

func (s *Server) handleListPages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"pages": s.service.Pages()})
}

func (s *Server) handleTop5(c *gin.Context) {
	top, err := s.service.TopFive(c.Request.Context(), c.Param("slug"))
	if err != nil {
		s.renderError(c, err)
		return
	}

	type rankedRegion struct {
		Rank   int    `json:"rank"`
		Region string `json:"region"`
		Total  int    `json:"total"`
	}
	ranked := make([]rankedRegion, 0, top.Len())
	for i, row := range top.Rows {
		ranked = append(ranked, rankedRegion{Rank: i + 1, Region: row.Region, Total: row.Total})
	}
	c.JSON(http.StatusOK, gin.H{"regions": ranked})
}

func (s *Server) handleChart(c *gin.Context) {
	shape := census.ChartShape(c.Query("shape"))
	chart, err := s.service.Chart(c.Request.Context(), c.Param("slug"), shape)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, chart)
}

func (s *Server) handleRows(c *gin.Context) {
	table, err := s.service.Table(c.Request.Context(), c.Param("slug"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}

func (s *Server) handleSummary(c *gin.Context) {
	summaries, err := s.service.Summaries(c.Request.Context(), c.Param("slug"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summaries": summaries})
}

func (s *Server) handleReload(c *gin.Context) {
	if err := s.service.Reload(c.Param("slug")); err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reloaded": c.Param("slug")})
}

func (s *Server) handleExtractHistory(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	records, err := s.service.History(c.Request.Context(), limit)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"extracts": records})
}

// renderError maps an error to one JSON failure value. Load failures
// surface once here; per-cell parse failures never reach this point.
func (s *Server) renderError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch {
	case code == errors.CodeNotFound:
		status = http.StatusNotFound
	case code == errors.CodeInvalidInput:
		status = http.StatusBadRequest
	case core.IsLoadError(err):
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"error": err.Error(), "code": code})
}
