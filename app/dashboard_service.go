package app

import (
	"context"
	"time"

	"censusboard/adapters/extract"
	"censusboard/domain/census"
	"censusboard/domain/core"
	"censusboard/domain/registry"
	"censusboard/internal"
	"censusboard/internal/cache"
	"censusboard/internal/config"
	"censusboard/internal/errors"
	"censusboard/ports"
)

// DashboardService orchestrates the dashboard pipeline: cached load of
// a page's extract, top-5 selection, reshape for charting, and the
// distribution summaries. Each request is one pass of that pipeline;
// the cache is the only state.
type DashboardService struct {
	pages   []Page
	bySlug  map[string]Page
	loaders map[string]ports.ExtractLoader
	cache   *cache.ExtractCache
	repo    ports.ExtractRepository // nil when no registry is configured
	logger  *internal.Logger
}

// ChartData is the chart-ready reshape of a page's top-5 table, in
// exactly one of the two supported shapes.
type ChartData struct {
	Shape      census.ChartShape       `json:"shape"`
	Transposed *census.TransposedTable `json:"transposed,omitempty"`
	Melted     []census.MeltedRow      `json:"melted,omitempty"`
}

// PageView bundles everything a dashboard page renders: the ranked
// summary table, the chart-ready reshape, and the full normalized rows.
type PageView struct {
	Page      Page
	Top       census.Table
	Summaries []census.RegionSummary
	Chart     ChartData
	Rows      census.Table
}

// NewDashboardService wires the page registry, per-page loaders and
// the extract cache. repo may be nil.
func NewDashboardService(cfg *config.Config, repo ports.ExtractRepository) *DashboardService {
	pages := Pages(cfg.Data)

	s := &DashboardService{
		pages:   pages,
		bySlug:  make(map[string]Page, len(pages)),
		loaders: make(map[string]ports.ExtractLoader, len(pages)),
		cache:   cache.New(cfg.Cache.TTL),
		repo:    repo,
		logger:  internal.DefaultLogger,
	}
	for _, page := range pages {
		s.bySlug[page.Slug] = page
		s.loaders[page.Slug] = extract.NewLoader(page.Config)
	}
	return s
}

// Pages returns the registered dashboard pages in display order.
func (s *DashboardService) Pages() []Page {
	return s.pages
}

// Page resolves a page by slug.
func (s *DashboardService) Page(slug string) (Page, error) {
	page, ok := s.bySlug[slug]
	if !ok {
		return Page{}, errors.WithCode(errors.CodeNotFound, core.ErrPageNotFound)
	}
	return page, nil
}

// Table returns the full normalized table for a page, served from the
// cache when the extract file is unchanged.
func (s *DashboardService) Table(ctx context.Context, slug string) (census.Table, error) {
	page, err := s.Page(slug)
	if err != nil {
		return census.Table{}, err
	}

	loader := s.loaders[slug]
	table, err := s.cache.GetOrLoad(page.Path, func() (census.Table, error) {
		s.logger.Info("loading extract for page %s: %s", slug, page.Path)
		t, loadErr := loader.Load(page.Path)
		s.record(page, t, loadErr)
		return t, loadErr
	})
	if err != nil {
		s.logger.Warn("extract load failed for page %s: %v", slug, err)
		return census.Table{}, err
	}
	return table, nil
}

// TopFive returns the page's top-5 regions by total, stable descending.
func (s *DashboardService) TopFive(ctx context.Context, slug string) (census.Table, error) {
	table, err := s.Table(ctx, slug)
	if err != nil {
		return census.Table{}, err
	}
	return census.Top5(table), nil
}

// Chart returns the chart-ready reshape of the page's top-5 table.
// An empty shape selects the page's default.
func (s *DashboardService) Chart(ctx context.Context, slug string, shape census.ChartShape) (ChartData, error) {
	page, err := s.Page(slug)
	if err != nil {
		return ChartData{}, err
	}
	if shape == "" {
		shape = page.Shape
	}
	if !shape.Valid() {
		return ChartData{}, errors.InvalidInput("unknown chart shape: " + string(shape))
	}

	top, err := s.TopFive(ctx, slug)
	if err != nil {
		return ChartData{}, err
	}

	data := ChartData{Shape: shape}
	switch shape {
	case census.ShapeTranspose:
		t := census.Transpose(top)
		data.Transposed = &t
	case census.ShapeMelt:
		data.Melted = census.Melt(top)
	}
	return data, nil
}

// Summaries returns the distribution summaries for the top-5 regions.
func (s *DashboardService) Summaries(ctx context.Context, slug string) ([]census.RegionSummary, error) {
	top, err := s.TopFive(ctx, slug)
	if err != nil {
		return nil, err
	}
	return census.Summarize(top), nil
}

// View assembles the full render payload for one dashboard page.
func (s *DashboardService) View(ctx context.Context, slug string) (*PageView, error) {
	page, err := s.Page(slug)
	if err != nil {
		return nil, err
	}
	table, err := s.Table(ctx, slug)
	if err != nil {
		return nil, err
	}

	top := census.Top5(table)
	chart := ChartData{Shape: page.Shape}
	switch page.Shape {
	case census.ShapeMelt:
		chart.Melted = census.Melt(top)
	default:
		t := census.Transpose(top)
		chart.Transposed = &t
	}

	return &PageView{
		Page:      page,
		Top:       top,
		Summaries: census.Summarize(top),
		Chart:     chart,
		Rows:      table,
	}, nil
}

// Reload invalidates the cached table for a page. The next request
// re-reads the extract file.
func (s *DashboardService) Reload(slug string) error {
	page, err := s.Page(slug)
	if err != nil {
		return err
	}
	s.cache.Invalidate(page.Path)
	s.logger.Info("cache invalidated for page %s", slug)
	return nil
}

// History returns recent load records from the extract registry.
func (s *DashboardService) History(ctx context.Context, limit int) ([]*registry.Record, error) {
	if s.repo == nil {
		return nil, errors.NotFound("extract registry")
	}
	if limit <= 0 {
		limit = 50
	}
	return s.repo.ListRecent(ctx, limit)
}

// record writes one load event to the registry, when configured.
// Registry failures are logged, never surfaced to the dashboard.
func (s *DashboardService) record(page Page, table census.Table, loadErr error) {
	if s.repo == nil {
		return
	}

	rec := registry.NewRecord(page.Slug, page.Path)
	if loadErr != nil {
		rec.Fail(loadErr)
	} else {
		rec.RowCount = table.Len()
		rec.AgeKeyCount = len(table.AgeKeys)
		if hash, err := core.HashFile(page.Path); err == nil {
			rec.FileHash = hash
		}
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.repo.Create(ctx, rec); err != nil {
			s.logger.Warn("failed to record extract load for page %s: %v", page.Slug, err)
		}
	}()
}
