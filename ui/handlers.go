package ui

import (
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"censusboard/domain/core"
	"censusboard/internal/errors"
)

// handleIndex renders the page directory.
func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	a.renderTemplate(w, http.StatusOK, "index.html", map[string]interface{}{
		"Pages": a.service.Pages(),
	})
}

// handlePage renders one dashboard page: the top-5 summary table, the
// chart, and the full normalized rows.
func (a *App) handlePage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	view, err := a.service.View(r.Context(), slug)
	if err != nil {
		a.renderLoadError(w, slug, err)
		return
	}

	chartJSON, err := json.Marshal(view.Chart)
	if err != nil {
		a.logger.Error("failed to marshal chart data for page %s: %v", slug, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	a.renderTemplate(w, http.StatusOK, "page.html", map[string]interface{}{
		"Page":      view.Page,
		"Top":       view.Top,
		"Summaries": view.Summaries,
		"Rows":      view.Rows,
		"ChartJSON": template.JS(chartJSON),
	})
}

// handleReload invalidates the page's cached extract and re-renders.
func (a *App) handleReload(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if err := a.service.Reload(slug); err != nil {
		a.renderLoadError(w, slug, err)
		return
	}
	http.Redirect(w, r, "/pages/"+slug, http.StatusSeeOther)
}

// handleAbout renders the methodology notes from markdown.
func (a *App) handleAbout(w http.ResponseWriter, r *http.Request) {
	source, err := embeddedFiles.ReadFile("docs/methodology.md")
	if err != nil {
		a.logger.Error("failed to read methodology doc: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	rendered := markdown.ToHTML(source, p, renderer)

	a.renderTemplate(w, http.StatusOK, "about.html", map[string]interface{}{
		"Content": template.HTML(rendered),
	})
}

// renderLoadError surfaces a load failure once as a user-facing page.
// The dashboard never exits on a failed load; the user is expected to
// supply a corrected file and reload.
func (a *App) renderLoadError(w http.ResponseWriter, slug string, err error) {
	status := http.StatusInternalServerError
	message := "데이터 처리 중 오류가 발생했습니다."

	switch {
	case errors.GetCode(err) == errors.CodeNotFound:
		status = http.StatusNotFound
		message = "요청한 페이지를 찾을 수 없습니다."
	case core.IsLoadError(err):
		status = http.StatusServiceUnavailable
		message = "데이터 파일을 읽을 수 없습니다. 파일이 올바른 위치에 있는지 확인해주세요."
	}

	a.logger.Warn("page %s failed: [%s] %v", slug, errors.GetCode(err), err)
	a.renderTemplate(w, status, "error.html", map[string]interface{}{
		"Message": message,
		"Detail":  err.Error(),
		"Code":    errors.GetCode(err),
	})
}
