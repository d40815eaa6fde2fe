package ui

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"censusboard/app"
	"censusboard/domain/census"
)

// handleExport streams the page's ranked table and transposed age
// distribution as an Excel workbook.
func (s *Server) handleExport(c *gin.Context) {
	slug := c.Param("slug")
	view, err := s.service.View(c.Request.Context(), slug)
	if err != nil {
		s.renderError(c, err)
		return
	}

	f, err := buildWorkbook(view)
	if err != nil {
		s.renderError(c, err)
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.xlsx", slug))
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		s.logger.Error("failed to stream export for page %s: %v", slug, err)
	}
}

// buildWorkbook writes the top-5 summary to the first sheet and the
// transposed age distribution to a second sheet.
func buildWorkbook(view *app.PageView) (*excelize.File, error) {
	f := excelize.NewFile()

	const summarySheet = "Top5"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("failed to rename summary sheet: %w", err)
	}

	headers := []interface{}{"순위", "행정구역", "총인구수"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(summarySheet, cell, h); err != nil {
			return nil, fmt.Errorf("failed to write summary header: %w", err)
		}
	}
	for i, row := range view.Top.Rows {
		values := []interface{}{i + 1, row.Region, row.Total}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(summarySheet, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write summary row: %w", err)
			}
		}
	}

	const ageSheet = "Ages"
	if _, err := f.NewSheet(ageSheet); err != nil {
		return nil, fmt.Errorf("failed to create age sheet: %w", err)
	}

	transposed := census.Transpose(view.Top)
	if err := f.SetCellValue(ageSheet, "A1", "연령"); err != nil {
		return nil, fmt.Errorf("failed to write age header: %w", err)
	}
	for col, region := range transposed.Regions {
		cell, _ := excelize.CoordinatesToCellName(col+2, 1)
		if err := f.SetCellValue(ageSheet, cell, region); err != nil {
			return nil, fmt.Errorf("failed to write region header: %w", err)
		}
	}
	for i, row := range transposed.Rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetCellValue(ageSheet, cell, row.Age); err != nil {
			return nil, fmt.Errorf("failed to write age key: %w", err)
		}
		for col, count := range row.Counts {
			cell, _ := excelize.CoordinatesToCellName(col+2, i+2)
			if err := f.SetCellValue(ageSheet, cell, count); err != nil {
				return nil, fmt.Errorf("failed to write age count: %w", err)
			}
		}
	}

	return f, nil
}
