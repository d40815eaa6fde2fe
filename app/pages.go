package app

import (
	"path/filepath"

	"censusboard/adapters/extract"
	"censusboard/domain/census"
	"censusboard/internal/config"
)

// Page is one dashboard page: a fixed-name extract file plus the
// header convention and chart shape it is rendered with. The three
// pages share one loader implementation and differ only in config.
type Page struct {
	Slug        string            `json:"slug"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Path        string            `json:"path"`
	Config      extract.Config    `json:"config"`
	Shape       census.ChartShape `json:"shape"`
}

// Pages builds the page registry from the data configuration.
func Pages(data config.DataConfig) []Page {
	monthly := extract.DefaultConfig()

	change := extract.DefaultConfig()
	change.IgnoreTokens = []string{"세대수", "구성비"}

	// The births extract carries bare headers: "계" is the total and
	// the mother-age columns have no month prefix.
	births := extract.DefaultConfig()
	births.TotalMarker = "계"
	births.AgeSegment = ""

	return []Page{
		{
			Slug:        "monthly-age",
			Title:       "연령별 인구 현황",
			Description: "총인구수 기준 상위 5개 행정구역의 연령별 인구 분포",
			Path:        filepath.Join(data.Dir, data.MonthlyAgeFile),
			Config:      monthly,
			Shape:       census.ShapeTranspose,
		},
		{
			Slug:        "population-change",
			Title:       "인구 증감",
			Description: "상위 5개 행정구역의 연령대별 인구 증감 분포",
			Path:        filepath.Join(data.Dir, data.PopulationChangeFile),
			Config:      change,
			Shape:       census.ShapeMelt,
		},
		{
			Slug:        "birth-registration",
			Title:       "출생 등록",
			Description: "출생 등록이 가장 많았던 상위 5개 행정구역의 모(母) 연령별 분포",
			Path:        filepath.Join(data.Dir, data.BirthRegistrationFile),
			Config:      births,
			Shape:       census.ShapeTranspose,
		},
	}
}
