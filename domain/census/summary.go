package census

import (
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// RegionSummary describes the age distribution of one ranked region.
type RegionSummary struct {
	Region      string  `json:"region"`
	Total       int     `json:"total"`
	MeanAge     float64 `json:"mean_age"`
	PeakAge     int     `json:"peak_age"`
	PeakCount   int     `json:"peak_count"`
	MedianCount float64 `json:"median_count"`
	StdDevCount float64 `json:"stddev_count"`
}

// Summarize computes one distribution summary per row, in row order.
// MeanAge is the count-weighted mean over the table's age axis; the
// median and standard deviation describe the per-age counts.
func Summarize(t Table) []RegionSummary {
	out := make([]RegionSummary, 0, len(t.Rows))
	for _, row := range t.Rows {
		out = append(out, summarizeRow(t.AgeKeys, row))
	}
	return out
}

func summarizeRow(ageKeys []int, row Row) RegionSummary {
	s := RegionSummary{Region: row.Region, Total: row.Total}
	if len(ageKeys) == 0 {
		return s
	}

	ages := make([]float64, len(ageKeys))
	counts := make([]float64, len(ageKeys))
	mass := 0
	for i, age := range ageKeys {
		c := row.Count(age)
		ages[i] = float64(age)
		counts[i] = float64(c)
		mass += c
		if c > s.PeakCount {
			s.PeakAge = age
			s.PeakCount = c
		}
	}

	if mass > 0 {
		s.MeanAge = stat.Mean(ages, counts)
	}
	if median, err := stats.Median(counts); err == nil {
		s.MedianCount = median
	}
	if sd, err := stats.StandardDeviation(counts); err == nil {
		s.StdDevCount = sd
	}
	return s
}
