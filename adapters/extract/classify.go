package extract

import (
	"regexp"
	"strconv"
	"strings"

	"censusboard/domain/core"
	"censusboard/internal/errors"
)

// agePattern matches the age part of a classified header: a leading
// integer, optionally a band end ("10~19"), optionally the year unit
// ("세") and the and-above qualifier ("이상").
var agePattern = regexp.MustCompile(`^(\d+)(?:\s*~\s*\d+)?\s*세?(?:\s*이상)?$`)

// headerMapping is the resolved schema of one extract: which column
// index holds the region, which holds the total, and which age key
// each age column maps to. Duplicate targets are last-write-wins.
type headerMapping struct {
	regionIdx int
	totalIdx  int
	ageIdx    map[int]int // age key -> column index
}

// classify maps raw headers onto the canonical schema. Age columns are
// recognized before the total marker is consulted, so an aggregate
// header like "2025년05월_계" still resolves to the total while
// "2025년05월_계_10세" resolves to age 10.
func (c Config) classify(headers []string) (headerMapping, error) {
	m := headerMapping{
		regionIdx: -1,
		totalIdx:  -1,
		ageIdx:    make(map[int]int),
	}

	for i, raw := range headers {
		header := strings.TrimSpace(raw)
		switch {
		case header == c.RegionColumn:
			m.regionIdx = i
		case c.ignored(header):
			// skipped entirely, e.g. household counts or ratios
		case c.matchAge(header) >= 0:
			m.ageIdx[c.matchAge(header)] = i
		case c.TotalMarker != "" && strings.Contains(header, c.TotalMarker):
			m.totalIdx = i
		}
	}

	if m.totalIdx < 0 {
		return m, errors.WithCode(errors.CodeSchemaError, core.ErrNoTotalColumn)
	}
	if m.regionIdx < 0 {
		return m, errors.WithCode(errors.CodeSchemaError, core.ErrNoRegionColumn)
	}
	return m, nil
}

// matchAge extracts the age key from a header, or -1 when the header
// is not an age column.
func (c Config) matchAge(header string) int {
	candidate := header
	if c.AgeSegment != "" {
		idx := strings.LastIndex(header, c.AgeSegment)
		if idx < 0 {
			return -1
		}
		candidate = header[idx+len(c.AgeSegment):]
	}
	candidate = strings.TrimSpace(candidate)

	match := agePattern.FindStringSubmatch(candidate)
	if match == nil {
		return -1
	}
	age, err := strconv.Atoi(match[1])
	if err != nil {
		return -1
	}
	return age
}
