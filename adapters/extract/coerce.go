package extract

import (
	"strconv"
	"strings"
)

// groupingSeparator is the thousands separator used by the published
// extracts, e.g. "9,741,383".
const groupingSeparator = ","

// parseCount converts a source cell to a non-negative count. Grouping
// separators are stripped before parsing; empty or unparseable cells
// coerce to 0. Cell-level failures never surface as errors.
func parseCount(raw string) int {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return 0
	}
	cleaned = strings.ReplaceAll(cleaned, groupingSeparator, "")

	n, err := strconv.Atoi(cleaned)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// stripRegionCode reduces a region field to the substring before the
// first whitespace, removing trailing parenthetical codes:
// "서울특별시 (1100000000)" -> "서울특별시".
func stripRegionCode(raw string) string {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
