package extract

import "strings"

// Config describes how one extract file maps onto the canonical census
// schema: which encoding to decode, which header token marks the total
// population column, how age columns are named, and which sentinel
// identifies the nationwide aggregate row.
type Config struct {
	// Encoding is the IANA charset name of the file, e.g. "euc-kr".
	// Empty means UTF-8.
	Encoding string `json:"encoding"`

	// Delimiter is the field separator. Zero means comma.
	Delimiter rune `json:"delimiter"`

	// RegionColumn is the exact header of the region-identifier column.
	RegionColumn string `json:"region_column"`

	// TotalMarker is the token whose presence marks the total
	// population column, e.g. "총인구수" or "계".
	TotalMarker string `json:"total_marker"`

	// AgeSegment is the header segment preceding an age, e.g. "_계_"
	// in "2025년05월_계_10세". When empty the age pattern is applied to
	// the whole header.
	AgeSegment string `json:"age_segment"`

	// NationwideSentinel is the region value of the aggregate row to
	// drop, e.g. "전국".
	NationwideSentinel string `json:"nationwide_sentinel"`

	// IgnoreTokens lists header tokens that disqualify a column from
	// classification, e.g. "세대수" (household counts) or "구성비"
	// (composition ratios).
	IgnoreTokens []string `json:"ignore_tokens,omitempty"`
}

// DefaultConfig returns the header convention shared by the published
// resident-registration extracts.
func DefaultConfig() Config {
	return Config{
		Encoding:           "euc-kr",
		RegionColumn:       "행정구역",
		TotalMarker:        "총인구수",
		AgeSegment:         "_계_",
		NationwideSentinel: "전국",
		IgnoreTokens:       []string{"세대수", "구성비"},
	}
}

func (c Config) delimiter() rune {
	if c.Delimiter == 0 {
		return ','
	}
	return c.Delimiter
}

func (c Config) ignored(header string) bool {
	for _, token := range c.IgnoreTokens {
		if token != "" && strings.Contains(header, token) {
			return true
		}
	}
	return false
}

func isUTF8(encoding string) bool {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "utf-8", "utf8":
		return true
	}
	return false
}
