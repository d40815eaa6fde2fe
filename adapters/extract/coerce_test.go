package extract

import "testing"

func TestParseCount(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"plain integer", "42", 42},
		{"grouped thousands", "9,741,383", 9741383},
		{"surrounding whitespace", " 1,234 ", 1234},
		{"empty cell", "", 0},
		{"whitespace only", "   ", 0},
		{"non-numeric", "미상", 0},
		{"negative clamps to zero", "-5", 0},
		{"decimal is unparseable", "12.5", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseCount(tt.raw); got != tt.want {
				t.Errorf("parseCount(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestStripRegionCode(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"서울특별시 (1100000000)", "서울특별시"},
		{"경기도 수원시 (4111000000)", "경기도"},
		{"전국", "전국"},
		{"  부산광역시  ", "부산광역시"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := stripRegionCode(tt.raw); got != tt.want {
			t.Errorf("stripRegionCode(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
