package census

import "sort"

// Row is one administrative region after normalization. Every numeric
// field is a non-negative integer; unparseable source cells become 0.
type Row struct {
	Region string      `json:"region"`
	Total  int         `json:"total"`
	Ages   map[int]int `json:"ages"`
}

// Count returns the population at the given age key, 0 when absent.
func (r Row) Count(age int) int {
	return r.Ages[age]
}

// AgeSum returns the sum of all age-column counts for the row.
func (r Row) AgeSum() int {
	sum := 0
	for _, c := range r.Ages {
		sum += c
	}
	return sum
}

// Table is an ordered set of normalized rows sharing one age-key axis.
// AgeKeys is the ascending union of the age keys present in the rows.
type Table struct {
	AgeKeys []int `json:"age_keys"`
	Rows    []Row `json:"rows"`
}

// NewTable builds a table from rows, computing the shared age axis.
func NewTable(rows []Row) Table {
	seen := make(map[int]bool)
	for _, row := range rows {
		for age := range row.Ages {
			seen[age] = true
		}
	}
	keys := make([]int, 0, len(seen))
	for age := range seen {
		keys = append(keys, age)
	}
	sort.Ints(keys)
	return Table{AgeKeys: keys, Rows: rows}
}

// Len returns the number of rows.
func (t Table) Len() int { return len(t.Rows) }

// IsEmpty checks if the table has no rows.
func (t Table) IsEmpty() bool { return len(t.Rows) == 0 }

// Regions returns the region names in row order.
func (t Table) Regions() []string {
	names := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		names[i] = row.Region
	}
	return names
}
