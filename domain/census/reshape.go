package census

// ChartShape selects how a ranked table is reshaped for charting.
type ChartShape string

const (
	ShapeTranspose ChartShape = "transpose"
	ShapeMelt      ChartShape = "melt"
)

// Valid reports whether the shape is one of the supported reshapes.
func (s ChartShape) Valid() bool {
	return s == ShapeTranspose || s == ShapeMelt
}

// TransposedRow is one age on the chart's x axis, with counts aligned
// to the parent table's region order.
type TransposedRow struct {
	Age    int   `json:"age"`
	Counts []int `json:"counts"`
}

// TransposedTable is the wide reshape: rows keyed by ascending age,
// one column per selected region.
type TransposedTable struct {
	Regions []string        `json:"regions"`
	Rows    []TransposedRow `json:"rows"`
}

// MeltedRow is one (region, age) observation of the long reshape.
type MeltedRow struct {
	Region string `json:"region"`
	Age    int    `json:"age"`
	Count  int    `json:"count"`
}

// Transpose reshapes the age columns of a table so that ages become
// rows and regions become columns. Age keys are emitted ascending.
// It is a pure projection: cells are copied, never recomputed.
func Transpose(t Table) TransposedTable {
	out := TransposedTable{
		Regions: t.Regions(),
		Rows:    make([]TransposedRow, 0, len(t.AgeKeys)),
	}
	for _, age := range t.AgeKeys {
		row := TransposedRow{Age: age, Counts: make([]int, len(t.Rows))}
		for i, r := range t.Rows {
			row.Counts[i] = r.Count(age)
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

// Melt reshapes a table to long form: one row per region×age pair,
// preserving the table's region order with ages ascending within each
// region.
func Melt(t Table) []MeltedRow {
	out := make([]MeltedRow, 0, len(t.Rows)*len(t.AgeKeys))
	for _, r := range t.Rows {
		for _, age := range t.AgeKeys {
			out = append(out, MeltedRow{Region: r.Region, Age: age, Count: r.Count(age)})
		}
	}
	return out
}
