package census

import "sort"

// TopCount is the number of regions every dashboard page ranks.
const TopCount = 5

// TopN returns the n rows with the greatest total, stable-sorted
// descending: ties keep the original row order. Fewer than n rows are
// returned when the table is smaller. No counts are recomputed.
func TopN(t Table, n int) Table {
	rows := make([]Row, len(t.Rows))
	copy(rows, t.Rows)

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total > rows[j].Total
	})

	if n > len(rows) {
		n = len(rows)
	}
	return Table{AgeKeys: t.AgeKeys, Rows: rows[:n]}
}

// Top5 is TopN fixed at the dashboard's rank size.
func Top5(t Table) Table {
	return TopN(t, TopCount)
}
