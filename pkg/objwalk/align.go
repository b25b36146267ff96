package objwalk

// Align grows every row of an array-of-arrays to the maximum row length,
// padding short rows with nil slots, and returns the outer slice for
// chaining. Grown rows are reallocated and written back through the outer
// slice; rows already at the maximum are left untouched. An empty outer
// slice is a no-op.
//
// Crossfilter dimensions require all data columns to have equal length;
// Align normalizes ragged columns before they are handed to a chart.
func Align(rows [][]any) [][]any {
	maxLen := 0
	for _, row := range rows {
		if len(row) > maxLen {
			maxLen = len(row)
		}
	}

	for i, row := range rows {
		if len(row) == maxLen {
			continue
		}
		grown := make([]any, maxLen)
		copy(grown, row)
		rows[i] = grown
	}

	return rows
}
