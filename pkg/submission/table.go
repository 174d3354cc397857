package submission

import "sort"

// Table is the flat renderable view of a form's submissions: one row per
// submission, one column per distinct field key. Column order is the
// insertion order of each key's first occurrence across the submissions, so
// repeated exports of the same data produce identical layouts.
type Table struct {
	Columns []string
	Rows    [][]string
}

// BuildTable flattens submissions (given in capture order) into a table.
// Submissions missing a column yield an empty cell.
func BuildTable(subs []Submission) Table {
	var columns []string
	seen := make(map[string]struct{})
	for _, sub := range subs {
		keys := sub.FieldOrder
		if len(keys) == 0 {
			// Older records may predate key ordering; fall back to any
			// stable iteration the data offers.
			keys = sortedKeys(sub.Data)
		}
		for _, key := range keys {
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			columns = append(columns, key)
		}
	}

	rows := make([][]string, 0, len(subs))
	for _, sub := range subs {
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = sub.Data[col]
		}
		rows = append(rows, row)
	}

	return Table{Columns: columns, Rows: rows}
}

// Table flattens one form's submissions.
func (l *Log) Table(formID string) Table {
	return BuildTable(l.ForForm(formID))
}

func sortedKeys(data map[string]string) []string {
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
