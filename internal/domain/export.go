package domain

// RawRow is one data record of an export, aligned by index with RawExport.Headers.
type RawRow struct {
	Line   int
	Values []string
}

// Value returns the cell at index i, or "" for ragged rows.
func (r RawRow) Value(i int) string {
	if i < 0 || i >= len(r.Values) {
		return ""
	}
	return r.Values[i]
}

// RawExport is a parsed delimited export before schema normalization.
type RawExport struct {
	Source    string
	Headers   []string
	Rows      []RawRow
	Malformed []int // line numbers the tabular parser could not read
}
