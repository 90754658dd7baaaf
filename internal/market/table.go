package market

import (
	"errors"
	"sort"
)

// ErrEmptyMarket signals that normalization produced zero usable rows.
// It usually means the upstream payload shape changed or an empty page was
// returned; the pipeline must abort rather than write an empty snapshot.
var ErrEmptyMarket = errors.New("no players in market payload")

// BuildTable normalizes every raw entry in input order and keeps the rows
// that carry a player id. A table with zero retained rows is a hard error.
func BuildTable(entries []RawEntry) ([]Row, error) {
	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		row := NormalizeEntry(e)
		if row.PlayerID == nil {
			continue
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyMarket
	}
	return rows, nil
}

// FilterByOwnership keeps rows whose global ownership percentage falls in
// the [min, max] bounds. A nil bound is open; a row with no ownership value
// is treated as 0 for the comparison only.
func FilterByOwnership(rows []Row, min, max *float64) []Row {
	if min == nil && max == nil {
		return rows
	}
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		pct := 0.0
		if r.OwnedPercentage != nil {
			pct = *r.OwnedPercentage
		}
		if min != nil && pct < *min {
			continue
		}
		if max != nil && pct > *max {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Sortable market columns accepted by SortRows.
const (
	SortByPrice           = "price"
	SortByAverageScore    = "average_score"
	SortByOwnedPercentage = "owned_percentage"
	SortByForm            = "form"
	SortByTotalPoints     = "total_points"
	SortByExpectedPoints  = "expected_points"
)

// SortRows orders rows descending by the named column. Rows without a value
// for the column sort last. Unknown keys fall back to price.
func SortRows(rows []Row, key string) {
	val := columnValue(key)
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := val(rows[i]), val(rows[j])
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a > *b
		}
	})
}

func columnValue(key string) func(Row) *float64 {
	switch key {
	case SortByAverageScore:
		return func(r Row) *float64 { return r.AverageScore }
	case SortByOwnedPercentage:
		return func(r Row) *float64 { return r.OwnedPercentage }
	case SortByForm:
		return func(r Row) *float64 { return r.Form }
	case SortByTotalPoints:
		return func(r Row) *float64 { return r.TotalPoints }
	case SortByExpectedPoints:
		return func(r Row) *float64 { return r.ExpectedPoints }
	default:
		return func(r Row) *float64 { return r.Price }
	}
}
