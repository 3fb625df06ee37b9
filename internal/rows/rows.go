// Package rows clusters positioned text spans into visual table rows.
package rows

import (
	"math"
	"sort"

	"github.com/mutasi-dev/mutasi/internal/model"
)

// Group buckets spans into rows, top to bottom.
//
// A span joins the current row when its Y is strictly within tolerance of
// the row's first span. Spans that fit no row start their own, so nothing
// is dropped. Spans inside a row are ordered by X.
func Group(spans []model.Span, tolerance float64) []model.Row {
	if len(spans) == 0 {
		return nil
	}

	sorted := make([]model.Span, len(spans))
	copy(sorted, spans)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Page != sorted[j].Page {
			return sorted[i].Page < sorted[j].Page
		}
		return sorted[i].Y < sorted[j].Y
	})

	var out []model.Row
	cur := model.Row{Page: sorted[0].Page, Y: sorted[0].Y, Spans: []model.Span{sorted[0]}}
	for _, s := range sorted[1:] {
		if s.Page == cur.Page && math.Abs(s.Y-cur.Y) < tolerance {
			cur.Spans = append(cur.Spans, s)
			continue
		}
		out = append(out, finish(cur))
		cur = model.Row{Page: s.Page, Y: s.Y, Spans: []model.Span{s}}
	}
	return append(out, finish(cur))
}

// GroupPages groups each page separately and concatenates the rows.
func GroupPages(pages []model.Page, tolerance float64) []model.Row {
	var out []model.Row
	for _, p := range pages {
		out = append(out, Group(p.Spans, tolerance)...)
	}
	return out
}

func finish(r model.Row) model.Row {
	sort.SliceStable(r.Spans, func(i, j int) bool {
		return r.Spans[i].X < r.Spans[j].X
	})
	return r
}
