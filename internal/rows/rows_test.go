package rows

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mutasi-dev/mutasi/internal/model"
)

func span(text string, x, y float64) model.Span {
	return model.Span{Text: text, X: x, Y: y, Page: 1}
}

func TestGroup_Empty(t *testing.T) {
	assert.Nil(t, Group(nil, 5))
}

func TestGroup_ClustersByY(t *testing.T) {
	spans := []model.Span{
		span("Rp 10,000.00", 400, 101),
		span("31 August 2025", 40, 80),
		span("TRF BCA", 40, 100),
		span("12:30", 200, 103.5),
	}

	got := Group(spans, 5)
	require.Len(t, got, 2)

	assert.Equal(t, "31 August 2025", got[0].Text())
	assert.InDelta(t, 80.0, got[0].Y, 0.001)

	assert.Equal(t, "TRF BCA 12:30 Rp 10,000.00", got[1].Text())
	assert.InDelta(t, 100.0, got[1].Y, 0.001)
}

func TestGroup_AnchorIsFirstSpan(t *testing.T) {
	// 100 -> 104 joins, 104 -> 108 would chain but 108 is 8 from the anchor.
	spans := []model.Span{span("a", 0, 100), span("b", 10, 104), span("c", 20, 108)}

	got := Group(spans, 5)
	require.Len(t, got, 2)
	assert.Equal(t, "a b", got[0].Text())
	assert.Equal(t, "c", got[1].Text())
}

func TestGroup_ToleranceIsExclusive(t *testing.T) {
	got := Group([]model.Span{span("a", 0, 100), span("b", 0, 105)}, 5)
	assert.Len(t, got, 2)
}

func TestGroup_LoneSpanKeepsOwnRow(t *testing.T) {
	spans := []model.Span{span("header", 0, 10), span("x", 0, 200), span("footer", 0, 800)}

	got := Group(spans, 5)
	require.Len(t, got, 3)
	assert.Equal(t, "x", got[1].Text())
}

func TestGroup_DoesNotMutateInput(t *testing.T) {
	spans := []model.Span{span("b", 50, 10), span("a", 0, 10)}
	Group(spans, 5)
	assert.Equal(t, "b", spans[0].Text)
}

func TestGroupPages_KeepsPagesApart(t *testing.T) {
	pages := []model.Page{
		{Number: 1, Spans: []model.Span{{Text: "p1", Y: 700, Page: 1}}},
		{Number: 2, Spans: []model.Span{{Text: "p2", Y: 701, Page: 2}}},
	}

	got := GroupPages(pages, 5)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Page)
	assert.Equal(t, 2, got[1].Page)
}
