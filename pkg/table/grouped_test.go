package table

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGroupedKeepsInsertionOrder(t *testing.T) {
	g := NewGrouped()
	g.Add("MSFT", New())
	g.Add("AAPL", New())
	g.Add("GOOGL", New())

	require.Equal(t, []string{"MSFT", "AAPL", "GOOGL"}, g.Keys())
}

func TestGroupedReAddReplacesInPlace(t *testing.T) {
	g := NewGrouped()
	first := New()
	first.Set("revenue", "2022", 1.0)
	g.Add("AAPL", first)
	g.Add("MSFT", New())

	replacement := New()
	replacement.Set("revenue", "2022", 2.0)
	g.Add("AAPL", replacement)

	require.Equal(t, []string{"AAPL", "MSFT"}, g.Keys())
	got, ok := g.Group("AAPL")
	require.True(t, ok)
	v, ok := got.Value("revenue", "2022")
	require.True(t, ok)
	require.Equal(t, 2.0, v)
}

func TestGroupedColumnsUnion(t *testing.T) {
	g := NewGrouped()
	a := New()
	a.Set("revenue", "2022", 1.0)
	a.Set("revenue", "2021", 2.0)
	b := New()
	b.Set("revenue", "2023", 3.0)
	b.Set("revenue", "2021", 4.0)
	g.Add("AAPL", a)
	g.Add("MSFT", b)

	require.Equal(t, []string{"2022", "2021", "2023"}, g.Columns())
}

func TestGroupedCollapseSingleTicker(t *testing.T) {
	g := NewGrouped()
	a := New()
	a.Set("revenue", "2022", 1.0)
	g.Add("AAPL", a)

	g.Collapse([]string{"AAPL"})
	single, ok := g.Single()
	require.True(t, ok)
	require.True(t, a.Equal(single))

	// The outer level is still reachable for callers that want it.
	grp, ok := g.Group("AAPL")
	require.True(t, ok)
	require.True(t, a.Equal(grp))
}

func TestGroupedCollapseMultiTickerNoop(t *testing.T) {
	g := NewGrouped()
	g.Add("AAPL", New())
	g.Add("MSFT", New())

	g.Collapse([]string{"AAPL", "MSFT"})
	_, ok := g.Single()
	require.False(t, ok)
}

func TestGroupedSortColumns(t *testing.T) {
	g := NewGrouped()
	a := New()
	a.Set("revenue", "2022", 1.0)
	a.Set("revenue", "2020", 2.0)
	b := New()
	b.Set("revenue", "2023", 3.0)
	b.Set("revenue", "2021", 4.0)
	g.Add("AAPL", a)
	g.Add("MSFT", b)

	g.SortColumns(PeriodLess)
	require.Equal(t, []string{"2020", "2022"}, a.Columns())
	require.Equal(t, []string{"2021", "2023"}, b.Columns())
}

func TestGroupedRenameRowsAcrossEntities(t *testing.T) {
	g := NewGrouped()
	a := New()
	a.Set("stockPrice", "2022", 1.0)
	b := New()
	b.Set("stockPrice", "2022", 2.0)
	g.Add("AAPL", a)
	g.Add("MSFT", b)

	g.RenameRows(map[string]string{"stockPrice": "Stock Price"})
	for _, key := range g.Keys() {
		grp, ok := g.Group(key)
		require.True(t, ok)
		require.Equal(t, []string{"Stock Price"}, grp.Rows())
	}
}

func TestGroupedStringRendersBlocks(t *testing.T) {
	g := NewGrouped()
	a := New()
	a.Set("revenue", "2022", 1.0)
	g.Add("AAPL", a)
	g.Add("MSFT", New())

	out := g.String()
	require.Contains(t, out, "AAPL\n")
	require.Contains(t, out, "MSFT\n")

	g.Collapse([]string{"AAPL"})
	collapsed := g.String()
	require.NotContains(t, collapsed, "AAPL\n")
	require.Contains(t, collapsed, "revenue")
}
