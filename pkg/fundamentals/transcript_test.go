package fundamentals

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTranscriptKeepsCallTimestamps(t *testing.T) {
	seen := make(chan string, 1)
	svc := newTestServiceFunc(t, func(path, rawQuery string) (string, bool) {
		seen <- rawQuery
		return `[
			{"symbol":"AAPL","quarter":4,"year":2022,"date":"2022-10-27 17:00:00","content":"Q4 call text"},
			{"symbol":"AAPL","quarter":3,"year":2022,"date":"2022-07-28 17:00:00","content":"Q3 call text"}
		]`, true
	})

	combined, err := svc.Transcript(context.Background(), []string{"AAPL"}, 2022)
	require.NoError(t, err)
	require.Contains(t, <-seen, "year=2022")

	single, ok := combined.Single()
	require.True(t, ok)
	// Raw call timestamps as rows, oldest first.
	require.Equal(t, []string{"2022-07-28 17:00:00", "2022-10-27 17:00:00"}, single.Rows())
	require.Equal(t, []string{"quarter", "year", "content"}, single.Columns())

	v, ok := single.Value("2022-07-28 17:00:00", "content")
	require.True(t, ok)
	require.Equal(t, "Q3 call text", v)
}

func TestTranscriptMultiTicker(t *testing.T) {
	svc := newTestService(t, map[string]string{
		"/api/v4/batch_earning_call_transcript/AAPL": `[{"symbol":"AAPL","quarter":1,"year":2023,"date":"2023-02-02 17:00:00","content":"aapl text"}]`,
		"/api/v4/batch_earning_call_transcript/MSFT": `[{"symbol":"MSFT","quarter":2,"year":2023,"date":"2023-01-24 17:30:00","content":"msft text"}]`,
	})

	combined, err := svc.Transcript(context.Background(), []string{"AAPL", "MSFT"}, 2023)
	require.NoError(t, err)
	require.Equal(t, []string{"AAPL", "MSFT"}, combined.Keys())
}

const geoAAPL = `[
	{"2022-09-24":{"Americas Segment":169658000000,"Europe Segment":95118000000,"Greater China Segment":74200000000}},
	{"2021-09-25":{"Americas Segment":153306000000,"Europe Segment":89307000000,"Greater China Segment":68366000000}}
]`

func TestRevenueByGeography(t *testing.T) {
	svc := newTestService(t, map[string]string{
		"/api/v4/revenue-geographic-segmentation": geoAAPL,
	})

	combined, err := svc.RevenueByGeography(context.Background(), []string{"AAPL"}, false)
	require.NoError(t, err)

	single, ok := combined.Single()
	require.True(t, ok)
	// Dates in provider order, segments as columns.
	require.Equal(t, []string{"2022-09-24", "2021-09-25"}, single.Rows())
	require.Equal(t, []string{"Americas Segment", "Europe Segment", "Greater China Segment"}, single.Columns())

	v, ok := single.Value("2021-09-25", "Europe Segment")
	require.True(t, ok)
	require.Equal(t, 89307000000.0, v)
}

func TestRevenueByProductQuarterParam(t *testing.T) {
	seen := make(chan string, 1)
	svc := newTestServiceFunc(t, func(path, rawQuery string) (string, bool) {
		require.Equal(t, "/api/v4/revenue-product-segmentation", path)
		seen <- rawQuery
		return `[{"2022-06-25":{"iPhone":40665000000,"Mac":7382000000}}]`, true
	})

	combined, err := svc.RevenueByProduct(context.Background(), []string{"AAPL"}, true)
	require.NoError(t, err)

	query := <-seen
	require.Contains(t, query, "structure=flat")
	require.Contains(t, query, "symbol=AAPL")
	require.Contains(t, query, "period=quarter")

	single, ok := combined.Single()
	require.True(t, ok)
	v, ok := single.Value("2022-06-25", "iPhone")
	require.True(t, ok)
	require.Equal(t, 40665000000.0, v)
}

func TestSegmentationRejectsFlatScalars(t *testing.T) {
	svc := newTestService(t, map[string]string{
		"/api/v4/revenue-geographic-segmentation": `[{"2022-09-24":12345}]`,
	})

	_, err := svc.RevenueByGeography(context.Background(), []string{"AAPL"}, false)
	require.Error(t, err)
	require.Contains(t, err.Error(), "AAPL")
	require.Contains(t, err.Error(), "2022-09-24")
}

func TestSegmentationHeterogeneousSegments(t *testing.T) {
	svc := newTestService(t, map[string]string{
		"/api/v4/revenue-product-segmentation": `[
			{"2022-09-24":{"iPhone":205489000000,"Wearables":41241000000}},
			{"2021-09-25":{"iPhone":191973000000,"Services":68425000000}}
		]`,
	})

	combined, err := svc.RevenueByProduct(context.Background(), []string{"AAPL"}, false)
	require.NoError(t, err)

	single, ok := combined.Single()
	require.True(t, ok)
	require.Equal(t, []string{"iPhone", "Wearables", "Services"}, single.Columns())
	_, present := single.Value("2021-09-25", "Wearables")
	require.False(t, present)
}
