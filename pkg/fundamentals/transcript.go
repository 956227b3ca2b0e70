package fundamentals

import (
	"context"

	"fintab/pkg/fmp"
	"fintab/pkg/table"
)

// Transcript retrieves earnings-call transcripts for the given year. Rows
// are the raw call timestamps ascending; columns carry quarter, year and the
// transcript content.
func (s *Service) Transcript(ctx context.Context, tickers []string, year int) (*table.Grouped, error) {
	return s.retrieve(ctx, tickers,
		func(ticker string) fmp.Request { return fmp.TranscriptRequest(ticker, year) },
		normalizer(normalizeSpec{
			orientation: rowsAsPeriods,
			sortByDate:  true,
		}),
	)
}

// RevenueByGeography retrieves revenue split by geographic segment. Rows are
// reporting dates in provider order, columns the segment names.
func (s *Service) RevenueByGeography(ctx context.Context, tickers []string, quarter bool) (*table.Grouped, error) {
	return s.retrieve(ctx, tickers,
		func(ticker string) fmp.Request {
			return fmp.SegmentationRequest(fmp.ResourceRevenueGeo, ticker, quarter)
		},
		normalizeSegments,
	)
}

// RevenueByProduct retrieves revenue split by product segment.
func (s *Service) RevenueByProduct(ctx context.Context, tickers []string, quarter bool) (*table.Grouped, error) {
	return s.retrieve(ctx, tickers,
		func(ticker string) fmp.Request {
			return fmp.SegmentationRequest(fmp.ResourceRevenueProduct, ticker, quarter)
		},
		normalizeSegments,
	)
}
