package fundamentals

import (
	"context"

	"fintab/pkg/fmp"
	"fintab/pkg/table"
)

// Profile retrieves company profile data (beta, description, industry,
// sector and the like). Each entity contributes one row keyed by its ticker
// with profile fields as columns.
func (s *Service) Profile(ctx context.Context, tickers []string) (*table.Grouped, error) {
	return s.retrieve(ctx, tickers,
		func(ticker string) fmp.Request { return fmp.ProfileRequest(ticker) },
		normalizeSnapshot,
	)
}

// Quote retrieves the latest quote (prices, PE ratio, shares outstanding and
// the like) in the same one-row-per-ticker shape as Profile.
func (s *Service) Quote(ctx context.Context, tickers []string) (*table.Grouped, error) {
	return s.retrieve(ctx, tickers,
		func(ticker string) fmp.Request { return fmp.QuoteRequest(ticker) },
		normalizeSnapshot,
	)
}

// normalizeSnapshot flattens a single-record resource (profile, quote) into
// a one-row table labeled by the ticker. Field order follows the provider.
func normalizeSnapshot(ticker string, records []*fmp.Record) (*table.Table, error) {
	t := table.New()
	for _, rec := range records {
		for _, field := range rec.Fields() {
			v, _ := rec.Value(field)
			if v == nil {
				continue
			}
			t.Set(ticker, field, v)
		}
	}
	return t, nil
}
