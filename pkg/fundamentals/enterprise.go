package fundamentals

import (
	"context"

	"fintab/pkg/fmp"
	"fintab/pkg/table"
)

// EnterpriseOptions tunes an EnterpriseValue call.
type EnterpriseOptions struct {
	Quarter bool
	Limit   int
}

// EnterpriseValue retrieves enterprise value data (market capitalization,
// cash, total debt, enterprise value). Rows are calendar years ascending,
// columns the canonical value fields.
func (s *Service) EnterpriseValue(ctx context.Context, tickers []string, opts EnterpriseOptions) (*table.Grouped, error) {
	period := fmp.PeriodAnnual
	if opts.Quarter {
		period = fmp.PeriodQuarter
	}
	limit := s.resolveLimit(opts.Limit)

	return s.retrieve(ctx, tickers,
		func(ticker string) fmp.Request {
			return fmp.EnterpriseRequest(ticker, period, limit)
		},
		// The provider's date truncates to the calendar year here regardless
		// of the reporting period requested.
		normalizer(normalizeSpec{
			orientation: rowsAsPeriods,
			periodMode:  fmp.PeriodAnnual,
			rename:      enterpriseRename,
			sortByDate:  true,
		}),
	)
}

// Rating retrieves the historical company rating along with its per-ratio
// scores and recommendations. Rows are raw rating dates ascending.
func (s *Service) Rating(ctx context.Context, tickers []string, limit int) (*table.Grouped, error) {
	limit = s.resolveLimit(limit)
	return s.retrieve(ctx, tickers,
		func(ticker string) fmp.Request { return fmp.RatingRequest(ticker, limit) },
		normalizer(normalizeSpec{
			orientation: rowsAsPeriods,
			rename:      ratingRename,
			sortByDate:  true,
		}),
	)
}
