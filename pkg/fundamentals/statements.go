package fundamentals

import (
	"context"

	"fintab/pkg/fmp"
	"fintab/pkg/table"
)

// StatementKind selects which financial statement to retrieve.
type StatementKind string

const (
	StatementBalance  StatementKind = "balance"
	StatementIncome   StatementKind = "income"
	StatementCashflow StatementKind = "cashflow"
)

// StatementOptions tunes a Statements call.
type StatementOptions struct {
	// Quarter switches from annual periods (calendar year) to quarterly
	// periods (year-month).
	Quarter bool
	// Limit caps the number of periods; zero uses the service default.
	Limit int
	// Format optionally relabels line items after normalization. The mapping
	// rules come from the caller; the pass itself is a plain row remap.
	Format map[string]string
}

// Statements retrieves balance, income, or cash-flow statements for one or
// many tickers. Per-ticker tables have line items as rows and periods as
// columns ascending, combined under the supplied ticker order.
func (s *Service) Statements(ctx context.Context, tickers []string, kind StatementKind, opts StatementOptions) (*table.Grouped, error) {
	var resource string
	switch kind {
	case StatementBalance:
		resource = fmp.ResourceBalance
	case StatementIncome:
		resource = fmp.ResourceIncome
	case StatementCashflow:
		resource = fmp.ResourceCashflow
	default:
		return nil, validationErrorf("unknown statement kind %q; choose balance, income or cashflow", kind)
	}

	period := fmp.PeriodAnnual
	periodMode := fmp.PeriodAnnual
	if opts.Quarter {
		period = fmp.PeriodQuarter
		periodMode = fmp.PeriodQuarter
	}
	limit := s.resolveLimit(opts.Limit)

	combined, err := s.retrieve(ctx, tickers,
		func(ticker string) fmp.Request {
			return fmp.StatementRequest(resource, ticker, period, limit)
		},
		normalizer(normalizeSpec{
			orientation: rowsAsFields,
			periodMode:  periodMode,
		}),
	)
	if err != nil {
		return nil, err
	}
	// Record order from the provider only drives the line-item axis; periods
	// sort chronologically once combined.
	combined.SortColumns(table.PeriodLess)
	if len(opts.Format) > 0 {
		combined = ApplyStatementFormat(combined, opts.Format)
	}
	return combined, nil
}

// ApplyStatementFormat remaps statement line-item labels across every entity
// per an externally supplied lookup. Labels without a mapping pass through.
func ApplyStatementFormat(combined *table.Grouped, format map[string]string) *table.Grouped {
	combined.RenameRows(format)
	return combined
}
