// Package fundamentals turns raw FinancialModelingPrep responses into
// canonical tables: one retrieval entry point per resource kind, each wiring
// fetch → normalize → combine → collapse. Entities are fetched sequentially
// in the order supplied; one bad ticker fails the whole batch.
package fundamentals

import (
	"context"
	"strings"

	"fintab/pkg/fmp"
	"fintab/pkg/table"
)

const defaultLimit = 100

// Service exposes the retrieval entry points over a shared FMP client.
type Service struct {
	client *fmp.Client
	limit  int
}

// ServiceOption customises a Service.
type ServiceOption func(*Service)

// WithDefaultLimit overrides the default result limit sent to the provider.
func WithDefaultLimit(limit int) ServiceOption {
	return func(s *Service) {
		if limit > 0 {
			s.limit = limit
		}
	}
}

// NewService constructs a fundamentals service around an FMP client.
func NewService(client *fmp.Client, opts ...ServiceOption) *Service {
	svc := &Service{
		client: client,
		limit:  defaultLimit,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

func (s *Service) requireAPIKey() error {
	if s.client == nil || strings.TrimSpace(s.client.APIKey()) == "" {
		return validationErrorf("missing API key; obtain one from financialmodelingprep.com")
	}
	return nil
}

func (s *Service) resolveLimit(limit int) int {
	if limit > 0 {
		return limit
	}
	return s.limit
}

// retrieve runs the shared pipeline: validate, fetch per ticker in supplied
// order, normalize, combine preserving that order, drop fully-empty rows,
// and collapse when exactly one ticker was requested.
func (s *Service) retrieve(
	ctx context.Context,
	tickers []string,
	build func(ticker string) fmp.Request,
	norm func(ticker string, records []*fmp.Record) (*table.Table, error),
) (*table.Grouped, error) {
	ids, err := normalizeTickers(tickers)
	if err != nil {
		return nil, err
	}
	if err := s.requireAPIKey(); err != nil {
		return nil, err
	}

	combined := table.NewGrouped()
	for _, ticker := range ids {
		records, err := s.client.Records(ctx, build(ticker))
		if err != nil {
			return nil, err
		}
		normalized, err := norm(ticker, records)
		if err != nil {
			return nil, err
		}
		combined.Add(ticker, normalized)
	}

	combined.DropEmptyRows()
	return combined.Collapse(ids), nil
}
