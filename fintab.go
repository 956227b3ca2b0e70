// Package fintab retrieves fundamentals data from FinancialModelingPrep and
// reshapes the per-ticker JSON into canonical tables: line items or fields as
// rows, reporting periods as columns, combined under ticker keys for
// multi-ticker batches.
//
// The pieces:
//
//	pkg/table        sparse tables with ordered axes plus grouped combination
//	pkg/fmp          the provider HTTP client and request builders
//	pkg/fundamentals retrieval entry points (statements, profile, quote,
//	                 enterprise values, ratings, transcripts, segmentation)
//	pkg/insights     optional transcript summarisation via an OpenAI-style API
//	pkg/journal      per-batch audit records
//	cmd/fintab       the CLI binary
package fintab
