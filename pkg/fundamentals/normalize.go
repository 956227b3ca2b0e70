package fundamentals

import (
	"fmt"
	"sort"

	"fintab/pkg/fmp"
	"fintab/pkg/table"
)

// Provider field names with special meaning during normalization.
const (
	dateField   = "date"
	symbolField = "symbol"
)

type orientation int

const (
	// rowsAsPeriods keeps periods on the row axis and fields on the column
	// axis (enterprise value, rating, transcript).
	rowsAsPeriods orientation = iota
	// rowsAsFields transposes so line items become rows and periods become
	// columns (financial statements).
	rowsAsFields
)

// normalizeSpec parameterizes the shared record-set normalization.
type normalizeSpec struct {
	orientation orientation
	// periodMode is fmp.PeriodAnnual or fmp.PeriodQuarter to truncate the
	// date field, or empty to keep the raw date string as the axis label.
	periodMode string
	// rename maps provider field names to canonical display names; unmatched
	// names pass through unchanged.
	rename map[string]string
	// sortByDate pre-sorts records ascending by the raw date string, making
	// the chronological axis independent of provider response order.
	sortByDate bool
}

// normalizer adapts a spec to the per-ticker normalization signature.
func normalizer(spec normalizeSpec) func(string, []*fmp.Record) (*table.Table, error) {
	return func(ticker string, records []*fmp.Record) (*table.Table, error) {
		t, err := normalizeRecords(records, spec)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ticker, err)
		}
		return t, nil
	}
}

// normalizeRecords reshapes one raw record set into the canonical table for
// one entity. An empty record set yields an empty table, not an error;
// duplicate periods collapse to the last record seen.
func normalizeRecords(records []*fmp.Record, spec normalizeSpec) (*table.Table, error) {
	if spec.sortByDate {
		records = append([]*fmp.Record(nil), records...)
		sort.SliceStable(records, func(i, j int) bool {
			return rawDate(records[i]) < rawDate(records[j])
		})
	}

	t := table.New()
	for _, rec := range records {
		label, err := periodLabel(rec, spec.periodMode)
		if err != nil {
			return nil, err
		}
		for _, field := range rec.Fields() {
			// The ticker is carried externally on the combined axis, never
			// duplicated inside the table.
			if field == dateField || field == symbolField {
				continue
			}
			v, _ := rec.Value(field)
			if v == nil {
				continue
			}
			t.Set(label, field, v)
		}
	}

	t.RenameColumns(spec.rename)
	if spec.orientation == rowsAsFields {
		t = t.Transpose()
	}
	return t, nil
}

func periodLabel(rec *fmp.Record, periodMode string) (string, error) {
	raw, ok := rec.Value(dateField)
	if !ok {
		return "", fmt.Errorf("fundamentals: record missing %q field", dateField)
	}
	date, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("fundamentals: %q field is %T, want string", dateField, raw)
	}
	if periodMode == "" {
		return date, nil
	}
	period, err := table.ParsePeriod(date, periodMode == fmp.PeriodQuarter)
	if err != nil {
		return "", err
	}
	return period.String(), nil
}

func rawDate(rec *fmp.Record) string {
	if v, ok := rec.Value(dateField); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// normalizeSegments reshapes a flat revenue-segmentation record set: each
// record maps a date to a nested segment→revenue mapping. Rows are dates in
// provider order, columns are segment names.
func normalizeSegments(ticker string, records []*fmp.Record) (*table.Table, error) {
	t := table.New()
	for _, rec := range records {
		for _, date := range rec.Fields() {
			v, _ := rec.Value(date)
			nested, ok := v.(*fmp.Record)
			if !ok {
				return nil, fmt.Errorf("%s: segmentation entry for %s is %T, want object", ticker, date, v)
			}
			for _, segment := range nested.Fields() {
				val, _ := nested.Value(segment)
				if val == nil {
					continue
				}
				t.Set(date, segment, val)
			}
		}
	}
	return t, nil
}
