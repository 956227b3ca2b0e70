package table

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Period is the normalized reporting-period value derived from a provider
// date field: a calendar year for annual data, or a year-month for quarterly
// data.
type Period struct {
	Year  int
	Month time.Month // zero for annual periods
}

// ParsePeriod truncates a date-like string ("2022-09-30") to a Period.
// Quarterly mode keeps the month, annual mode keeps only the year.
func ParsePeriod(date string, quarterly bool) (Period, error) {
	trimmed := strings.TrimSpace(date)
	if trimmed == "" {
		return Period{}, fmt.Errorf("parse period: empty date")
	}
	parts := strings.SplitN(trimmed, "-", 3)
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Period{}, fmt.Errorf("parse period %q: %w", date, err)
	}
	if !quarterly {
		return Period{Year: year}, nil
	}
	if len(parts) < 2 {
		return Period{}, fmt.Errorf("parse period %q: missing month", date)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Period{}, fmt.Errorf("parse period %q: %w", date, err)
	}
	if month < 1 || month > 12 {
		return Period{}, fmt.Errorf("parse period %q: month out of range", date)
	}
	return Period{Year: year, Month: time.Month(month)}, nil
}

// Quarterly reports whether the period carries month precision.
func (p Period) Quarterly() bool {
	return p.Month != 0
}

// String renders "2022" for annual periods and "2022-09" for quarterly ones.
func (p Period) String() string {
	if p.Month == 0 {
		return strconv.Itoa(p.Year)
	}
	return fmt.Sprintf("%d-%02d", p.Year, int(p.Month))
}

// Compare orders periods chronologically.
func (p Period) Compare(o Period) int {
	if p.Year != o.Year {
		if p.Year < o.Year {
			return -1
		}
		return 1
	}
	if p.Month != o.Month {
		if p.Month < o.Month {
			return -1
		}
		return 1
	}
	return 0
}

// ParsePeriodLabel reads back an axis label produced by Period.String.
func ParsePeriodLabel(label string) (Period, bool) {
	parts := strings.SplitN(strings.TrimSpace(label), "-", 2)
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Period{}, false
	}
	if len(parts) == 1 {
		return Period{Year: year}, true
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return Period{}, false
	}
	return Period{Year: year, Month: time.Month(month)}, true
}

// PeriodLess orders two period labels chronologically, falling back to plain
// string order for labels that are not periods (raw transcript dates sort
// correctly either way).
func PeriodLess(a, b string) bool {
	pa, okA := ParsePeriodLabel(a)
	pb, okB := ParsePeriodLabel(b)
	if okA && okB {
		return pa.Compare(pb) < 0
	}
	return a < b
}
