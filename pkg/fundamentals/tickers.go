package fundamentals

import "strings"

// normalizeTickers validates the shared ticker argument once for every entry
// point. The list must be non-empty and every entry non-blank; duplicates are
// kept and order is preserved exactly as supplied.
func normalizeTickers(tickers []string) ([]string, error) {
	if len(tickers) == 0 {
		return nil, validationErrorf("no tickers supplied")
	}
	out := make([]string, 0, len(tickers))
	for _, ticker := range tickers {
		trimmed := strings.TrimSpace(ticker)
		if trimmed == "" {
			return nil, validationErrorf("blank ticker in %v", tickers)
		}
		out = append(out, trimmed)
	}
	return out, nil
}
