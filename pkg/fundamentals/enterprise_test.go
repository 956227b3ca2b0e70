package fundamentals

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// Provider returns newest-first; retrieval re-sorts ascending.
const enterpriseAAPL = `[
	{"symbol":"AAPL","date":"2022-09-24","stockPrice":150.43,"numberOfShares":16215963000,"marketCapitalization":2439367000000,"minusCashAndCashEquivalents":23646000000,"addTotalDebt":120069000000,"enterpriseValue":2535790000000},
	{"symbol":"AAPL","date":"2021-09-25","stockPrice":146.92,"numberOfShares":16426786000,"marketCapitalization":2413424000000,"minusCashAndCashEquivalents":34940000000,"addTotalDebt":124719000000,"enterpriseValue":2503203000000},
	{"symbol":"AAPL","date":"2020-09-26","stockPrice":112.28,"numberOfShares":17352119000,"marketCapitalization":1948296000000,"minusCashAndCashEquivalents":38016000000,"addTotalDebt":112436000000,"enterpriseValue":2022716000000}
]`

func TestEnterpriseValueAscendingYears(t *testing.T) {
	svc := newTestService(t, map[string]string{
		"/api/v3/enterprise-values/AAPL": enterpriseAAPL,
	})

	combined, err := svc.EnterpriseValue(context.Background(), []string{"AAPL"}, EnterpriseOptions{})
	require.NoError(t, err)

	single, ok := combined.Single()
	require.True(t, ok)
	require.Equal(t, []string{"2020", "2021", "2022"}, single.Rows())
	require.Equal(t, []string{
		"Stock Price",
		"Number of Shares",
		"Market Capitalization",
		"Cash and Cash Equivalents",
		"Total Debt",
		"Enterprise Value",
	}, single.Columns())

	v, ok := single.Value("2021", "Enterprise Value")
	require.True(t, ok)
	require.Equal(t, 2503203000000.0, v)
}

func TestEnterpriseValueQuarterlyStillTruncatesToYear(t *testing.T) {
	seen := make(chan string, 1)
	svc := newTestServiceFunc(t, func(path, rawQuery string) (string, bool) {
		seen <- rawQuery
		return `[
			{"symbol":"AAPL","date":"2022-06-25","stockPrice":140.0,"enterpriseValue":2400000000000},
			{"symbol":"AAPL","date":"2022-09-24","stockPrice":150.43,"enterpriseValue":2535790000000}
		]`, true
	})

	combined, err := svc.EnterpriseValue(context.Background(), []string{"AAPL"}, EnterpriseOptions{Quarter: true})
	require.NoError(t, err)
	require.Contains(t, <-seen, "period=quarter")

	single, ok := combined.Single()
	require.True(t, ok)
	// Both quarters land on the same calendar-year label; the later record
	// wins per cell.
	require.Equal(t, []string{"2022"}, single.Rows())
	v, ok := single.Value("2022", "Stock Price")
	require.True(t, ok)
	require.Equal(t, 150.43, v)
}

func TestEnterpriseValueMultiTickerOrder(t *testing.T) {
	svc := newTestService(t, map[string]string{
		"/api/v3/enterprise-values/MSFT": `[{"symbol":"MSFT","date":"2022-06-30","enterpriseValue":1900000000000}]`,
		"/api/v3/enterprise-values/AAPL": `[{"symbol":"AAPL","date":"2022-09-24","enterpriseValue":2535790000000}]`,
	})

	combined, err := svc.EnterpriseValue(context.Background(), []string{"MSFT", "AAPL"}, EnterpriseOptions{})
	require.NoError(t, err)
	require.Equal(t, []string{"MSFT", "AAPL"}, combined.Keys())
	_, collapsed := combined.Single()
	require.False(t, collapsed)
}

func TestRatingRawDatesAndRename(t *testing.T) {
	svc := newTestService(t, map[string]string{
		"/api/v3/historical-rating/AAPL": `[
			{"symbol":"AAPL","date":"2023-03-15","rating":"S","ratingScore":5,"ratingRecommendation":"Strong Buy","ratingDetailsDCFScore":5,"ratingDetailsDCFRecommendation":"Strong Buy"},
			{"symbol":"AAPL","date":"2023-03-14","rating":"S","ratingScore":5,"ratingRecommendation":"Strong Buy","ratingDetailsDCFScore":4,"ratingDetailsDCFRecommendation":"Buy"}
		]`,
	})

	combined, err := svc.Rating(context.Background(), []string{"AAPL"}, 0)
	require.NoError(t, err)

	single, ok := combined.Single()
	require.True(t, ok)
	// Rating dates keep day precision, oldest first.
	require.Equal(t, []string{"2023-03-14", "2023-03-15"}, single.Rows())
	require.Equal(t, []string{
		"Rating",
		"Rating Score",
		"Rating Recommendation",
		"DCF Score",
		"DCF Recommendation",
	}, single.Columns())

	v, ok := single.Value("2023-03-14", "DCF Recommendation")
	require.True(t, ok)
	require.Equal(t, "Buy", v)
}

func TestRatingLimitDefaultsToService(t *testing.T) {
	seen := make(chan string, 1)
	svc := newTestServiceFunc(t, func(path, rawQuery string) (string, bool) {
		seen <- rawQuery
		return `[]`, true
	}, WithDefaultLimit(10))

	_, err := svc.Rating(context.Background(), []string{"AAPL"}, 0)
	require.NoError(t, err)
	require.Contains(t, <-seen, "limit=10")
}
