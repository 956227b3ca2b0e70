package fundamentals

// Static field-rename tables converting provider field names into canonical
// display names. Kept as package data so they can be reused and tested
// without network access.

var enterpriseRename = map[string]string{
	"stockPrice":                  "Stock Price",
	"numberOfShares":              "Number of Shares",
	"marketCapitalization":        "Market Capitalization",
	"minusCashAndCashEquivalents": "Cash and Cash Equivalents",
	"addTotalDebt":                "Total Debt",
	"enterpriseValue":             "Enterprise Value",
}

var ratingRename = map[string]string{
	"rating":                         "Rating",
	"ratingScore":                    "Rating Score",
	"ratingRecommendation":           "Rating Recommendation",
	"ratingDetailsDCFScore":          "DCF Score",
	"ratingDetailsDCFRecommendation": "DCF Recommendation",
	"ratingDetailsROEScore":          "ROE Score",
	"ratingDetailsROERecommendation": "ROE Recommendation",
	"ratingDetailsROAScore":          "ROA Score",
	"ratingDetailsROARecommendation": "ROA Recommendation",
	"ratingDetailsDEScore":           "DE Score",
	"ratingDetailsDERecommendation":  "DE Recommendation",
	"ratingDetailsPEScore":           "PE Score",
	"ratingDetailsPERecommendation":  "PE Recommendation",
	"ratingDetailsPBScore":           "PB Score",
	"ratingDetailsPBRecommendation":  "PB Recommendation",
}
