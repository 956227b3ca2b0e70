package fmp

import (
	"net/url"
	"strconv"
)

// Resource kind names used in requests and diagnostics.
const (
	ResourceBalance        = "balance-sheet-statement"
	ResourceIncome         = "income-statement"
	ResourceCashflow       = "cash-flow-statement"
	ResourceProfile        = "profile"
	ResourceQuote          = "quote"
	ResourceEnterprise     = "enterprise-values"
	ResourceRating         = "historical-rating"
	ResourceTranscript     = "batch_earning_call_transcript"
	ResourceRevenueGeo     = "revenue-geographic-segmentation"
	ResourceRevenueProduct = "revenue-product-segmentation"
)

// Reporting period tokens accepted by the provider.
const (
	PeriodAnnual  = "annual"
	PeriodQuarter = "quarter"
)

// Request describes one resource fetch for one ticker.
type Request struct {
	Ticker   string
	Resource string
	path     string
	query    url.Values
}

func (r Request) url(baseURL, apiKey string) string {
	q := url.Values{}
	for k, vs := range r.query {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	q.Set("apikey", apiKey)
	return baseURL + r.path + "?" + q.Encode()
}

// StatementRequest addresses the v3 financial statement endpoints.
func StatementRequest(resource, ticker, period string, limit int) Request {
	return Request{
		Ticker:   ticker,
		Resource: resource,
		path:     "/api/v3/" + resource + "/" + url.PathEscape(ticker),
		query: url.Values{
			"period": {period},
			"limit":  {strconv.Itoa(limit)},
		},
	}
}

// ProfileRequest addresses the v3 company profile endpoint.
func ProfileRequest(ticker string) Request {
	return Request{
		Ticker:   ticker,
		Resource: ResourceProfile,
		path:     "/api/v3/profile/" + url.PathEscape(ticker),
		query:    url.Values{},
	}
}

// QuoteRequest addresses the v3 quote endpoint.
func QuoteRequest(ticker string) Request {
	return Request{
		Ticker:   ticker,
		Resource: ResourceQuote,
		path:     "/api/v3/quote/" + url.PathEscape(ticker),
		query:    url.Values{},
	}
}

// EnterpriseRequest addresses the v3 enterprise values endpoint.
func EnterpriseRequest(ticker, period string, limit int) Request {
	return Request{
		Ticker:   ticker,
		Resource: ResourceEnterprise,
		path:     "/api/v3/enterprise-values/" + url.PathEscape(ticker),
		query: url.Values{
			"period": {period},
			"limit":  {strconv.Itoa(limit)},
		},
	}
}

// RatingRequest addresses the v3 historical rating endpoint.
func RatingRequest(ticker string, limit int) Request {
	return Request{
		Ticker:   ticker,
		Resource: ResourceRating,
		path:     "/api/v3/historical-rating/" + url.PathEscape(ticker),
		query: url.Values{
			"limit": {strconv.Itoa(limit)},
		},
	}
}

// TranscriptRequest addresses the v4 batch earnings-call transcript endpoint.
func TranscriptRequest(ticker string, year int) Request {
	return Request{
		Ticker:   ticker,
		Resource: ResourceTranscript,
		path:     "/api/v4/batch_earning_call_transcript/" + url.PathEscape(ticker),
		query: url.Values{
			"year": {strconv.Itoa(year)},
		},
	}
}

// SegmentationRequest addresses the v4 revenue segmentation endpoints.
// resource is ResourceRevenueGeo or ResourceRevenueProduct.
func SegmentationRequest(resource, ticker string, quarter bool) Request {
	q := url.Values{
		"symbol":    {ticker},
		"structure": {"flat"},
	}
	if quarter {
		q.Set("period", PeriodQuarter)
	}
	return Request{
		Ticker:   ticker,
		Resource: resource,
		path:     "/api/v4/" + resource,
		query:    q,
	}
}
