package fmp

import "fmt"

// RetrievalError wraps any transport, status or parse failure for one
// ticker's fetch. Callers present one message regardless of the underlying
// cause; the cause stays reachable through Unwrap.
type RetrievalError struct {
	Ticker   string
	Resource string
	Err      error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("fmp: retrieve %s for %s: %v", e.Resource, e.Ticker, e.Err)
}

func (e *RetrievalError) Unwrap() error {
	return e.Err
}

func retrievalError(ticker, resource string, err error) error {
	return &RetrievalError{Ticker: ticker, Resource: resource, Err: err}
}
