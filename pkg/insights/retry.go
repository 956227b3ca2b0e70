package insights

import (
	"context"
	"errors"
	"math"
	"net"
	"net/http"
	"time"

	"github.com/openai/openai-go"
)

const (
	initialBackoff = 200 * time.Millisecond
	maxBackoff     = 3 * time.Second
	backoffFactor  = 2.0
)

// retryHandler reruns transient completion failures with exponential backoff.
type retryHandler struct {
	maxRetries int
}

func (r retryHandler) do(ctx context.Context, fn func() error) error {
	var attempt int
	backoff := initialBackoff

	for {
		err := fn()
		if err == nil {
			return nil
		}
		if !retriable(err) || attempt >= r.maxRetries {
			return err
		}
		attempt++

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return ctx.Err()
		}
		backoff = time.Duration(math.Min(float64(maxBackoff), float64(backoff)*backoffFactor))
	}
}

func retriable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusTooManyRequests,
			http.StatusRequestTimeout,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
		return false
	}

	var opErr *net.OpError
	return errors.As(err, &opErr)
}
