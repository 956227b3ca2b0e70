package fundamentals

import (
	"errors"

	"github.com/zeromicro/go-zero/core/logx"

	"fintab/pkg/table"
)

// Faults a guarded computation may report. Computations layered on top of
// the retrieved tables (ratio and metric calculations) wrap these so Guard
// can recognize them.
var (
	// ErrMissingRow signals a required line item is absent from the table.
	ErrMissingRow = errors.New("fundamentals: missing row")
	// ErrBadValue signals a cell could not be used, typically because a
	// statement is incomplete.
	ErrBadValue = errors.New("fundamentals: bad value")
)

// Computation derives a table from previously retrieved fundamentals.
type Computation func() (*table.Table, error)

// Guard wraps a consumer computation so that missing-row and bad-value
// faults degrade to an empty result with a logged diagnostic naming the
// computation, instead of failing the caller. Retrieval entry points never
// use it themselves; their contract is to fail loudly.
func Guard(name string, fn Computation) Computation {
	return func() (*table.Table, error) {
		out, err := fn()
		switch {
		case err == nil:
			return out, nil
		case errors.Is(err, ErrMissingRow):
			logx.Errorf("fundamentals: %s requires a row missing from the provided statements: %v; fill it to compute this result", name, err)
			return table.New(), nil
		case errors.Is(err, ErrBadValue):
			logx.Errorf("fundamentals: %s failed on incomplete statement data: %v", name, err)
			return table.New(), nil
		default:
			return nil, err
		}
	}
}
