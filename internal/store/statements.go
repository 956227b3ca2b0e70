// Package store persists normalized fundamentals tables to Postgres. It is
// optional wiring: the retrieval pipeline itself stays stateless and the
// store only records its outputs.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/sqlx"

	"fintab/pkg/table"
)

// StatementStore upserts statement line items keyed by ticker, statement
// kind, period and line item.
type StatementStore struct {
	conn sqlx.SqlConn
}

// NewStatementStore wires a store over an open connection. Returns nil when
// no connection is configured so callers can skip persistence cleanly.
func NewStatementStore(conn sqlx.SqlConn) *StatementStore {
	if conn == nil {
		return nil
	}
	return &StatementStore{conn: conn}
}

const upsertStatementRow = `
INSERT INTO public.statement_lines (
    ticker, statement, period, line_item, value_num, value_text, updated_at
) VALUES (
    $1, $2, $3, $4, $5, $6, NOW()
)
ON CONFLICT (ticker, statement, period, line_item) DO UPDATE SET
    value_num = EXCLUDED.value_num,
    value_text = EXCLUDED.value_text,
    updated_at = NOW();`

// SaveStatements persists every cell of a combined statement table. Cells
// absent from the table are not written; a stored zero always means the
// provider reported zero.
func (s *StatementStore) SaveStatements(ctx context.Context, kind string, combined *table.Grouped) error {
	if s == nil || combined == nil {
		return nil
	}
	for _, ticker := range combined.Keys() {
		entity, ok := combined.Group(ticker)
		if !ok {
			continue
		}
		for _, lineItem := range entity.Rows() {
			for _, period := range entity.Columns() {
				v, present := entity.Value(lineItem, period)
				if !present {
					continue
				}
				num, text := splitValue(v)
				_, err := s.conn.ExecCtx(ctx, upsertStatementRow,
					ticker, kind, period, lineItem, num, text)
				if err != nil {
					return fmt.Errorf("store: upsert %s/%s/%s/%s: %w", ticker, kind, period, lineItem, err)
				}
			}
		}
	}
	return nil
}

func splitValue(v any) (sql.NullFloat64, sql.NullString) {
	switch val := v.(type) {
	case float64:
		return sql.NullFloat64{Float64: val, Valid: true}, sql.NullString{}
	case bool:
		if val {
			return sql.NullFloat64{Float64: 1, Valid: true}, sql.NullString{}
		}
		return sql.NullFloat64{Valid: true}, sql.NullString{}
	case string:
		return sql.NullFloat64{}, sql.NullString{String: val, Valid: true}
	default:
		return sql.NullFloat64{}, sql.NullString{String: fmt.Sprintf("%v", v), Valid: true}
	}
}
