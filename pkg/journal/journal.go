// Package journal persists one audit record per retrieval batch so failed or
// surprising provider responses can be inspected after the fact.
package journal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// BatchRecord captures one multi-ticker retrieval for audit.
type BatchRecord struct {
	Timestamp    time.Time      `json:"timestamp"`
	Resource     string         `json:"resource"`
	Tickers      []string       `json:"tickers"`
	Quarter      bool           `json:"quarter,omitempty"`
	Limit        int            `json:"limit,omitempty"`
	Year         int            `json:"year,omitempty"`
	RowCounts    map[string]int `json:"row_counts,omitempty"`
	ColumnCount  int            `json:"column_count,omitempty"`
	Collapsed    bool           `json:"collapsed,omitempty"`
	Success      bool           `json:"success"`
	ErrorMessage string         `json:"error_message,omitempty"`
}

// Writer persists batch records to a directory as JSON files.
type Writer struct {
	dir   string
	seq   int
	nowFn func() time.Time
}

// NewWriter constructs a journal writer rooted at dir.
func NewWriter(dir string) *Writer {
	if dir == "" {
		dir = "journal"
	}
	_ = os.MkdirAll(dir, 0o755)
	return &Writer{dir: dir, nowFn: time.Now}
}

// WriteBatch writes one record to a timestamped JSON file and returns its path.
func (w *Writer) WriteBatch(rec *BatchRecord) (string, error) {
	if rec == nil {
		return "", fmt.Errorf("journal: nil record")
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = w.nowFn()
	}
	w.seq++
	name := fmt.Sprintf("batch_%s_%05d.json", rec.Timestamp.UTC().Format("20060102_150405"), w.seq)
	path := filepath.Join(w.dir, name)
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
