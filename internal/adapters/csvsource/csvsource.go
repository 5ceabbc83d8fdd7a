// Package csvsource loads the athletes dataset from CSV into a table.
package csvsource

import (
	"context"
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/okian/podium/internal/domain/dataset"
	"github.com/okian/podium/pkg/metrics"
)

// Ingestion constants.
const (
	defaultMissing    = "NA"
	ctxCheckEveryRows = 4096
)

type reader struct {
	anonymize bool
	missing   string
	comma     rune
}

// Load reads the CSV file at path. The first record is the header.
func Load(ctx context.Context, path string, opts ...Option) (*dataset.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer func() { _ = f.Close() }()
	return Read(ctx, f, opts...)
}

// Read parses CSV from src. Missing-value markers become empty cells and
// every record must have as many fields as the header.
func Read(ctx context.Context, src io.Reader, opts ...Option) (*dataset.Table, error) {
	start := time.Now()
	r := &reader{missing: defaultMissing, comma: ','}
	for _, opt := range opts {
		opt(r)
	}

	cr := csv.NewReader(src)
	cr.Comma = r.comma

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrHeader
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	// Strip a UTF-8 byte order mark left by spreadsheet exports.
	if len(header) > 0 {
		header[0] = trimBOM(header[0])
	}

	nameIdx := -1
	if r.anonymize {
		nameIdx = columnIndex(header, dataset.ColName)
	}

	var rows [][]string
	for {
		if len(rows)%ctxCheckEveryRows == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("read dataset: %w", err)
			}
		}
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		for i, v := range rec {
			if v == r.missing {
				rec[i] = ""
			}
		}
		if nameIdx >= 0 && rec[nameIdx] != "" {
			rec[nameIdx] = HashName(rec[nameIdx])
		}
		rows = append(rows, rec)
	}

	metrics.RecordDatasetLoad(len(rows), float64(time.Since(start).Milliseconds()))
	return dataset.NewTable(header, rows), nil
}

// HashName returns the hex SHA-256 digest of an athlete name.
func HashName(name string) string {
	sum := sha256.Sum256([]byte(name))
	return hex.EncodeToString(sum[:])
}

func columnIndex(header []string, name string) int {
	t := dataset.NewTable(header, nil)
	idx, err := t.Index(name)
	if err != nil {
		return -1
	}
	return idx
}

func trimBOM(s string) string {
	return strings.TrimPrefix(s, "\uFEFF")
}
