// Package dataset loads the precomputed inputs of the two plots: the PPR result
// table (CSV) and the performance comparison samples.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/MerajDerafshi/Fraud-Detection-via-Personalized-PageRank/src/types"
)

// DefaultResultsFile is the result table written by the alpha=0.15 PPR run.
const DefaultResultsFile = "results_PPR_alpha_15.csv"

// Required header columns of the result table.
const (
	ColNodeID = "NodeID"
	ColScore  = "Score"
	ColStatus = "Status"
)

// LoadSuspects reads the result table at path. Rows are returned in file order;
// the producer already sorts them by descending score.
func LoadSuspects(path string) ([]types.SuspectRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrMissingInput, path, err)
	}
	defer f.Close()
	rows, err := ReadSuspects(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// ReadSuspects parses a comma-separated result table with at least the
// NodeID, Score and Status columns, in any order.
func ReadSuspects(r io.Reader) ([]types.SuspectRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty file, header missing", ErrMalformedInput)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrMalformedInput, err)
	}
	idx, err := columnIndex(header, ColNodeID, ColScore, ColStatus)
	if err != nil {
		return nil, err
	}

	var rows []types.SuspectRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedInput, pe.Line, err)
			}
			return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
		}
		line, _ := reader.FieldPos(0)
		raw := strings.TrimSpace(record[idx[ColScore]])
		score, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: score %q is not a number", ErrMalformedInput, line, raw)
		}
		rows = append(rows, types.SuspectRow{
			NodeID: strings.TrimSpace(record[idx[ColNodeID]]),
			Score:  score,
			Status: record[idx[ColStatus]],
		})
	}
	return rows, nil
}

// columnIndex maps each wanted column to its header position.
func columnIndex(header []string, want ...string) (map[string]int, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		pos[strings.TrimSpace(h)] = i
	}
	out := make(map[string]int, len(want))
	for _, w := range want {
		i, ok := pos[w]
		if !ok {
			return nil, fmt.Errorf("%w: column %q not in header %v", ErrMalformedInput, w, header)
		}
		out[w] = i
	}
	return out, nil
}

// IsSorted reports whether rows are in non-increasing score order.
// It returns the 0-based index of the first row that breaks the order, or -1.
func IsSorted(rows []types.SuspectRow) (bool, int) {
	for i := 1; i < len(rows); i++ {
		if rows[i].Score > rows[i-1].Score {
			return false, i
		}
	}
	return true, -1
}
