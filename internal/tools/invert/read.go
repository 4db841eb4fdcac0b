// SPDX-License-Identifier: MIT

package invert

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/luciusluo/matrix-inverse/matrix"
)

// ReadMatrix parses one matrix row per line. Entries are separated by
// commas and/or whitespace; blank lines and text after '#' are ignored.
//
// Errors carry the 1-based line number. Rows of differing length fail
// with matrix.ErrDimensionMismatch; an input without rows fails with
// matrix.ErrInvalidDimensions.
func ReadMatrix(r io.Reader) (*matrix.Dense, error) {
	var (
		rows   [][]float64
		width  int
		lineNo int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.FieldsFunc(line, isSeparator)
		if len(fields) == 0 {
			continue
		}

		row := make([]float64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: entry %d: %w", lineNo, j+1, err)
			}
			row[j] = v
		}
		if len(rows) == 0 {
			width = len(row)
		} else if len(row) != width {
			return nil, fmt.Errorf("line %d: %d entries, want %d: %w", lineNo, len(row), width, matrix.ErrDimensionMismatch)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	m, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return m, nil
}

func isSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}
