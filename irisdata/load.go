// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package irisdata loads tables of Iris measurements.
//
// A table is read from CSV with a header row. Columns whose every
// cell parses as an integer become []int columns, columns whose every
// cell parses as a number become []float64 columns, and all others
// remain []string.
package irisdata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Open reads a CSV table from path. If path is "-", it reads from
// standard input. Files ending in ".gz" or ".zst" are decompressed.
func Open(path string) (*table.Table, error) {
	if path == "-" {
		return Read(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	switch {
	case strings.HasSuffix(path, ".gz"):
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	case strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	tab, err := Read(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tab, nil
}

var errNoHeader = errors.New("missing header row")

// Read reads a CSV table from r. The first record names the columns.
func Read(r io.Reader) (*table.Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errNoHeader
	}
	return table.TableFromStrings(rows[0], rows[1:], true), nil
}

// A MissingColumnError lists the columns a table lacks.
type MissingColumnError struct {
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing column(s) %s", strings.Join(e.Columns, ", "))
}

// Check returns a *MissingColumnError if tab lacks any of cols.
func Check(tab *table.Table, cols ...string) error {
	var missing []string
	for _, col := range cols {
		if tab.Column(col) == nil {
			missing = append(missing, col)
		}
	}
	if missing != nil {
		return &MissingColumnError{missing}
	}
	return nil
}
