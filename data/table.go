/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package data

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"
)

// Table holds generated samples column by column. Column i was
// produced by the distribution described by header i; all columns
// have the same length, which is the number of rows.
//
// A Table is built incrementally with AddColumn. Headers and columns
// stay index-aligned at all times.
type Table struct {
	headers []string
	columns []Vector
	rows    int
}

// NewTable returns an empty table whose columns will hold
// rows elements each.
func NewTable(rows int) *Table {
	return &Table{
		headers: []string{},
		columns: []Vector{},
		rows:    rows,
	}
}

// AddColumn appends column v labelled with header to the table.
// It returns error and leaves the table untouched if v does not have
// the table's number of rows.
func (t *Table) AddColumn(header string, v Vector) error {
	if err := v.CheckLen(t.rows); err != nil {
		return errors.Wrapf(err, "cannot add column %q", header)
	}

	t.headers = append(t.headers, header)
	t.columns = append(t.columns, v)

	return nil
}

// Headers returns the column headers in insertion order.
func (t *Table) Headers() []string {
	res := make([]string, len(t.headers))
	copy(res, t.headers)
	return res
}

// Columns returns the columns in insertion order.
func (t *Table) Columns() []Vector {
	res := make([]Vector, len(t.columns))
	copy(res, t.columns)
	return res
}

// Cols returns the number of columns of table t.
func (t *Table) Cols() int {
	return len(t.columns)
}

// Rows returns the number of data rows of table t. A table
// without columns has no data rows.
func (t *Table) Rows() int {
	if len(t.columns) == 0 {
		return 0
	}

	return t.rows
}

// ColumnLen returns the number of elements every column of table t
// must have.
func (t *Table) ColumnLen() int {
	return t.rows
}

// Col returns i-th column of table t.
// It returns error if i >= the number of t's columns.
func (t *Table) Col(i int) (Vector, error) {
	if i < 0 || i >= t.Cols() {
		return nil, fmt.Errorf("column index exceeds table dimensions")
	}

	return t.columns[i], nil
}

// Row returns i-th row of table t, one element per column.
// It returns error if i >= the number of t's rows.
func (t *Table) Row(i int) (Vector, error) {
	if i < 0 || i >= t.Rows() {
		return nil, fmt.Errorf("row index exceeds table dimensions")
	}

	row := make(Vector, t.Cols())
	for j, c := range t.columns {
		row[j] = c[i]
	}

	return row, nil
}

// Fingerprint returns a SHA3-256 digest of the headers and of the
// IEEE 754 representation of every value of table t. Two tables have
// the same fingerprint exactly when they are bit-identical.
func (t *Table) Fingerprint() [32]byte {
	h := sha3.New256()
	buf := make([]byte, 8)

	binary.LittleEndian.PutUint64(buf, uint64(t.Cols()))
	h.Write(buf)
	binary.LittleEndian.PutUint64(buf, uint64(t.Rows()))
	h.Write(buf)

	for i, c := range t.columns {
		binary.LittleEndian.PutUint64(buf, uint64(len(t.headers[i])))
		h.Write(buf)
		h.Write([]byte(t.headers[i]))
		for _, x := range c {
			binary.LittleEndian.PutUint64(buf, math.Float64bits(x))
			h.Write(buf)
		}
	}

	var digest [32]byte
	copy(digest[:], h.Sum(nil))
	return digest
}
